package handlers_test

import (
	"net/http"
	"testing"

	"ubishop/internal/repos"
)

func TestWebhookActivatesSubscription(t *testing.T) {
	app, db := newApp(t)

	// unrelated event types are acknowledged and ignored
	resp := doJSON(t, app, "POST", "/webhook", "",
		`{"type":"payment","data":{"id":"123"}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for unrelated event, got %d", resp.StatusCode)
	}

	// a preapproval that is not authorized never activates anything
	resp = doJSON(t, app, "POST", "/webhook", "",
		`{"type":"preapproval","data":{"id":"pre-1"},"status":"pending","external_reference":"3","reason":"2"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for pending preapproval, got %d", resp.StatusCode)
	}

	// unknown plan in reason -> 400
	resp = doJSON(t, app, "POST", "/webhook", "",
		`{"type":"preapproval","data":{"id":"pre-2"},"status":"authorized","external_reference":"3","reason":"99"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown plan, got %d", resp.StatusCode)
	}

	// authorized preapproval flips Rosa's store onto plan 2
	resp = doJSON(t, app, "POST", "/webhook", "",
		`{"type":"preapproval","data":{"id":"pre-3"},"status":"authorized","external_reference":"3","reason":"2"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for authorized preapproval, got %d", resp.StatusCode)
	}
	st, err := repos.NewStoreRepo(db).ByUserID(3)
	if err != nil {
		t.Fatal(err)
	}
	if st.PlanID != 2 {
		t.Fatalf("want plan 2 active, got %d", st.PlanID)
	}

	// once the plan is active the store's product becomes discoverable
	sr := search(t, app, "", "")
	if sr.Count != 4 {
		t.Fatalf("want 4 products after activation, got %d", sr.Count)
	}
}
