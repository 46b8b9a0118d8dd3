package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestReviewCreateRequiresLoginAndValidRating(t *testing.T) {
	app, _ := newApp(t)

	body := `{"product_id":4,"rating":"5","comment":"impecable"}`

	resp := doJSON(t, app, "POST", "/api/v1/reviews", "", body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", resp.StatusCode)
	}

	sid := login(t, app, "carla@ubishop.test")

	resp = doJSON(t, app, "POST", "/api/v1/reviews", sid,
		`{"product_id":4,"rating":"11","comment":"fuera de escala"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-scale rating, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/v1/reviews", sid,
		`{"product_id":999,"rating":"5","comment":""}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/v1/reviews", sid, body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// The new review shows up on the product, joined with its author.
	resp = doJSON(t, app, "GET", "/api/v1/reviews/product/4", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list reviews: status %d", resp.StatusCode)
	}
	var rows []struct {
		Rating string `json:"rating"`
		Author string `json:"author"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Rating != "5" || rows[0].Author != "Carla" {
		t.Fatalf("bad review listing: %+v", rows)
	}
}

func TestStoreReportEndpoint(t *testing.T) {
	app, _ := newApp(t)

	// customers have no report
	sidCarla := login(t, app, "carla@ubishop.test")
	resp := doJSON(t, app, "GET", "/api/v1/reports/store", sidCarla, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.StatusCode)
	}

	sidMario := login(t, app, "mario@ubishop.test")
	resp = doJSON(t, app, "GET", "/api/v1/reports/store", sidMario, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", resp.StatusCode)
	}
	var rep struct {
		StoreID       int    `json:"store_id"`
		ActiveCount   int    `json:"active_count"`
		InactiveRatio string `json:"inactive_ratio"`
		BestProduct   string `json:"best_product"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatal(err)
	}
	if rep.StoreID != 1 || rep.ActiveCount != 2 || rep.InactiveRatio != "33.33%" {
		t.Fatalf("bad report: %+v", rep)
	}
	if rep.BestProduct != "Guitarra clasica" {
		t.Fatalf("want best product from seed reviews, got %q", rep.BestProduct)
	}
}
