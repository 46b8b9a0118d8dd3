package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestProductMutationsRequireStoreRole(t *testing.T) {
	app, _ := newApp(t)

	body := `{"name":"Cuerdas nylon","description":"Set x6","price":8990,"category_id":3}`

	// anonymous -> 401
	resp := doJSON(t, app, "POST", "/api/v1/products", "", body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", resp.StatusCode)
	}

	// customer -> 403
	sidCarla := login(t, app, "carla@ubishop.test")
	resp = doJSON(t, app, "POST", "/api/v1/products", sidCarla, body)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.StatusCode)
	}

	// store owner -> 201, product lands in their own store
	sidMario := login(t, app, "mario@ubishop.test")
	resp = doJSON(t, app, "POST", "/api/v1/products", sidMario, body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for store owner, got %d", resp.StatusCode)
	}
	var created struct {
		ProductID int    `json:"product_id"`
		StoreID   int    `json:"store_id"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.StoreID != 1 || created.Status != "active" {
		t.Fatalf("product not placed in caller's store: %+v", created)
	}
}

func TestProductEditScopedToOwningStore(t *testing.T) {
	app, _ := newApp(t)

	// Product 4 belongs to Rosa's store; Mario cannot touch it.
	sidMario := login(t, app, "mario@ubishop.test")
	body := `{"name":"Microfono dinamico","description":"","price":1,"category_id":2}`
	resp := doJSON(t, app, "PUT", "/api/v1/products/4", sidMario, body)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign product, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "DELETE", "/api/v1/products/4", sidMario, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 on delete, got %d", resp.StatusCode)
	}

	// Editing an unknown product reports 404, not 403.
	resp = doJSON(t, app, "PUT", "/api/v1/products/999", sidMario, body)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", resp.StatusCode)
	}

	// Rosa edits her own product fine.
	sidRosa := login(t, app, "rosa@ubishop.test")
	resp = doJSON(t, app, "PUT", "/api/v1/products/4", sidRosa,
		`{"name":"Microfono dinamico","description":"Para voz","price":54990,"category_id":2,"status":"inactive"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for owner edit, got %d", resp.StatusCode)
	}
}
