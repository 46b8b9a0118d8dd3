package services_test

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"ubishop/internal/repos"
	"ubishop/internal/services"
)

func TestReviewService_CreateValidatesRating(t *testing.T) {
	db := seeddb(t)
	svc := services.NewReviewService(repos.NewReviewRepo(db), repos.NewProductRepo(db))

	if _, err := svc.Create(1, 1, "meh", ""); !errors.Is(err, services.ErrInvalidRating) {
		t.Fatalf("want ErrInvalidRating, got %v", err)
	}
	if _, err := svc.Create(1, 999, "4", ""); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want ErrNoRows for missing product, got %v", err)
	}

	rv, err := svc.Create(1, 4, "Excellent", "gran microfono")
	if err != nil {
		t.Fatal(err)
	}
	if rv.ReviewID == 0 || rv.Rating != "Excellent" {
		t.Fatalf("bad review: %+v", rv)
	}
}

func TestReviewService_AuthorOnlyEdits(t *testing.T) {
	db := seeddb(t)
	svc := services.NewReviewService(repos.NewReviewRepo(db), repos.NewProductRepo(db))

	// Seed review 1 belongs to Carla (user 1).
	if err := svc.Update(2, 1, "4", "no es mia"); !errors.Is(err, services.ErrNotAuthor) {
		t.Fatalf("want ErrNotAuthor on update, got %v", err)
	}
	if err := svc.Delete(2, 1); !errors.Is(err, services.ErrNotAuthor) {
		t.Fatalf("want ErrNotAuthor on delete, got %v", err)
	}

	if err := svc.Update(1, 1, "4", "mejor de lo que crei"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.NewReviewRepo(db).ByID(1); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("review should be gone, got %v", err)
	}
}

func TestSubscriptionService_Activate(t *testing.T) {
	db := seeddb(t)
	storeRepo := repos.NewStoreRepo(db)
	svc := services.NewSubscriptionService(repos.NewPlanRepo(db), storeRepo)

	if err := svc.Activate(3, 99); !errors.Is(err, services.ErrUnknownPlan) {
		t.Fatalf("want ErrUnknownPlan, got %v", err)
	}
	if err := svc.Activate(1, 2); !errors.Is(err, services.ErrNoStore) {
		t.Fatalf("want ErrNoStore for customer, got %v", err)
	}

	// Rosa's store starts without a plan.
	if err := svc.Activate(3, 2); err != nil {
		t.Fatal(err)
	}
	st, err := storeRepo.ByUserID(3)
	if err != nil {
		t.Fatal(err)
	}
	if st.PlanID != 2 {
		t.Fatalf("want plan 2 on store, got %d", st.PlanID)
	}
}
