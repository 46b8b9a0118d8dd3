package discovery_test

import (
	"testing"

	"ubishop/internal/discovery"
	"ubishop/internal/domain"
)

func TestBuildReportEmptyCatalog(t *testing.T) {
	rep := discovery.BuildReport(1, []domain.Product{}, []domain.Review{})
	if rep.ActiveCount != 0 {
		t.Fatalf("want activeCount 0, got %d", rep.ActiveCount)
	}
	if rep.InactiveRatio != "0%" {
		t.Fatalf("want 0%% for empty catalog, got %q", rep.InactiveRatio)
	}
	if rep.BestProduct != discovery.NoData || rep.WorstProduct != discovery.NoData {
		t.Fatalf("want no-data sentinels, got best=%q worst=%q", rep.BestProduct, rep.WorstProduct)
	}
}

func TestBuildReport(t *testing.T) {
	products := []domain.Product{
		{ProductID: 1, StoreID: 1, Name: "Guitarra", Status: domain.StatusActive},
		{ProductID: 2, StoreID: 1, Name: "Bajo", Status: domain.StatusInactive},
		{ProductID: 3, StoreID: 1, Name: "Amplificador", Status: domain.StatusActive},
		{ProductID: 4, StoreID: 1, Name: "Atril", Status: domain.StatusActive}, // never reviewed
		{ProductID: 9, StoreID: 2, Name: "Ajeno", Status: domain.StatusActive}, // other store
	}
	reviews := []domain.Review{
		{ProductID: 1, Rating: "5"},
		{ProductID: 1, Rating: "3"}, // Guitarra: 4.00
		{ProductID: 2, Rating: "Excellent"},
		{ProductID: 2, Rating: "Excellent"}, // Bajo: 5.00
		{ProductID: 3, Rating: "Poor"},      // Amplificador: 2.00
		{ProductID: 9, Rating: "1"},         // other store's product
	}

	rep := discovery.BuildReport(1, products, reviews)

	if rep.ActiveCount != 3 {
		t.Fatalf("want 3 active, got %d", rep.ActiveCount)
	}
	if rep.InactiveRatio != "25.00%" {
		t.Fatalf("want 25.00%%, got %q", rep.InactiveRatio)
	}
	if len(rep.Ratings) != 4 {
		t.Fatalf("want 4 rating rows, got %d", len(rep.Ratings))
	}
	if r := rep.Ratings[0]; r.Product != "Guitarra" || !r.Rated || r.Average != 4 {
		t.Fatalf("Guitarra row wrong: %+v", r)
	}
	// The unreviewed product stays listed, just unrated.
	if r := rep.Ratings[3]; r.Product != "Atril" || r.Rated {
		t.Fatalf("Atril should be listed as unrated: %+v", r)
	}
	if rep.BestProduct != "Bajo" {
		t.Fatalf("want best Bajo, got %q", rep.BestProduct)
	}
	if rep.WorstProduct != "Amplificador" {
		t.Fatalf("want worst Amplificador, got %q", rep.WorstProduct)
	}
}

func TestBuildReportTieKeepsFirst(t *testing.T) {
	products := []domain.Product{
		{ProductID: 1, StoreID: 1, Name: "Primero", Status: domain.StatusActive},
		{ProductID: 2, StoreID: 1, Name: "Segundo", Status: domain.StatusActive},
	}
	reviews := []domain.Review{
		{ProductID: 1, Rating: "4"},
		{ProductID: 2, Rating: "4"},
	}
	rep := discovery.BuildReport(1, products, reviews)
	if rep.BestProduct != "Primero" || rep.WorstProduct != "Primero" {
		t.Fatalf("tie must keep first encountered, got best=%q worst=%q", rep.BestProduct, rep.WorstProduct)
	}
}

func TestBuildReportNothingRated(t *testing.T) {
	products := []domain.Product{
		{ProductID: 1, StoreID: 1, Name: "Guitarra", Status: domain.StatusActive},
	}
	rep := discovery.BuildReport(1, products, []domain.Review{})
	if rep.BestProduct != discovery.NoData || rep.WorstProduct != discovery.NoData {
		t.Fatalf("want no-data sentinels when nothing is rated, got %+v", rep)
	}
	if rep.InactiveRatio != "0.00%" {
		t.Fatalf("want 0.00%% with one active product, got %q", rep.InactiveRatio)
	}
}
