package services

import (
	"ubishop/internal/discovery"
	"ubishop/internal/domain"
	"ubishop/internal/repos"
)

// DiscoveryService fetches the collections the pipeline needs and runs it.
// Each call works on its own snapshot; nothing is cached between requests.
type DiscoveryService struct {
	Prods  *repos.ProductRepo
	Stores *repos.StoreRepo
	Locs   *repos.LocationRepo
	Cats   *repos.CategoryRepo
}

func NewDiscoveryService(prods *repos.ProductRepo, stores *repos.StoreRepo, locs *repos.LocationRepo, cats *repos.CategoryRepo) *DiscoveryService {
	return &DiscoveryService{Prods: prods, Stores: stores, Locs: locs, Cats: cats}
}

// Discover loads all required collections, gates on their presence, and
// returns the filtered, ordered product list for ctx.
func (s *DiscoveryService) Discover(ctx discovery.QueryContext) ([]domain.Product, error) {
	products, err := s.Prods.List()
	if err != nil {
		return nil, err
	}
	stores, err := s.Stores.List()
	if err != nil {
		return nil, err
	}
	locations, err := s.Locs.List()
	if err != nil {
		return nil, err
	}
	categories, err := s.Cats.List()
	if err != nil {
		return nil, err
	}

	snap, err := discovery.NewSnapshot(products, stores, locations, categories)
	if err != nil {
		return nil, err
	}
	return snap.FilterProducts(ctx)
}
