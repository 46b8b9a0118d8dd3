package services

import (
	"database/sql"
	"errors"

	"ubishop/internal/domain"
	"ubishop/internal/repos"
)

var (
	ErrNotOwner = errors.New("not the owning store")
	ErrNoStore  = errors.New("user has no store")
)

// CatalogService covers product and category CRUD. Mutations are owner
// scoped: a STORE account can only touch products of its own store.
type CatalogService struct {
	Prods  *repos.ProductRepo
	Cats   *repos.CategoryRepo
	Stores *repos.StoreRepo
}

func NewCatalogService(prods *repos.ProductRepo, cats *repos.CategoryRepo, stores *repos.StoreRepo) *CatalogService {
	return &CatalogService{Prods: prods, Cats: cats, Stores: stores}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error)   { return s.Prods.List() }
func (s *CatalogService) GetProduct(id int) (domain.Product, error) { return s.Prods.ByID(id) }

func (s *CatalogService) ListProductsWithStore() ([]repos.ProductWithStore, error) {
	return s.Prods.ListWithStore()
}

func (s *CatalogService) ListProductsWithLocation() ([]repos.ProductWithLocation, error) {
	return s.Prods.ListWithLocation()
}

func (s *CatalogService) ListProductsByCategory(categoryID int) ([]repos.ProductWithCategory, error) {
	return s.Prods.ListByCategory(categoryID)
}

// CreateProduct inserts a product into the caller's store. The store is
// resolved from the session user, never taken from the request body.
func (s *CatalogService) CreateProduct(ownerUserID int, p domain.Product) (domain.Product, error) {
	st, err := s.Stores.ByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrNoStore
		}
		return domain.Product{}, err
	}
	p.StoreID = st.StoreID
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	id, err := s.Prods.Create(p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ProductID = id
	return p, nil
}

func (s *CatalogService) UpdateProduct(ownerUserID int, p domain.Product) (domain.Product, error) {
	if err := s.requireOwnership(ownerUserID, p.ProductID); err != nil {
		return domain.Product{}, err
	}
	current, err := s.Prods.ByID(p.ProductID)
	if err != nil {
		return domain.Product{}, err
	}
	p.StoreID = current.StoreID // ownership never moves via edit
	if p.Status == "" {
		p.Status = current.Status
	}
	if _, err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ownerUserID, productID int) error {
	if err := s.requireOwnership(ownerUserID, productID); err != nil {
		return err
	}
	_, err := s.Prods.Delete(productID)
	return err
}

func (s *CatalogService) requireOwnership(userID, productID int) error {
	p, err := s.Prods.ByID(productID)
	if err != nil {
		return err
	}
	st, err := s.Stores.ByID(p.StoreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotOwner
		}
		return err
	}
	if st.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) { return s.Cats.List() }

func (s *CatalogService) CreateCategory(c domain.Category) (domain.Category, error) {
	id, err := s.Cats.Create(c)
	if err != nil {
		return domain.Category{}, err
	}
	c.CategoryID = id
	return c, nil
}
