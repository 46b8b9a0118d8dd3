package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns the full product collection in insertion order. The slice is
// non-nil even when empty so callers can tell "loaded" from "never fetched".
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT product_id, store_id, name, description, price, category_id, status
	  FROM products
	  ORDER BY product_id
	`)
	return out, err
}

func (r *ProductRepo) ByID(id int) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT product_id, store_id, name, description, price, category_id, status
	  FROM products
	  WHERE product_id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) (int, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(store_id, name, description, price, category_id, status)
	  VALUES (?, ?, ?, ?, ?, ?)
	`, p.StoreID, p.Name, p.Description, p.Price, p.CategoryID, p.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *ProductRepo) Update(p domain.Product) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, description = ?, price = ?, category_id = ?, status = ?
	  WHERE product_id = ?
	`, p.Name, p.Description, p.Price, p.CategoryID, p.Status, p.ProductID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ProductRepo) Delete(id int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE product_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ---------- Denormalized rows served by the API ----------

type ProductWithStore struct {
	domain.Product
	StoreName        string `db:"store_name" json:"store_name"`
	StoreDescription string `db:"store_description" json:"store_description"`
}

// ListWithStore joins every product with its owning store's display info.
// Products whose store is gone are kept, with empty store fields.
func (r *ProductRepo) ListWithStore() ([]ProductWithStore, error) {
	out := []ProductWithStore{}
	err := r.db.Select(&out, `
	  SELECT p.product_id, p.store_id, p.name, p.description, p.price, p.category_id, p.status,
	         COALESCE(s.name,'')        AS store_name,
	         COALESCE(s.description,'') AS store_description
	  FROM products p
	  LEFT JOIN stores s ON s.store_id = p.store_id
	  ORDER BY p.product_id
	`)
	return out, err
}

type ProductWithLocation struct {
	domain.Product
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	Address   string  `db:"address" json:"address"`
}

// ListWithLocation returns products whose store has a registered location.
func (r *ProductRepo) ListWithLocation() ([]ProductWithLocation, error) {
	out := []ProductWithLocation{}
	err := r.db.Select(&out, `
	  SELECT p.product_id, p.store_id, p.name, p.description, p.price, p.category_id, p.status,
	         l.latitude, l.longitude, l.address
	  FROM products p
	  JOIN locations l ON l.store_id = p.store_id
	  ORDER BY p.product_id
	`)
	return out, err
}

type ProductWithCategory struct {
	domain.Product
	CategoryName        string `db:"category_name" json:"category_name"`
	CategoryDescription string `db:"category_description" json:"category_description"`
}

func (r *ProductRepo) ListByCategory(categoryID int) ([]ProductWithCategory, error) {
	out := []ProductWithCategory{}
	err := r.db.Select(&out, `
	  SELECT p.product_id, p.store_id, p.name, p.description, p.price, p.category_id, p.status,
	         c.name        AS category_name,
	         c.description AS category_description
	  FROM products p
	  JOIN categories c ON c.category_id = p.category_id
	  WHERE p.category_id = ?
	  ORDER BY p.product_id
	`, categoryID)
	return out, err
}
