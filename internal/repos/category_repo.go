package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `
	  SELECT category_id, name, description
	  FROM categories
	  ORDER BY category_id
	`)
	return out, err
}

func (r *CategoryRepo) ByID(id int) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT category_id, name, description
	  FROM categories
	  WHERE category_id = ?
	`, id)
	return c, err
}

func (r *CategoryRepo) Create(c domain.Category) (int, error) {
	res, err := r.db.Exec(`
	  INSERT INTO categories(name, description) VALUES (?, ?)
	`, c.Name, c.Description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}
