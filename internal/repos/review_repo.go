package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) List() ([]domain.Review, error) {
	out := []domain.Review{}
	err := r.db.Select(&out, `
	  SELECT review_id, user_id, product_id, rating, comment, created_at
	  FROM reviews
	  ORDER BY review_id
	`)
	return out, err
}

func (r *ReviewRepo) ByID(id int) (domain.Review, error) {
	var rv domain.Review
	err := r.db.Get(&rv, `
	  SELECT review_id, user_id, product_id, rating, comment, created_at
	  FROM reviews
	  WHERE review_id = ?
	`, id)
	return rv, err
}

type ReviewWithAuthor struct {
	domain.Review
	Author string `db:"author" json:"author"`
}

// ByProduct returns a product's reviews joined with the author's display
// name; reviews from deleted accounts keep an empty author.
func (r *ReviewRepo) ByProduct(productID int) ([]ReviewWithAuthor, error) {
	out := []ReviewWithAuthor{}
	err := r.db.Select(&out, `
	  SELECT rv.review_id, rv.user_id, rv.product_id, rv.rating, rv.comment, rv.created_at,
	         COALESCE(u.name,'') AS author
	  FROM reviews rv
	  LEFT JOIN users u ON u.user_id = rv.user_id
	  WHERE rv.product_id = ?
	  ORDER BY rv.review_id
	`, productID)
	return out, err
}

func (r *ReviewRepo) Create(rv domain.Review) (int, error) {
	res, err := r.db.Exec(`
	  INSERT INTO reviews(user_id, product_id, rating, comment)
	  VALUES (?, ?, ?, ?)
	`, rv.UserID, rv.ProductID, rv.Rating, rv.Comment)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *ReviewRepo) Update(id int, rating, comment string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE reviews SET rating = ?, comment = ? WHERE review_id = ?
	`, rating, comment, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ReviewRepo) Delete(id int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM reviews WHERE review_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
