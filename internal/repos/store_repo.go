package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) List() ([]domain.Store, error) {
	out := []domain.Store{}
	err := r.db.Select(&out, `
	  SELECT store_id, name, description, owner_name, user_id, plan_id
	  FROM stores
	  ORDER BY store_id
	`)
	return out, err
}

func (r *StoreRepo) ByID(id int) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `
	  SELECT store_id, name, description, owner_name, user_id, plan_id
	  FROM stores
	  WHERE store_id = ?
	`, id)
	return s, err
}

// ByUserID resolves the one store a STORE account owns.
func (r *StoreRepo) ByUserID(userID int) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `
	  SELECT store_id, name, description, owner_name, user_id, plan_id
	  FROM stores
	  WHERE user_id = ?
	`, userID)
	return s, err
}

func (r *StoreRepo) Create(s domain.Store) (int, error) {
	res, err := r.db.Exec(`
	  INSERT INTO stores(name, description, owner_name, user_id, plan_id)
	  VALUES (?, ?, ?, ?, ?)
	`, s.Name, s.Description, s.OwnerName, s.UserID, s.PlanID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// UpdatePlanByUser activates a plan on the store owned by userID. Used by
// the subscription webhook.
func (r *StoreRepo) UpdatePlanByUser(userID, planID int) (bool, error) {
	res, err := r.db.Exec(`UPDATE stores SET plan_id = ? WHERE user_id = ?`, planID, userID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type StoreWithLocation struct {
	domain.Store
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	Address   string  `db:"address" json:"address"`
}

// ListWithLocation returns stores that have a registered location (the map
// screen's data source).
func (r *StoreRepo) ListWithLocation() ([]StoreWithLocation, error) {
	out := []StoreWithLocation{}
	err := r.db.Select(&out, `
	  SELECT s.store_id, s.name, s.description, s.owner_name, s.user_id, s.plan_id,
	         l.latitude, l.longitude, l.address
	  FROM stores s
	  JOIN locations l ON l.store_id = s.store_id
	  ORDER BY s.store_id
	`)
	return out, err
}

type StoreWithPlan struct {
	domain.Store
	Period string  `db:"period" json:"period"`
	Cost   float64 `db:"cost" json:"cost"`
}

// PlanByUser returns the owner's store joined with its active plan.
// sql.ErrNoRows when the user has no store or the store has no plan.
func (r *StoreRepo) PlanByUser(userID int) (StoreWithPlan, error) {
	var out StoreWithPlan
	err := r.db.Get(&out, `
	  SELECT s.store_id, s.name, s.description, s.owner_name, s.user_id, s.plan_id,
	         pl.period, pl.cost
	  FROM stores s
	  JOIN plans pl ON pl.plan_id = s.plan_id
	  WHERE s.user_id = ?
	`, userID)
	return out, err
}
