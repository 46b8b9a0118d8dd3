package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LocationRepo struct{ db *sqlx.DB }

func NewLocationRepo(db *sqlx.DB) *LocationRepo { return &LocationRepo{db: db} }

func (r *LocationRepo) List() ([]domain.Location, error) {
	out := []domain.Location{}
	err := r.db.Select(&out, `
	  SELECT store_id, latitude, longitude, address
	  FROM locations
	  ORDER BY store_id
	`)
	return out, err
}

func (r *LocationRepo) ByStore(storeID int) (domain.Location, error) {
	var l domain.Location
	err := r.db.Get(&l, `
	  SELECT store_id, latitude, longitude, address
	  FROM locations
	  WHERE store_id = ?
	`, storeID)
	return l, err
}

// Upsert sets the single location of a store, creating the row if needed.
func (r *LocationRepo) Upsert(l domain.Location) error {
	_, err := r.db.Exec(`
	  INSERT INTO locations(store_id, latitude, longitude, address)
	  VALUES (?, ?, ?, ?)
	  ON CONFLICT(store_id) DO UPDATE SET
	    latitude = excluded.latitude,
	    longitude = excluded.longitude,
	    address = excluded.address
	`, l.StoreID, l.Latitude, l.Longitude, l.Address)
	return err
}
