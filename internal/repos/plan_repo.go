package repos

import (
	"ubishop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PlanRepo struct{ db *sqlx.DB }

func NewPlanRepo(db *sqlx.DB) *PlanRepo { return &PlanRepo{db: db} }

func (r *PlanRepo) List() ([]domain.Plan, error) {
	out := []domain.Plan{}
	err := r.db.Select(&out, `SELECT plan_id, period, cost FROM plans ORDER BY plan_id`)
	return out, err
}

func (r *PlanRepo) ByID(id int) (domain.Plan, error) {
	var p domain.Plan
	err := r.db.Get(&p, `SELECT plan_id, period, cost FROM plans WHERE plan_id = ?`, id)
	return p, err
}
