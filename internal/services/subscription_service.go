package services

import (
	"database/sql"
	"errors"

	"ubishop/internal/domain"
	"ubishop/internal/repos"
)

var ErrUnknownPlan = errors.New("unknown plan")

// SubscriptionService lists plans and applies activations reported by the
// payment provider's webhook. It never calls the provider itself.
type SubscriptionService struct {
	Plans  *repos.PlanRepo
	Stores *repos.StoreRepo
}

func NewSubscriptionService(plans *repos.PlanRepo, stores *repos.StoreRepo) *SubscriptionService {
	return &SubscriptionService{Plans: plans, Stores: stores}
}

func (s *SubscriptionService) ListPlans() ([]domain.Plan, error) { return s.Plans.List() }

// Activate sets planID on the store owned by userID.
func (s *SubscriptionService) Activate(userID, planID int) error {
	if _, err := s.Plans.ByID(planID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnknownPlan
		}
		return err
	}
	ok, err := s.Stores.UpdatePlanByUser(userID, planID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoStore
	}
	return nil
}
