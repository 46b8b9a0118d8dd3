package services

import (
	"database/sql"
	"errors"

	"ubishop/internal/discovery"
	"ubishop/internal/repos"
)

type ReportService struct {
	Stores  *repos.StoreRepo
	Prods   *repos.ProductRepo
	Reviews *repos.ReviewRepo
}

func NewReportService(stores *repos.StoreRepo, prods *repos.ProductRepo, reviews *repos.ReviewRepo) *ReportService {
	return &ReportService{Stores: stores, Prods: prods, Reviews: reviews}
}

// ForOwner builds the analytics report for the store owned by userID.
func (s *ReportService) ForOwner(userID int) (discovery.Report, error) {
	st, err := s.Stores.ByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return discovery.Report{}, ErrNoStore
		}
		return discovery.Report{}, err
	}
	products, err := s.Prods.List()
	if err != nil {
		return discovery.Report{}, err
	}
	reviews, err := s.Reviews.List()
	if err != nil {
		return discovery.Report{}, err
	}
	return discovery.BuildReport(st.StoreID, products, reviews), nil
}
