package handlers

import (
	"ubishop/internal/config"
	"ubishop/internal/repos"
	"ubishop/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler   *ProductHandler
	StoreHandler     *StoreHandler
	CategoryHandler  *CategoryHandler
	ReviewHandler    *ReviewHandler
	LocationHandler  *LocationHandler
	PlanHandler      *PlanHandler
	UserHandler      *UserHandler
	DiscoveryHandler *DiscoveryHandler
	ReportHandler    *ReportHandler
	WebhookHandler   *WebhookHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	storeRepo := repos.NewStoreRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	locRepo := repos.NewLocationRepo(db)
	planRepo := repos.NewPlanRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, catRepo, storeRepo)
	discoverySvc := services.NewDiscoveryService(prodRepo, storeRepo, locRepo, catRepo)
	reviewSvc := services.NewReviewService(reviewRepo, prodRepo)
	reportSvc := services.NewReportService(storeRepo, prodRepo, reviewRepo)
	subsSvc := services.NewSubscriptionService(planRepo, storeRepo)

	return &Deps{
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		StoreHandler:     &StoreHandler{Stores: storeRepo},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		ReviewHandler:    &ReviewHandler{Reviews: reviewSvc},
		LocationHandler:  &LocationHandler{Locs: locRepo, Stores: storeRepo},
		PlanHandler:      &PlanHandler{Subs: subsSvc},
		UserHandler:      &UserHandler{Users: userRepo},
		DiscoveryHandler: &DiscoveryHandler{Discovery: discoverySvc, RadiusKm: cfg.RadiusKm},
		ReportHandler:    &ReportHandler{Reports: reportSvc},
		WebhookHandler:   &WebhookHandler{Subs: subsSvc},
	}
}
