package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"ubishop/internal/config"
	"ubishop/internal/http/handlers"
	applog "ubishop/internal/log"
	"ubishop/internal/repos"
	"ubishop/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer generically; never leak internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please retry",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(handlers.AttachUser(authSvc))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api/v1")

	// Auth (login throttled)
	auth := api.Group("/auth")
	auth.Post("/register", authH.Register)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	auth.Post("/logout", authH.Logout)

	// Products
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/with-store", deps.ProductHandler.ListWithStore)
	api.Get("/products/with-location", deps.ProductHandler.ListWithLocation)
	api.Get("/products/category/:id", deps.ProductHandler.ListByCategory)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/products", handlers.RequireStore(), deps.ProductHandler.Create)
	api.Put("/products/:id", handlers.RequireStore(), deps.ProductHandler.Update)
	api.Delete("/products/:id", handlers.RequireStore(), deps.ProductHandler.Delete)

	// Stores
	api.Get("/stores", deps.StoreHandler.List)
	api.Get("/stores/with-location", deps.StoreHandler.ListWithLocation)
	api.Get("/stores/plan/:userID", deps.StoreHandler.PlanByUser)
	api.Get("/stores/:id", deps.StoreHandler.Get)
	api.Post("/stores", handlers.RequireStore(), deps.StoreHandler.Create)

	// Categories
	api.Get("/categories", deps.CategoryHandler.List)
	api.Post("/categories", handlers.RequireUser(), deps.CategoryHandler.Create)

	// Reviews
	api.Get("/reviews", deps.ReviewHandler.List)
	api.Get("/reviews/product/:id", deps.ReviewHandler.ByProduct)
	api.Post("/reviews", handlers.RequireUser(), deps.ReviewHandler.Create)
	api.Put("/reviews/:id", handlers.RequireUser(), deps.ReviewHandler.Update)
	api.Delete("/reviews/:id", handlers.RequireUser(), deps.ReviewHandler.Delete)

	// Locations
	api.Get("/locations", deps.LocationHandler.List)
	api.Get("/locations/:storeID", deps.LocationHandler.ByStore)
	api.Post("/locations", handlers.RequireStore(), deps.LocationHandler.Upsert)

	// Plans
	api.Get("/plans", deps.PlanHandler.List)

	// Users
	api.Get("/users/:id", deps.UserHandler.Get)
	api.Put("/users/:id", handlers.RequireUser(), deps.UserHandler.UpdateProfile)

	// Discovery & reports
	api.Get("/discovery/products", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}), deps.DiscoveryHandler.Search)
	api.Get("/reports/store", handlers.RequireStore(), deps.ReportHandler.Store)

	// Payment provider callback
	app.Post("/webhook", deps.WebhookHandler.Subscription)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
