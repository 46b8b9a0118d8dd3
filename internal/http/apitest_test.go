package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"ubishop/internal/config"
	"ubishop/internal/http/handlers"
	"ubishop/internal/repos"
	"ubishop/internal/services"
)

// newApp wires the real handlers over a freshly seeded in-memory database,
// mirroring the route table in cmd/ubishop (without the rate limiters).
func newApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}
	deps := handlers.NewDeps(db, config.Config{RadiusKm: config.DefaultRadiusKm})

	app := fiber.New()
	app.Use(handlers.AttachUser(authSvc))

	api := app.Group("/api/v1")
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/products", handlers.RequireStore(), deps.ProductHandler.Create)
	api.Put("/products/:id", handlers.RequireStore(), deps.ProductHandler.Update)
	api.Delete("/products/:id", handlers.RequireStore(), deps.ProductHandler.Delete)

	api.Get("/reviews/product/:id", deps.ReviewHandler.ByProduct)
	api.Post("/reviews", handlers.RequireUser(), deps.ReviewHandler.Create)

	api.Get("/discovery/products", deps.DiscoveryHandler.Search)
	api.Get("/reports/store", handlers.RequireStore(), deps.ReportHandler.Store)

	app.Post("/webhook", deps.WebhookHandler.Subscription)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// login authenticates a seeded account and returns its session cookie.
func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/v1/auth/login", "",
		`{"email":"`+email+`","password":"Passw0rd!"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("login set no sid cookie")
	}
	return sid
}

func doJSON(t *testing.T, app *fiber.App, method, path, sid, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}
