package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"golang.org/x/crypto/bcrypt"

	"ubishop/internal/http/handlers"
	"ubishop/internal/repos"
	"ubishop/internal/services"
)

// Seeded demo passwords must be stored hashed, never plaintext.
func TestPasswordsSeededAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no users seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Passw0rd!") {
			t.Fatal("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("Passw0rd!")); err != nil {
			t.Fatalf("seed hash does not validate known password: %v", err)
		}
	}
}

func TestLoginSuccessFailAndThrottle(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New()
	app.Post("/login", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), authH.Login)

	post := func(body string) *http.Response {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	// bad password -> 401
	resp := post(`{"email":"carla@ubishop.test","password":"wrongpass!"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", resp.StatusCode)
	}

	// good password -> 200 plus session cookie
	resp = post(`{"email":"carla@ubishop.test","password":"Passw0rd!"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on success, got %d", resp.StatusCode)
	}
	if extractCookie(resp, "sid") == "" {
		t.Fatal("login set no sid cookie")
	}

	// throttle after 2 attempts; a third should 429
	resp = post(`{"email":"carla@ubishop.test","password":"wrongpass!"}`)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", resp.StatusCode)
	}
}

func TestRegisterValidationAndDuplicates(t *testing.T) {
	app, _ := newApp(t)

	// weak password -> 400
	resp := doJSON(t, app, "POST", "/api/v1/auth/register", "",
		`{"name":"Pepe","email":"pepe@ubishop.test","phone":"+56944444444","password":"short","role":"CUSTOMER"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", resp.StatusCode)
	}

	// unknown role -> 400
	resp = doJSON(t, app, "POST", "/api/v1/auth/register", "",
		`{"name":"Pepe","email":"pepe@ubishop.test","phone":"+56944444444","password":"Passw0rd!","role":"ADMIN"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", resp.StatusCode)
	}

	// valid -> 201
	resp = doJSON(t, app, "POST", "/api/v1/auth/register", "",
		`{"name":"Pepe","email":"pepe@ubishop.test","phone":"+56944444444","password":"Passw0rd!","role":"CUSTOMER"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// same email again -> 409
	resp = doJSON(t, app, "POST", "/api/v1/auth/register", "",
		`{"name":"Pepe","email":"pepe@ubishop.test","phone":"+56944444444","password":"Passw0rd!","role":"CUSTOMER"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}
}
