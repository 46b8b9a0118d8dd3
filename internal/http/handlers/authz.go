package handlers

import (
	"ubishop/internal/domain"
	applog "ubishop/internal/log"
	"ubishop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AttachUser resolves the session cookie into request locals so handlers
// and the logger can see who is calling. Anonymous requests pass through
// as guests.
func AttachUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := auth.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
				c.Locals("userID", u.UserID)
				c.Locals("role", u.Role)
			}
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

// RequireUser rejects anonymous calls.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if currentUser(c) == nil {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		return c.Next()
	}
}

// RequireStore only lets authenticated STORE accounts through.
func RequireStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if u == nil {
			return jsonError(c, fiber.StatusUnauthorized, "login required")
		}
		if u.Role != domain.RoleStore {
			applog.Security(c, "access.denied.store", nil)
			return jsonError(c, fiber.StatusForbidden, "store account required")
		}
		return c.Next()
	}
}
