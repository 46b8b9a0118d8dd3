package handlers

import (
	"time"

	"ubishop/internal/log"
	"ubishop/internal/services"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"` // CUSTOMER | STORE
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if _, ok := validate.Name(req.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid name")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid phone")
	}
	if !validate.Password(req.Password) {
		return jsonError(c, fiber.StatusBadRequest, "password too weak")
	}

	u, err := h.Auth.Register(req.Name, email, phone, req.Password, req.Role)
	switch err {
	case nil:
	case services.ErrUnknownRole:
		return jsonError(c, fiber.StatusBadRequest, "unknown role")
	case services.ErrEmailTaken:
		log.Security(c, "auth.register.duplicate", map[string]any{"email": email})
		return jsonError(c, fiber.StatusConflict, "email already registered")
	default:
		log.Error(c, "auth.register.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not register")
	}

	log.Audit(c, "auth.register", map[string]any{"email": email, "role": u.Role})
	return c.Status(fiber.StatusCreated).JSON(u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		log.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	sid := ensureSID(c)
	u, err := h.Auth.Login(sid, email, req.Password)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(u)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}
