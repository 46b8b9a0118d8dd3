package handlers

import (
	"database/sql"
	"errors"

	"ubishop/internal/log"
	"ubishop/internal/repos"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *repos.UserRepo
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	u, err := h.Users.ByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "user not found")
		}
		log.Error(c, "users.get.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load user")
	}
	return c.JSON(u)
}

type profileReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile lets a user edit their own name and phone, nothing else.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if id != u.UserID {
		log.Security(c, "users.update.denied", map[string]any{"target": id})
		return jsonError(c, fiber.StatusForbidden, "can only edit your own profile")
	}

	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid name")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid phone")
	}

	if _, err := h.Users.UpdateProfile(id, name, phone); err != nil {
		log.Error(c, "users.update.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update profile")
	}

	log.Audit(c, "users.update", nil)
	return c.JSON(fiber.Map{"ok": true})
}
