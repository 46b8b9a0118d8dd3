package handlers

import (
	"errors"

	"ubishop/internal/log"
	"ubishop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// Store serves the owner's analytics dashboard.
func (h *ReportHandler) Store(c *fiber.Ctx) error {
	u := currentUser(c)
	rep, err := h.Reports.ForOwner(u.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNoStore) {
			return jsonError(c, fiber.StatusNotFound, "no store registered for this account")
		}
		log.Error(c, "reports.store.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not build report")
	}
	return c.JSON(rep)
}
