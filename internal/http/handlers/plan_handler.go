package handlers

import (
	"ubishop/internal/log"
	"ubishop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PlanHandler struct {
	Subs *services.SubscriptionService
}

func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.Subs.ListPlans()
	if err != nil {
		log.Error(c, "plans.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load plans")
	}
	return c.JSON(plans)
}
