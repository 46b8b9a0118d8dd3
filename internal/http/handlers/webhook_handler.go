package handlers

import (
	"errors"
	"strconv"

	"ubishop/internal/log"
	"ubishop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	Subs *services.SubscriptionService
}

// The payment provider posts a preapproval event once a subscription is
// authorized. external_reference carries the owner's user id and reason the
// plan id, both as strings.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
	Reason            string `json:"reason"`
}

// Subscription is a stub: it trusts the event payload instead of calling
// the provider back, and acknowledges irrelevant events with 200.
func (h *WebhookHandler) Subscription(c *fiber.Ctx) error {
	var ev webhookEvent
	if err := c.BodyParser(&ev); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if ev.Type != "preapproval" {
		return c.SendStatus(fiber.StatusOK)
	}
	if ev.Status != "authorized" {
		log.Security(c, "webhook.unauthorized_payment", map[string]any{"preapproval_id": ev.Data.ID})
		return jsonError(c, fiber.StatusBadRequest, "payment not authorized")
	}

	userID, err1 := strconv.Atoi(ev.ExternalReference)
	planID, err2 := strconv.Atoi(ev.Reason)
	if err1 != nil || err2 != nil || userID <= 0 || planID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid subscription reference")
	}

	err := h.Subs.Activate(userID, planID)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrUnknownPlan):
		return jsonError(c, fiber.StatusBadRequest, "unknown plan")
	case errors.Is(err, services.ErrNoStore):
		return jsonError(c, fiber.StatusNotFound, "store not found")
	default:
		log.Error(c, "webhook.activate.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not activate plan")
	}

	log.Audit(c, "webhook.plan_activated", map[string]any{"user_id": userID, "plan_id": planID})
	return c.JSON(fiber.Map{"message": "plan activated"})
}
