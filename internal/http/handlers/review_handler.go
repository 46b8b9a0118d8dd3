package handlers

import (
	"database/sql"
	"errors"

	"ubishop/internal/log"
	"ubishop/internal/services"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	rvs, err := h.Reviews.List()
	if err != nil {
		log.Error(c, "reviews.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load reviews")
	}
	return c.JSON(rvs)
}

func (h *ReviewHandler) ByProduct(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	rvs, err := h.Reviews.ByProduct(id)
	if err != nil {
		log.Error(c, "reviews.by_product.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load reviews")
	}
	return c.JSON(rvs)
}

type reviewReq struct {
	ProductID int    `json:"product_id"`
	Rating    string `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	u := currentUser(c)
	var req reviewReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.ProductID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}

	rv, err := h.Reviews.Create(u.UserID, req.ProductID, req.Rating, req.Comment)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidRating):
		log.Security(c, "validation.fail", map[string]any{"field": "rating", "value": req.Rating})
		return jsonError(c, fiber.StatusBadRequest, "rating must be 1..5 or a known label")
	case errors.Is(err, sql.ErrNoRows):
		return jsonError(c, fiber.StatusNotFound, "product not found")
	default:
		log.Error(c, "reviews.create.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create review")
	}

	log.Audit(c, "reviews.create", map[string]any{"review_id": rv.ReviewID, "product_id": rv.ProductID})
	return c.Status(fiber.StatusCreated).JSON(rv)
}

type reviewEditReq struct {
	Rating  string `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid review id")
	}
	var req reviewEditReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	err := h.Reviews.Update(u.UserID, id, req.Rating, req.Comment)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidRating):
		return jsonError(c, fiber.StatusBadRequest, "rating must be 1..5 or a known label")
	case errors.Is(err, sql.ErrNoRows):
		return jsonError(c, fiber.StatusNotFound, "review not found")
	case errors.Is(err, services.ErrNotAuthor):
		log.Security(c, "reviews.update.denied", map[string]any{"review_id": id})
		return jsonError(c, fiber.StatusForbidden, "not your review")
	default:
		log.Error(c, "reviews.update.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update review")
	}

	log.Audit(c, "reviews.update", map[string]any{"review_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid review id")
	}

	err := h.Reviews.Delete(u.UserID, id)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return jsonError(c, fiber.StatusNotFound, "review not found")
	case errors.Is(err, services.ErrNotAuthor):
		log.Security(c, "reviews.delete.denied", map[string]any{"review_id": id})
		return jsonError(c, fiber.StatusForbidden, "not your review")
	default:
		log.Error(c, "reviews.delete.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete review")
	}

	log.Audit(c, "reviews.delete", map[string]any{"review_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
