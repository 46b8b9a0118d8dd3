package handlers

import (
	"database/sql"
	"errors"

	"ubishop/internal/domain"
	"ubishop/internal/log"
	"ubishop/internal/services"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListProducts()
	if err != nil {
		log.Error(c, "products.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		log.Error(c, "products.get.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(p)
}

func (h *ProductHandler) ListWithStore(c *fiber.Ctx) error {
	rows, err := h.Catalog.ListProductsWithStore()
	if err != nil {
		log.Error(c, "products.with_store.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(rows)
}

func (h *ProductHandler) ListWithLocation(c *fiber.Ctx) error {
	rows, err := h.Catalog.ListProductsWithLocation()
	if err != nil {
		log.Error(c, "products.with_location.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(rows)
}

func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category id")
	}
	rows, err := h.Catalog.ListProductsByCategory(id)
	if err != nil {
		log.Error(c, "products.by_category.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(rows)
}

type productReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"category_id"`
	Status      string  `json:"status"`
}

func (req productReq) check() (string, bool) {
	if _, ok := validate.Name(req.Name); !ok {
		return "invalid name", false
	}
	if req.Price < 0 {
		return "price must be non-negative", false
	}
	if req.CategoryID <= 0 {
		return "invalid category id", false
	}
	switch req.Status {
	case "", domain.StatusActive, domain.StatusInactive:
	default:
		return "invalid status", false
	}
	return "", true
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	u := currentUser(c)
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if msg, ok := req.check(); !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product", "reason": msg})
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	p, err := h.Catalog.CreateProduct(u.UserID, domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	})
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNoStore):
		return jsonError(c, fiber.StatusForbidden, "no store registered for this account")
	default:
		log.Error(c, "products.create.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create product")
	}

	log.Audit(c, "products.create", map[string]any{"product_id": p.ProductID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if msg, ok := req.check(); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	p, err := h.Catalog.UpdateProduct(u.UserID, domain.Product{
		ProductID:   id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	})
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return jsonError(c, fiber.StatusNotFound, "product not found")
	case errors.Is(err, services.ErrNotOwner):
		log.Security(c, "products.update.denied", map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusForbidden, "not your product")
	default:
		log.Error(c, "products.update.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update product")
	}

	log.Audit(c, "products.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	u := currentUser(c)
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	err := h.Catalog.DeleteProduct(u.UserID, id)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return jsonError(c, fiber.StatusNotFound, "product not found")
	case errors.Is(err, services.ErrNotOwner):
		log.Security(c, "products.delete.denied", map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusForbidden, "not your product")
	default:
		log.Error(c, "products.delete.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete product")
	}

	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
