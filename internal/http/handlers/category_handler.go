package handlers

import (
	"ubishop/internal/domain"
	"ubishop/internal/log"
	"ubishop/internal/services"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		log.Error(c, "categories.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(cats)
}

type categoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req categoryReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if _, ok := validate.Name(req.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category name")
	}
	cat, err := h.Catalog.CreateCategory(domain.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		log.Error(c, "categories.create.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create category")
	}
	log.Audit(c, "categories.create", map[string]any{"category_id": cat.CategoryID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}
