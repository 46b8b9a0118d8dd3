package handlers

import (
	"database/sql"
	"errors"

	"ubishop/internal/domain"
	"ubishop/internal/log"
	"ubishop/internal/repos"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	Stores *repos.StoreRepo
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	ss, err := h.Stores.List()
	if err != nil {
		log.Error(c, "stores.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load stores")
	}
	return c.JSON(ss)
}

func (h *StoreHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid store id")
	}
	s, err := h.Stores.ByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "store not found")
		}
		log.Error(c, "stores.get.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load store")
	}
	return c.JSON(s)
}

func (h *StoreHandler) ListWithLocation(c *fiber.Ctx) error {
	rows, err := h.Stores.ListWithLocation()
	if err != nil {
		log.Error(c, "stores.with_location.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load stores")
	}
	return c.JSON(rows)
}

// PlanByUser serves the store-profile screen: the owner's store joined
// with its active plan.
func (h *StoreHandler) PlanByUser(c *fiber.Ctx) error {
	userID, ok := validate.IntID(c.Params("userID"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	row, err := h.Stores.PlanByUser(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "no store with an active plan for this user")
		}
		log.Error(c, "stores.plan.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load plan")
	}
	return c.JSON(row)
}

type storeReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerName   string `json:"owner_name"`
}

// Create registers the caller's store. One per account; new stores start
// without a plan and stay out of discovery until one is activated.
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	u := currentUser(c)
	var req storeReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if _, ok := validate.Name(req.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid store name")
	}
	if _, err := h.Stores.ByUserID(u.UserID); err == nil {
		return jsonError(c, fiber.StatusConflict, "store already registered")
	}

	s := domain.Store{
		Name:        req.Name,
		Description: req.Description,
		OwnerName:   req.OwnerName,
		UserID:      u.UserID,
		PlanID:      0,
	}
	id, err := h.Stores.Create(s)
	if err != nil {
		log.Error(c, "stores.create.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create store")
	}
	s.StoreID = id

	log.Audit(c, "stores.create", map[string]any{"store_id": id})
	return c.Status(fiber.StatusCreated).JSON(s)
}
