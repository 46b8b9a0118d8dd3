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

type LocationHandler struct {
	Locs   *repos.LocationRepo
	Stores *repos.StoreRepo
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	ls, err := h.Locs.List()
	if err != nil {
		log.Error(c, "locations.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load locations")
	}
	return c.JSON(ls)
}

func (h *LocationHandler) ByStore(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("storeID"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid store id")
	}
	l, err := h.Locs.ByStore(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "location not found")
		}
		log.Error(c, "locations.get.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load location")
	}
	return c.JSON(l)
}

type locationReq struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Upsert sets the caller's store location. The store is resolved from the
// session, so an owner can never move someone else's pin.
func (h *LocationHandler) Upsert(c *fiber.Ctx) error {
	u := currentUser(c)
	var req locationReq
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		log.Security(c, "validation.fail", map[string]any{"field": "coordinates"})
		return jsonError(c, fiber.StatusBadRequest, "coordinates out of range")
	}

	st, err := h.Stores.ByUserID(u.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusForbidden, "no store registered for this account")
		}
		log.Error(c, "locations.upsert.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not save location")
	}

	l := domain.Location{
		StoreID:   st.StoreID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	if err := h.Locs.Upsert(l); err != nil {
		log.Error(c, "locations.upsert.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not save location")
	}

	log.Audit(c, "locations.upsert", map[string]any{"store_id": st.StoreID})
	return c.Status(fiber.StatusCreated).JSON(l)
}
