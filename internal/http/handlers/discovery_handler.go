package handlers

import (
	"errors"
	"strings"

	"ubishop/internal/discovery"
	"ubishop/internal/domain"
	"ubishop/internal/log"
	"ubishop/internal/services"
	"ubishop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DiscoveryHandler struct {
	Discovery *services.DiscoveryService
	RadiusKm  float64
}

// Search runs the discovery pipeline for the caller. Query params: q
// (text), category (display name, "Todos" = all), order (asc|desc),
// lat/lon (viewer position), radius (km, defaults to the configured one).
func (h *DiscoveryHandler) Search(c *fiber.Ctx) error {
	ctx := discovery.QueryContext{
		Role:     domain.RoleGuest,
		RadiusKm: h.RadiusKm,
	}
	if u := currentUser(c); u != nil {
		ctx.Role = u.Role
		ctx.UserID = u.UserID
	}

	if rawQ := strings.TrimSpace(c.Query("q")); rawQ != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "q"})
			return jsonError(c, fiber.StatusBadRequest, "enter a valid keyword (letters/numbers only)")
		}
		ctx.SearchText = q
	}
	ctx.CategoryFilter = strings.TrimSpace(c.Query("category"))

	switch order := c.Query("order"); order {
	case "", "none":
		ctx.PriceOrder = discovery.PriceNone
	case "asc":
		ctx.PriceOrder = discovery.PriceAsc
	case "desc":
		ctx.PriceOrder = discovery.PriceDesc
	default:
		return jsonError(c, fiber.StatusBadRequest, "order must be asc or desc")
	}

	latS, lonS := c.Query("lat"), c.Query("lon")
	if (latS == "") != (lonS == "") {
		return jsonError(c, fiber.StatusBadRequest, "lat and lon must be sent together")
	}
	if latS != "" {
		lat, okLat := validate.Coordinate(latS, 90)
		lon, okLon := validate.Coordinate(lonS, 180)
		if !okLat || !okLon {
			log.Security(c, "validation.fail", map[string]any{"field": "coordinates"})
			return jsonError(c, fiber.StatusBadRequest, "coordinates out of range")
		}
		ctx.Viewer = &discovery.Coordinates{Latitude: lat, Longitude: lon}
	}
	if r := c.Query("radius"); r != "" {
		radius, ok := validate.Radius(r)
		if !ok {
			return jsonError(c, fiber.StatusBadRequest, "radius must be a positive number of km")
		}
		ctx.RadiusKm = radius
	}

	products, err := h.Discovery.Discover(ctx)
	if err != nil {
		if errors.Is(err, discovery.ErrNegativeRadius) ||
			errors.Is(err, discovery.ErrBadCoordinates) ||
			errors.Is(err, discovery.ErrBadPriceOrder) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Error(c, "discovery.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load results")
	}

	return c.JSON(fiber.Map{"count": len(products), "products": products})
}
