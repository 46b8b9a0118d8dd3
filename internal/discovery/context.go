package discovery

import (
	"errors"
	"fmt"
	"math"
)

type PriceOrder string

const (
	PriceAsc  PriceOrder = "asc"
	PriceDesc PriceOrder = "desc"
	PriceNone PriceOrder = "none"
)

// CategoryAll is the "all categories" sentinel the storefront sends.
const CategoryAll = "Todos"

var (
	ErrNegativeRadius = errors.New("negative radius")
	ErrBadCoordinates = errors.New("coordinates out of range")
	ErrBadPriceOrder  = errors.New("invalid price order")
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// QueryContext carries everything a single discovery call depends on.
// Viewer is nil when the device location is unavailable; that skips the
// proximity filter rather than failing the query.
type QueryContext struct {
	Role           string
	UserID         int
	SearchText     string
	CategoryFilter string
	PriceOrder     PriceOrder
	Viewer         *Coordinates
	RadiusKm       float64
}

// Validate rejects structurally invalid contexts (caller bugs).
// Business-level absence (no viewer location, empty search) is not an error.
func (q QueryContext) Validate() error {
	if q.RadiusKm < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeRadius, q.RadiusKm)
	}
	switch q.PriceOrder {
	case PriceAsc, PriceDesc, PriceNone, "":
	default:
		return fmt.Errorf("%w: %q", ErrBadPriceOrder, q.PriceOrder)
	}
	if q.Viewer != nil {
		if err := q.Viewer.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c Coordinates) validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		c.Latitude < -90 || c.Latitude > 90 ||
		c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: (%v, %v)", ErrBadCoordinates, c.Latitude, c.Longitude)
	}
	return nil
}
