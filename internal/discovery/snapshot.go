package discovery

import (
	"errors"
	"fmt"

	"ubishop/internal/domain"
)

var ErrIncompleteSnapshot = errors.New("snapshot missing collection")

// Snapshot is the immutable set of collections one discovery call reads.
// Every collection must be present (possibly empty) before the pipeline
// runs; a nil collection means a fetch never completed.
type Snapshot struct {
	Products   []domain.Product
	Stores     []domain.Store
	Locations  []domain.Location
	Categories []domain.Category

	storesByID       map[int]domain.Store
	locationsByStore map[int]domain.Location
	categoryIDByName map[string]int
}

func NewSnapshot(products []domain.Product, stores []domain.Store, locations []domain.Location, categories []domain.Category) (*Snapshot, error) {
	switch {
	case products == nil:
		return nil, fmt.Errorf("%w: products", ErrIncompleteSnapshot)
	case stores == nil:
		return nil, fmt.Errorf("%w: stores", ErrIncompleteSnapshot)
	case locations == nil:
		return nil, fmt.Errorf("%w: locations", ErrIncompleteSnapshot)
	case categories == nil:
		return nil, fmt.Errorf("%w: categories", ErrIncompleteSnapshot)
	}

	s := &Snapshot{
		Products:         products,
		Stores:           stores,
		Locations:        locations,
		Categories:       categories,
		storesByID:       make(map[int]domain.Store, len(stores)),
		locationsByStore: make(map[int]domain.Location, len(locations)),
		categoryIDByName: make(map[string]int, len(categories)),
	}
	for _, st := range stores {
		s.storesByID[st.StoreID] = st
	}
	for _, loc := range locations {
		s.locationsByStore[loc.StoreID] = loc
	}
	for _, cat := range categories {
		s.categoryIDByName[cat.Name] = cat.CategoryID
	}
	return s, nil
}

// Eligible reports whether a product is visible to the viewer described by
// ctx. A store owner only ever sees their own catalog, regardless of plan,
// price or proximity. Everyone else requires the owning store to hold an
// active plan and, when the viewer's coordinates are known, to have a
// location within ctx.RadiusKm.
func (s *Snapshot) Eligible(p domain.Product, ctx QueryContext) bool {
	st, ok := s.storesByID[p.StoreID]
	if !ok {
		// Product without a resolvable store is never shown.
		return false
	}
	if ctx.Role == domain.RoleStore {
		return st.UserID == ctx.UserID
	}
	if st.PlanID == 0 {
		return false
	}
	if ctx.Viewer == nil {
		// No fix: global visibility is the fallback, not a failure.
		return true
	}
	loc, ok := s.locationsByStore[p.StoreID]
	if !ok {
		return false
	}
	d := Distance(*ctx.Viewer, Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude})
	return d <= ctx.RadiusKm
}
