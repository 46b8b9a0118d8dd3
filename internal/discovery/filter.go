package discovery

import (
	"sort"
	"strings"

	"ubishop/internal/domain"
)

// FilterProducts runs the discovery pipeline over the snapshot:
// eligibility, category, text, then a stable price sort. Stages are applied
// one after another so each remains auditable on its own; the result is
// recomputed from scratch on every call.
func (s *Snapshot) FilterProducts(ctx QueryContext) ([]domain.Product, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if s.Eligible(p, ctx) {
			out = append(out, p)
		}
	}
	// An owner browsing their own catalog sees all of it; category and text
	// narrowing only applies to shoppers.
	if ctx.Role != domain.RoleStore {
		out = s.filterCategory(out, ctx.CategoryFilter)
		out = filterText(out, ctx.SearchText)
	}
	sortByPrice(out, ctx.PriceOrder)
	return out, nil
}

// filterCategory keeps products in the category named by filter. The
// storefront filters by display name; "Todos" (or empty) passes everything
// and an unknown name matches nothing.
func (s *Snapshot) filterCategory(in []domain.Product, filter string) []domain.Product {
	if filter == "" || filter == CategoryAll {
		return in
	}
	catID, ok := s.categoryIDByName[filter]
	if !ok {
		return in[:0]
	}
	out := in[:0]
	for _, p := range in {
		if p.CategoryID == catID {
			out = append(out, p)
		}
	}
	return out
}

func filterText(in []domain.Product, q string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return in
	}
	out := in[:0]
	for _, p := range in {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// sortByPrice sorts in place. The sort is stable so that PriceNone and
// equal-price products keep their input order.
func sortByPrice(ps []domain.Product, order PriceOrder) {
	switch order {
	case PriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case PriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	}
}
