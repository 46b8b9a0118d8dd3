package discovery

import (
	"fmt"

	"ubishop/internal/domain"
)

// NoData marks best/worst when no product of the store has any rating.
const NoData = "no data"

type Report struct {
	StoreID       int             `json:"store_id"`
	ActiveCount   int             `json:"active_count"`
	InactiveRatio string          `json:"inactive_ratio"`
	Ratings       []ProductRating `json:"ratings"`
	BestProduct   string          `json:"best_product"`
	WorstProduct  string          `json:"worst_product"`
}

// BuildReport aggregates the store's catalog: active-product count, the
// inactive share as a percentage string, per-product mean ratings, and the
// best/worst rated products. Pure; same inputs, same report.
func BuildReport(storeID int, products []domain.Product, reviews []domain.Review) Report {
	rep := Report{
		StoreID:       storeID,
		InactiveRatio: "0%",
		BestProduct:   NoData,
		WorstProduct:  NoData,
	}

	var mine []domain.Product
	for _, p := range products {
		if p.StoreID == storeID {
			mine = append(mine, p)
		}
	}
	if len(mine) == 0 {
		rep.Ratings = []ProductRating{}
		return rep
	}

	for _, p := range mine {
		if p.Status == domain.StatusActive {
			rep.ActiveCount++
		}
	}
	inactive := len(mine) - rep.ActiveCount
	rep.InactiveRatio = fmt.Sprintf("%.2f%%", float64(inactive)/float64(len(mine))*100)

	rep.Ratings = make([]ProductRating, 0, len(mine))
	for _, p := range mine {
		rep.Ratings = append(rep.Ratings, AverageRating(p, reviews))
	}

	// Ties keep the first product encountered in input order.
	var best, worst *ProductRating
	for i := range rep.Ratings {
		r := &rep.Ratings[i]
		if !r.Rated {
			continue
		}
		if best == nil || r.Average > best.Average {
			best = r
		}
		if worst == nil || r.Average < worst.Average {
			worst = r
		}
	}
	if best != nil {
		rep.BestProduct = best.Product
		rep.WorstProduct = worst.Product
	}
	return rep
}
