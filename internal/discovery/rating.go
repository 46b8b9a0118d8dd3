package discovery

import (
	"strconv"
	"strings"

	"ubishop/internal/domain"
)

// Legacy reviews store a label instead of a number; both map onto the same
// 1..5 scale.
var ratingLabels = map[string]int{
	"Excellent": 5,
	"Good":      4,
	"Fair":      3,
	"Poor":      2,
	"Terrible":  1,
}

// MapRating normalizes a stored rating to the 1..5 integer scale. Numeric
// strings and the labels above are accepted; anything else maps to 0, which
// still counts toward a product's review total.
func MapRating(raw string) int {
	v := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 5 {
		return n
	}
	return ratingLabels[v]
}

// ValidRating reports whether raw is acceptable for a new review.
func ValidRating(raw string) bool {
	v := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(v); err == nil {
		return n >= 1 && n <= 5
	}
	_, ok := ratingLabels[v]
	return ok
}

// ProductRating is a product's mean rating. Rated is false when the product
// has no reviews at all; Average is meaningless in that case and the
// product is excluded from best/worst selection.
type ProductRating struct {
	Product string  `json:"product"`
	Average float64 `json:"average"`
	Rated   bool    `json:"rated"`
}

// AverageRating computes the arithmetic mean of the mapped rating values of
// the reviews for p.
func AverageRating(p domain.Product, reviews []domain.Review) ProductRating {
	sum, n := 0, 0
	for _, rv := range reviews {
		if rv.ProductID != p.ProductID {
			continue
		}
		sum += MapRating(rv.Rating)
		n++
	}
	if n == 0 {
		return ProductRating{Product: p.Name}
	}
	return ProductRating{Product: p.Name, Average: float64(sum) / float64(n), Rated: true}
}
