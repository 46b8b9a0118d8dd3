package discovery_test

import (
	"math"
	"testing"

	"ubishop/internal/discovery"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	p := discovery.Coordinates{Latitude: -35.4355, Longitude: -71.6433}
	if d := discovery.Distance(p, p); d != 0 {
		t.Fatalf("want 0 for identical points, got %v", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := discovery.Coordinates{Latitude: -33.45, Longitude: -70.66}
	b := discovery.Coordinates{Latitude: -35.43, Longitude: -71.64}
	if d1, d2 := discovery.Distance(a, b), discovery.Distance(b, a); d1 != d2 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceQuarterMeridian(t *testing.T) {
	// Equator to 90 degrees of longitude away, still on the equator.
	a := discovery.Coordinates{Latitude: 0, Longitude: 0}
	b := discovery.Coordinates{Latitude: 0, Longitude: 90}
	d := discovery.Distance(a, b)
	if math.Abs(d-10007.5) > 1 {
		t.Fatalf("want ~10007.5 km, got %v", d)
	}
}
