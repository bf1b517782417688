// Package geo provides the great-circle distance computation the proximity
// and ranking paths are built on.
package geo

import (
	"tourguide/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const metersPerStatuteMile = 1609.344

// DistanceMiles returns the great-circle distance between two positions in
// statute miles, computed with a haversine formula on a fixed-radius sphere.
// It is non-negative, symmetric, and zero iff the positions are equal.
// Inputs are decimal degrees and are not range-checked.
func DistanceMiles(a, b entity.Location) float64 {
	p1 := orb.Point{a.Longitude, a.Latitude}
	p2 := orb.Point{b.Longitude, b.Latitude}

	return orbgeo.DistanceHaversine(p1, p2) / metersPerStatuteMile
}
