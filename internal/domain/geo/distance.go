package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"foodmap/internal/domain/entity"
)

const (
	metersPerMile = 1609.344

	// Degrees of latitude per mile, and of longitude per mile at the equator.
	milesPerDegreeLat = 69.0
	milesPerDegreeLng = 69.172
)

// DistanceMiles returns the great-circle distance between two coordinates.
func DistanceMiles(a, b entity.Coordinate) float64 {
	meters := orbgeo.Distance(orb.Point{a.Lng, a.Lat}, orb.Point{b.Lng, b.Lat})

	return meters / metersPerMile
}

// BoundsForRadius returns a rectangle guaranteed to cover the circle of the
// given radius around center. Used as a cheap prefilter before the exact
// distance check.
func BoundsForRadius(center entity.Coordinate, radiusMiles float64) entity.Bounds {
	latPad := radiusMiles / milesPerDegreeLat

	// Longitude degrees shrink with latitude; guard the cosine near the poles.
	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngPad := radiusMiles / (milesPerDegreeLng * cosLat)

	return ExpandBounds(entity.Bounds{
		North: center.Lat,
		South: center.Lat,
		East:  center.Lng,
		West:  center.Lng,
	}, latPad, lngPad)
}
