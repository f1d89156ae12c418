// Package geo is the pure geometry kernel: bounding-box math, great-circle
// distance and point-in-polygon containment over orb geometries. It holds no
// state and performs no I/O.
package geo

import (
	"github.com/paulmach/orb"

	"foodmap/internal/domain/entity"
)

// EmptyBounds returns an inverted rectangle that any ExtendBounds call will
// snap to the first coordinate it sees.
func EmptyBounds() entity.Bounds {
	return entity.Bounds{
		North: -90,
		South: 90,
		East:  -180,
		West:  180,
	}
}

// IsEmptyBounds reports whether b is still the inverted seed rectangle.
func IsEmptyBounds(b entity.Bounds) bool {
	return b.South > b.North
}

// ExtendBounds widens b to cover every coordinate reachable from the
// geometry, recursing through polygons, multi-geometries and collections.
// Antimeridian-crossing geometries are not normalized; callers feed
// conventional (lng, lat) coordinates.
func ExtendBounds(b entity.Bounds, g orb.Geometry) entity.Bounds {
	switch geom := g.(type) {
	case orb.Point:
		return extendByPoint(b, geom)
	case orb.MultiPoint:
		for _, pt := range geom {
			b = extendByPoint(b, pt)
		}
	case orb.LineString:
		for _, pt := range geom {
			b = extendByPoint(b, pt)
		}
	case orb.Ring:
		for _, pt := range geom {
			b = extendByPoint(b, pt)
		}
	case orb.MultiLineString:
		for _, ls := range geom {
			b = ExtendBounds(b, ls)
		}
	case orb.Polygon:
		for _, ring := range geom {
			b = ExtendBounds(b, ring)
		}
	case orb.MultiPolygon:
		for _, poly := range geom {
			b = ExtendBounds(b, poly)
		}
	case orb.Collection:
		for _, child := range geom {
			b = ExtendBounds(b, child)
		}
	}

	return b
}

func extendByPoint(b entity.Bounds, pt orb.Point) entity.Bounds {
	lng, lat := pt.Lon(), pt.Lat()
	if lat > b.North {
		b.North = lat
	}
	if lat < b.South {
		b.South = lat
	}
	if lng > b.East {
		b.East = lng
	}
	if lng < b.West {
		b.West = lng
	}

	return b
}

// ExpandBounds returns b widened symmetrically by latPad/lngPad degrees.
// Used to build a soft viewport restriction larger than the tight data
// bounds so facilities at the scope edge are not clipped.
func ExpandBounds(b entity.Bounds, latPad, lngPad float64) entity.Bounds {
	return entity.Bounds{
		North: clampLat(b.North + latPad),
		South: clampLat(b.South - latPad),
		East:  b.East + lngPad,
		West:  b.West - lngPad,
	}
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}

	return lat
}
