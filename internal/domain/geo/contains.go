package geo

import (
	"github.com/paulmach/orb"

	"foodmap/internal/domain/entity"
)

// ContainsPoint reports whether the coordinate falls inside the geometry
// using an even-odd ring test. Multi-geometries and collections use union
// semantics: any member containing the point wins. Interior rings are not
// treated as holes. Rings work identically with or without a repeated
// closing vertex.
func ContainsPoint(g orb.Geometry, c entity.Coordinate) bool {
	pt := orb.Point{c.Lng, c.Lat}

	switch geom := g.(type) {
	case orb.Ring:
		return ringContains(geom, pt)
	case orb.Polygon:
		if len(geom) == 0 {
			return false
		}

		return ringContains(geom[0], pt)
	case orb.MultiPolygon:
		for _, poly := range geom {
			if ContainsPoint(poly, c) {
				return true
			}
		}
	case orb.Collection:
		for _, child := range geom {
			if ContainsPoint(child, c) {
				return true
			}
		}
	}

	return false
}

// ringContains runs the even-odd crossing test. Edges wrap from the last
// vertex back to the first, so an explicit closing vertex only adds a
// zero-length edge that contributes no crossing.
func ringContains(ring orb.Ring, pt orb.Point) bool {
	if len(ring) < 3 {
		return false
	}

	lng, lat := pt.Lon(), pt.Lat()
	inside := false

	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]

		if pointOnSegment(pt, a, b) {
			// Boundary points count as contained.
			return true
		}

		x1, y1 := a.Lon(), a.Lat()
		x2, y2 := b.Lon(), b.Lat()

		if (y1 > lat) != (y2 > lat) && lng < (x2-x1)*(lat-y1)/(y2-y1)+x1 {
			inside = !inside
		}
	}

	return inside
}

const segmentEpsilon = 1e-12

func pointOnSegment(pt, a, b orb.Point) bool {
	ax, ay := a.Lon(), a.Lat()
	bx, by := b.Lon(), b.Lat()
	px, py := pt.Lon(), pt.Lat()

	segLenSq := (bx-ax)*(bx-ax) + (by-ay)*(by-ay)
	if segLenSq <= segmentEpsilon {
		return (px-ax)*(px-ax)+(py-ay)*(py-ay) <= segmentEpsilon
	}

	cross := (px-ax)*(by-ay) - (py-ay)*(bx-ax)
	if cross > segmentEpsilon || cross < -segmentEpsilon {
		return false
	}

	dot := (px-ax)*(bx-ax) + (py-ay)*(by-ay)
	if dot < -segmentEpsilon {
		return false
	}

	return dot-segLenSq <= segmentEpsilon
}
