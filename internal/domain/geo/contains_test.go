package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"foodmap/internal/domain/entity"
)

// A simple unit square around the origin, without a closing vertex.
func openSquare() orb.Ring {
	return orb.Ring{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
}

// The same square with the first vertex repeated at the end.
func closedSquare() orb.Ring {
	ring := openSquare()

	return append(ring, ring[0])
}

func TestContainsPoint_RingClosureVariants(t *testing.T) {
	points := []struct {
		name string
		pt   entity.Coordinate
		want bool
	}{
		{name: "center", pt: entity.Coordinate{Lat: 0, Lng: 0}, want: true},
		{name: "inside off-center", pt: entity.Coordinate{Lat: 0.7, Lng: -0.3}, want: true},
		{name: "outside east", pt: entity.Coordinate{Lat: 0, Lng: 1.5}, want: false},
		{name: "outside north", pt: entity.Coordinate{Lat: 2, Lng: 0}, want: false},
		{name: "on edge", pt: entity.Coordinate{Lat: 0, Lng: 1}, want: true},
		{name: "on vertex", pt: entity.Coordinate{Lat: 1, Lng: 1}, want: true},
	}

	for _, tt := range points {
		t.Run(tt.name, func(t *testing.T) {
			open := ContainsPoint(orb.Polygon{openSquare()}, tt.pt)
			closed := ContainsPoint(orb.Polygon{closedSquare()}, tt.pt)

			assert.Equal(t, tt.want, open, "open ring")
			assert.Equal(t, open, closed, "closure variants must agree")
		})
	}
}

func TestContainsPoint_MultiPolygonUnion(t *testing.T) {
	west := orb.Polygon{{{-3, -1}, {-2, -1}, {-2, 1}, {-3, 1}}}
	east := orb.Polygon{{{2, -1}, {3, -1}, {3, 1}, {2, 1}}}
	multi := orb.MultiPolygon{west, east}

	assert.True(t, ContainsPoint(multi, entity.Coordinate{Lat: 0, Lng: -2.5}))
	assert.True(t, ContainsPoint(multi, entity.Coordinate{Lat: 0, Lng: 2.5}))
	// The gap between members is outside the union.
	assert.False(t, ContainsPoint(multi, entity.Coordinate{Lat: 0, Lng: 0}))
}

func TestContainsPoint_CollectionUnion(t *testing.T) {
	coll := orb.Collection{
		orb.Polygon{openSquare()},
		orb.MultiPolygon{{{{4, 4}, {6, 4}, {6, 6}, {4, 6}}}},
	}

	assert.True(t, ContainsPoint(coll, entity.Coordinate{Lat: 0, Lng: 0}))
	assert.True(t, ContainsPoint(coll, entity.Coordinate{Lat: 5, Lng: 5}))
	assert.False(t, ContainsPoint(coll, entity.Coordinate{Lat: 3, Lng: 3}))
}

func TestContainsPoint_DegenerateGeometry(t *testing.T) {
	assert.False(t, ContainsPoint(orb.Polygon{}, entity.Coordinate{}))
	assert.False(t, ContainsPoint(orb.Polygon{orb.Ring{{0, 0}, {1, 1}}}, entity.Coordinate{}))
	assert.False(t, ContainsPoint(orb.Point{0, 0}, entity.Coordinate{}))
}

func TestContainsPoint_IsIdempotent(t *testing.T) {
	poly := orb.Polygon{closedSquare()}
	pt := entity.Coordinate{Lat: 0.25, Lng: 0.25}

	first := ContainsPoint(poly, pt)
	second := ContainsPoint(poly, pt)

	assert.True(t, first)
	assert.Equal(t, first, second)
}
