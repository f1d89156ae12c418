package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodmap/internal/domain/entity"
)

func TestExtendBounds_Point(t *testing.T) {
	b := ExtendBounds(EmptyBounds(), orb.Point{-71.06, 42.36})

	assert.Equal(t, 42.36, b.North)
	assert.Equal(t, 42.36, b.South)
	assert.Equal(t, -71.06, b.East)
	assert.Equal(t, -71.06, b.West)
	assert.False(t, IsEmptyBounds(b))
}

func TestExtendBounds_RecursesThroughCollections(t *testing.T) {
	geom := orb.Collection{
		orb.MultiPolygon{
			{{{-71.2, 42.2}, {-71.0, 42.2}, {-71.0, 42.4}, {-71.2, 42.4}}},
		},
		orb.LineString{{-70.9, 42.3}, {-71.1, 42.5}},
		orb.MultiPoint{{-71.3, 42.25}},
	}

	b := ExtendBounds(EmptyBounds(), geom)

	assert.Equal(t, 42.5, b.North)
	assert.Equal(t, 42.2, b.South)
	assert.Equal(t, -70.9, b.East)
	assert.Equal(t, -71.3, b.West)
}

func TestExtendBounds_GrowsExistingBounds(t *testing.T) {
	b := entity.Bounds{North: 42.4, South: 42.3, East: -71.0, West: -71.1}

	// A point already inside changes nothing.
	unchanged := ExtendBounds(b, orb.Point{-71.05, 42.35})
	assert.Equal(t, b, unchanged)

	grown := ExtendBounds(b, orb.Point{-70.95, 42.45})
	assert.Equal(t, 42.45, grown.North)
	assert.Equal(t, -70.95, grown.East)
	assert.Equal(t, b.South, grown.South)
	assert.Equal(t, b.West, grown.West)
}

func TestExpandBounds_SymmetricPadding(t *testing.T) {
	b := entity.Bounds{North: 42.4, South: 42.3, East: -71.0, West: -71.1}

	padded := ExpandBounds(b, 0.05, 0.1)

	assert.InDelta(t, 42.45, padded.North, 1e-9)
	assert.InDelta(t, 42.25, padded.South, 1e-9)
	assert.InDelta(t, -70.9, padded.East, 1e-9)
	assert.InDelta(t, -71.2, padded.West, 1e-9)
}

func TestExpandBounds_ClampsLatitude(t *testing.T) {
	b := entity.Bounds{North: 89.9, South: -89.9, East: 10, West: -10}

	padded := ExpandBounds(b, 1, 0)

	assert.Equal(t, 90.0, padded.North)
	assert.Equal(t, -90.0, padded.South)
}

func TestBoundsContains_AntimeridianSpan(t *testing.T) {
	b := entity.Bounds{North: 10, South: -10, East: -170, West: 170}

	assert.True(t, b.Contains(entity.Coordinate{Lat: 0, Lng: 175}))
	assert.True(t, b.Contains(entity.Coordinate{Lat: 0, Lng: -175}))
	assert.False(t, b.Contains(entity.Coordinate{Lat: 0, Lng: 0}))
}

func TestDistanceMiles_BostonScenario(t *testing.T) {
	center := entity.Coordinate{Lat: 42.3601, Lng: -71.0589}
	near := entity.Coordinate{Lat: 42.3610, Lng: -71.0580}
	far := entity.Coordinate{Lat: 42.40, Lng: -71.10}

	nearDist := DistanceMiles(center, near)
	farDist := DistanceMiles(center, far)

	assert.Less(t, nearDist, 0.5)
	assert.Greater(t, farDist, 0.5)
	assert.InDelta(t, 3.0, farDist, 0.6)
}

func TestBoundsForRadius_CoversCircle(t *testing.T) {
	center := entity.Coordinate{Lat: 42.3601, Lng: -71.0589}
	b := BoundsForRadius(center, 0.5)

	require.True(t, b.Contains(center))

	// Points half a radius away in each cardinal direction stay inside.
	quarterLat := 0.25 / milesPerDegreeLat
	assert.True(t, b.Contains(entity.Coordinate{Lat: center.Lat + quarterLat, Lng: center.Lng}))
	assert.True(t, b.Contains(entity.Coordinate{Lat: center.Lat - quarterLat, Lng: center.Lng}))

	// A point a full diameter north is outside the prefilter box.
	assert.False(t, b.Contains(entity.Coordinate{Lat: center.Lat + 1.0/milesPerDegreeLat*1.5, Lng: center.Lng}))
}
