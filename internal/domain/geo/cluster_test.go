package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodmap/internal/domain/entity"
)

func TestClusterCellSizeDegrees(t *testing.T) {
	// Low zoom clamps at the maximum cell size.
	assert.Equal(t, clusterMaxCellDegrees, ClusterCellSizeDegrees(5))
	// Street zoom clamps at the minimum cell size.
	assert.Equal(t, clusterMinCellDegrees, ClusterCellSizeDegrees(18))
	// Mid zoom halves per level above the base.
	assert.InDelta(t, 0.35/32, ClusterCellSizeDegrees(13), 1e-9)
	// Finer zoom never yields a coarser grid.
	assert.LessOrEqual(t, ClusterCellSizeDegrees(14), ClusterCellSizeDegrees(13))
}

func TestClusterFacilities_GroupsByCell(t *testing.T) {
	facilities := []entity.Facility{
		{ID: 1, PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.3601, Lng: -71.0589},
		{ID: 2, PlaceType: entity.PlaceTypeRestaurant, Lat: 42.3602, Lng: -71.0588},
		{ID: 3, PlaceType: entity.PlaceTypeFoodPantry, Lat: 42.40, Lng: -71.10},
	}

	clusters := ClusterFacilities(facilities, 14)
	require.Len(t, clusters, 2)

	// Largest cluster first.
	assert.Equal(t, 2, clusters[0].Count)
	assert.Equal(t, 1, clusters[1].Count)

	assert.Equal(t, 1, clusters[0].CountsByPT[entity.PlaceTypeGroceryStore])
	assert.Equal(t, 1, clusters[0].CountsByPT[entity.PlaceTypeRestaurant])

	// Centroid is the mean of the members.
	assert.InDelta(t, 42.36015, clusters[0].Centroid.Lat, 1e-6)
	assert.InDelta(t, -71.05885, clusters[0].Centroid.Lng, 1e-6)
}

func TestClusterFacilities_Deterministic(t *testing.T) {
	facilities := []entity.Facility{
		{ID: 1, PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.36, Lng: -71.06},
		{ID: 2, PlaceType: entity.PlaceTypeRestaurant, Lat: 42.40, Lng: -71.10},
		{ID: 3, PlaceType: entity.PlaceTypeFoodPantry, Lat: 42.30, Lng: -71.00},
	}

	first := ClusterFacilities(facilities, 13)
	second := ClusterFacilities(facilities, 13)

	assert.Equal(t, first, second)
}

func TestClusterFacilities_Empty(t *testing.T) {
	assert.Empty(t, ClusterFacilities(nil, 13))
}
