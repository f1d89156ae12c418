package mapview

import (
	"testing"

	"foodmap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFacilities() []entity.Facility {
	return []entity.Facility{
		{ID: 1, Name: "Corner Market", PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.35, Lng: -71.07},
		{ID: 2, Name: "Soup Kitchen", PlaceType: entity.PlaceTypeFoodPantry, Lat: 42.36, Lng: -71.08},
	}
}

func TestReconcile_IdenticalStatesProduceEmptyDiff(t *testing.T) {
	state := DescriptorsForFacilities(sampleFacilities())
	again := DescriptorsForFacilities(sampleFacilities())

	diff := Reconcile(state, again)
	assert.True(t, diff.Empty())
}

func TestReconcile_CreateUpdateDestroy(t *testing.T) {
	current := DescriptorsForFacilities(sampleFacilities())

	next := DescriptorsForFacilities([]entity.Facility{
		{ID: 1, Name: "Corner Market", PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.35, Lng: -71.07},
		{ID: 3, Name: "Farm Stand", PlaceType: entity.PlaceTypeFarmersMarket, Lat: 42.37, Lng: -71.05},
	})

	diff := Reconcile(current, next)
	require.Len(t, diff.Create, 1)
	assert.Equal(t, "Farm Stand", diff.Create[0].Label)
	assert.Empty(t, diff.Update)
	require.Len(t, diff.Destroy, 1)
	assert.Equal(t, FacilityKey("Soup Kitchen", entity.PlaceTypeFoodPantry, 42.36, -71.08), diff.Destroy[0])
}

func TestReconcile_ChangedDescriptorYieldsUpdate(t *testing.T) {
	area := &entity.Area{Name: "Roxbury"}
	scaleA := ChoroplethScale{Min: 0, Max: 1, Low: RGB{255, 255, 255}, High: RGB{0, 0, 0}}
	scaleB := ChoroplethScale{Min: 0, Max: 2, Low: RGB{255, 255, 255}, High: RGB{0, 0, 0}}
	rate := 0.5
	area.PovertyRate = &rate

	current := DescriptorsForAreas([]*entity.Area{area}, scaleA)
	next := DescriptorsForAreas([]*entity.Area{area}, scaleB)

	diff := Reconcile(current, next)
	assert.Empty(t, diff.Create)
	assert.Empty(t, diff.Destroy)
	require.Len(t, diff.Update, 1)
	assert.Equal(t, AreaKey("Roxbury"), diff.Update[0].Key)
}

// Applying a diff and re-reconciling must be a fixed point.
func TestReconcile_ApplyReachesDesiredState(t *testing.T) {
	current := DescriptorsForFacilities(sampleFacilities())
	desired := DescriptorsForClusters([]entity.ClusterPoint{
		{ID: "14:1234:2345", Centroid: entity.Coordinate{Lat: 42.35, Lng: -71.07}, Count: 12},
	})

	state := Apply(current, Reconcile(current, desired))
	assert.Equal(t, desired, state)
	assert.True(t, Reconcile(state, desired).Empty())
}

func TestMergeSearchOverlay_ReplacesWholesale(t *testing.T) {
	base := DescriptorsForFacilities(sampleFacilities())

	first := MergeSearchOverlay(base, &entity.SearchResult{
		ResolvedCenter:  entity.Coordinate{Lat: 42.36, Lng: -71.05},
		ResolvedAddress: "1 City Hall Sq",
		RadiusMiles:     0.5,
	})
	require.Contains(t, first, SearchPinKey)
	require.Contains(t, first, SearchCircleKey)
	assert.Equal(t, 0.5, first[SearchCircleKey].RadiusMiles)

	second := MergeSearchOverlay(first, &entity.SearchResult{
		ResolvedCenter: entity.Coordinate{Lat: 42.30, Lng: -71.10},
		RadiusMiles:    2.0,
	})
	assert.Equal(t, 2.0, second[SearchCircleKey].RadiusMiles)
	assert.Equal(t, entity.Coordinate{Lat: 42.30, Lng: -71.10}, second[SearchPinKey].Position)

	// The facility family is untouched by search merges.
	assert.Len(t, second, len(base)+2)

	cleared := MergeSearchOverlay(second, nil)
	assert.NotContains(t, cleared, SearchPinKey)
	assert.NotContains(t, cleared, SearchCircleKey)
	assert.Len(t, cleared, len(base))
}
