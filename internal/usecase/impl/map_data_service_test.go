package impl

import (
	"context"
	"testing"

	"foodmap/config"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	"foodmap/internal/domain/repository"
	mockRepo "foodmap/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapTestConfig() *config.Config {
	return &config.Config{
		Map: &config.MapConfig{
			CityScope:       "Boston",
			MaxPointResults: 6000,
		},
	}
}

func bostonBounds() entity.Bounds {
	return entity.Bounds{North: 42.40, South: 42.30, East: -71.00, West: -71.15}
}

func TestMapDataService_QueryViewport_PointMode(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()
	bounds := bostonBounds()
	facilities := []entity.Facility{
		{ID: 1, Name: "Corner Market", PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.35, Lng: -71.07},
		{ID: 2, Name: "Soup Kitchen", PlaceType: entity.PlaceTypeFoodPantry, Lat: 42.36, Lng: -71.08},
	}

	mockFacilityRepo.EXPECT().
		QueryByBounds(ctx, bounds, []entity.PlaceType(nil), 6000).
		Return(facilities, nil)

	result, err := svc.QueryViewport(ctx, bounds, 16.0, "")
	require.NoError(t, err)
	assert.Equal(t, entity.TierPoint, result.Mode)
	assert.Equal(t, facilities, result.Points)
	assert.Empty(t, result.Clusters)
	assert.Equal(t, 2, result.TotalPoints)
	assert.False(t, result.Truncated)
}

func TestMapDataService_QueryViewport_PointModeTruncation(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	cfg := mapTestConfig()
	cfg.Map.MaxPointResults = 2
	svc := NewMapDataService(mockFacilityRepo, cfg)

	ctx := context.Background()
	bounds := bostonBounds()

	mockFacilityRepo.EXPECT().
		QueryByBounds(ctx, bounds, []entity.PlaceType(nil), 2).
		Return([]entity.Facility{{ID: 1}, {ID: 2}}, nil)

	result, err := svc.QueryViewport(ctx, bounds, 17.5, "")
	require.NoError(t, err)
	assert.True(t, result.Truncated)
}

func TestMapDataService_QueryViewport_ClusterMode(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()
	bounds := bostonBounds()
	facilities := []entity.Facility{
		{ID: 1, PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.3500, Lng: -71.0700},
		{ID: 2, PlaceType: entity.PlaceTypeGroceryStore, Lat: 42.3501, Lng: -71.0701},
		{ID: 3, PlaceType: entity.PlaceTypeRestaurant, Lat: 42.3900, Lng: -71.1400},
	}

	mockFacilityRepo.EXPECT().
		QueryByBounds(ctx, bounds, []entity.PlaceType(nil), 0).
		Return(facilities, nil)

	result, err := svc.QueryViewport(ctx, bounds, 14.0, "")
	require.NoError(t, err)
	assert.Equal(t, entity.TierCluster, result.Mode)
	assert.Empty(t, result.Points)
	assert.Equal(t, 3, result.TotalPoints)
	require.NotEmpty(t, result.Clusters)

	total := 0
	for _, c := range result.Clusters {
		total += c.Count
	}
	assert.Equal(t, 3, total)
}

func TestMapDataService_QueryViewport_ClusterBoundaryZoom(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()
	bounds := bostonBounds()

	// Exactly at the threshold still clusters; only above it switches to points.
	mockFacilityRepo.EXPECT().
		QueryByBounds(ctx, bounds, []entity.PlaceType(nil), 0).
		Return(nil, nil)

	result, err := svc.QueryViewport(ctx, bounds, entity.ZoomClusterMax, "")
	require.NoError(t, err)
	assert.Equal(t, entity.TierCluster, result.Mode)
}

func TestMapDataService_QueryViewport_PlaceTypeFilter(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()
	bounds := bostonBounds()

	mockFacilityRepo.EXPECT().
		QueryByBounds(ctx, bounds, []entity.PlaceType{entity.PlaceTypeFoodPantry}, 6000).
		Return(nil, nil)

	result, err := svc.QueryViewport(ctx, bounds, 16.0, entity.PlaceTypeFoodPantry)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPoint, result.Mode)
}

func TestMapDataService_QueryViewport_InvalidPlaceType(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	result, err := svc.QueryViewport(context.Background(), bostonBounds(), 16.0, "laundromat")
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMapDataService_QueryViewport_StoreFailure(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()
	bounds := bostonBounds()

	mockFacilityRepo.EXPECT().
		QueryByBounds(ctx, bounds, []entity.PlaceType(nil), 0).
		Return(nil, repository.ErrStoreUnavailable)

	result, err := svc.QueryViewport(ctx, bounds, 12.5, "")
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestMapDataService_SamplePreview(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()
	sample := []entity.Facility{{ID: 10}, {ID: 20}}

	mockFacilityRepo.EXPECT().
		SampleAll(ctx, 0.25).
		Return(sample, nil)

	facilities, err := svc.SamplePreview(ctx, 0.25)
	require.NoError(t, err)
	assert.Equal(t, sample, facilities)
}

func TestMapDataService_SamplePreview_InvalidPct(t *testing.T) {
	mockFacilityRepo := mockRepo.NewMockFacilityRepository(t)
	svc := NewMapDataService(mockFacilityRepo, mapTestConfig())

	ctx := context.Background()

	mockFacilityRepo.EXPECT().
		SampleAll(ctx, 1.5).
		Return(nil, repository.ErrInvalidSamplePct)

	facilities, err := svc.SamplePreview(ctx, 1.5)
	require.Error(t, err)
	assert.Nil(t, facilities)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_SAMPLE_PCT", appErr.ErrorCode())
}
