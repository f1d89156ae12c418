package impl

import (
	"context"

	"foodmap/config"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	"foodmap/internal/domain/geo"
	"foodmap/internal/domain/repository"
	"foodmap/internal/errors"
	"foodmap/internal/usecase"
)

type mapDataService struct {
	facilityRepo repository.FacilityRepository
	cfg          *config.Config
}

// NewMapDataService creates the tiered viewport query service.
func NewMapDataService(facilityRepo repository.FacilityRepository, cfg *config.Config) usecase.MapDataUsecase {
	if cfg.Map == nil {
		cfg.Map = &config.MapConfig{MaxPointResults: 6000}
	}

	return &mapDataService{
		facilityRepo: facilityRepo,
		cfg:          cfg,
	}
}

// QueryViewport serves point mode above the cluster zoom threshold and
// cluster mode everywhere else. Aggregate-tier traffic belongs to the area
// surface and is answered as clusters if it lands here anyway.
func (s *mapDataService) QueryViewport(ctx context.Context, bounds entity.Bounds, zoom float64, placeType entity.PlaceType) (*usecase.ViewportResult, error) {
	var placeTypes []entity.PlaceType
	if placeType != "" {
		if !placeType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown place type " + placeType.String())
		}
		placeTypes = append(placeTypes, placeType)
	}

	if zoom > entity.ZoomClusterMax {
		return s.queryPoints(ctx, bounds, zoom, placeTypes)
	}

	return s.queryClusters(ctx, bounds, zoom, placeTypes)
}

func (s *mapDataService) queryPoints(ctx context.Context, bounds entity.Bounds, zoom float64, placeTypes []entity.PlaceType) (*usecase.ViewportResult, error) {
	limit := s.cfg.Map.MaxPointResults

	points, err := s.facilityRepo.QueryByBounds(ctx, bounds, placeTypes, limit)
	if err != nil {
		return nil, mapStoreError(err, "viewport point query failed")
	}

	return &usecase.ViewportResult{
		Mode:        entity.TierPoint,
		Zoom:        zoom,
		Points:      points,
		TotalPoints: len(points),
		Truncated:   len(points) >= limit,
	}, nil
}

func (s *mapDataService) queryClusters(ctx context.Context, bounds entity.Bounds, zoom float64, placeTypes []entity.PlaceType) (*usecase.ViewportResult, error) {
	// No cap: clustering needs the full viewport population to count
	// correctly, and cluster payloads stay small regardless.
	facilities, err := s.facilityRepo.QueryByBounds(ctx, bounds, placeTypes, 0)
	if err != nil {
		return nil, mapStoreError(err, "viewport cluster query failed")
	}

	return &usecase.ViewportResult{
		Mode:        entity.TierCluster,
		Zoom:        zoom,
		Clusters:    geo.ClusterFacilities(facilities, zoom),
		TotalPoints: len(facilities),
	}, nil
}

// SamplePreview returns the initial preview sample.
func (s *mapDataService) SamplePreview(ctx context.Context, samplePct float64) ([]entity.Facility, error) {
	facilities, err := s.facilityRepo.SampleAll(ctx, samplePct)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSamplePct) {
			return nil, domainerrors.ErrInvalidSamplePct
		}

		return nil, mapStoreError(err, "preview sample failed")
	}

	return facilities, nil
}

func mapStoreError(err error, details string) error {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		return domainerrors.NewStoreExecuteError(err, details)
	}

	return errors.Wrap(err, details)
}
