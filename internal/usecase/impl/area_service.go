package impl

import (
	"context"
	"fmt"

	"foodmap/config"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	"foodmap/internal/domain/geo"
	"foodmap/internal/domain/repository"
	"foodmap/internal/errors"
	"foodmap/internal/usecase"
)

type areaService struct {
	areaRepo repository.AreaRepository
	cfg      *config.Config
}

// NewAreaService creates the area query service.
func NewAreaService(areaRepo repository.AreaRepository, cfg *config.Config) usecase.AreaUsecase {
	if cfg.Map == nil {
		cfg.Map = &config.MapConfig{CityScope: "Boston"}
	}

	return &areaService{
		areaRepo: areaRepo,
		cfg:      cfg,
	}
}

// ListAreas returns all areas in the city scope.
func (s *areaService) ListAreas(ctx context.Context, city string, withGeometry bool) ([]*entity.Area, error) {
	if city == "" {
		city = s.cfg.Map.CityScope
	}

	areas, err := s.areaRepo.ListAreas(ctx, city, withGeometry)
	if err != nil {
		return nil, mapStoreError(err, "list areas failed")
	}

	return areas, nil
}

// GetAreaMetrics returns the detail surface for one area.
func (s *areaService) GetAreaMetrics(ctx context.Context, name string) (*entity.AreaMetrics, error) {
	metrics, err := s.areaRepo.GetAreaMetrics(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, domainerrors.ErrAreaNotFound.WithDetails(fmt.Sprintf("no area named %q", name))
		}

		return nil, mapStoreError(err, "area metrics lookup failed")
	}

	return metrics, nil
}

// LocateArea returns the loaded area containing the point. A point outside
// every loaded polygon is a scoping rejection, not a store failure.
func (s *areaService) LocateArea(ctx context.Context, point entity.Coordinate) (*entity.Area, error) {
	areas, err := s.areaRepo.ListAreas(ctx, s.cfg.Map.CityScope, true)
	if err != nil {
		return nil, mapStoreError(err, "area load for containment check failed")
	}

	for _, area := range areas {
		if area.Geometry == nil {
			continue
		}
		if geo.ContainsPoint(area.Geometry, point) {
			return area, nil
		}
	}

	return nil, domainerrors.ErrOutsideEligibleArea.WithDetails(
		fmt.Sprintf("point (%.5f, %.5f) is outside every loaded area", point.Lat, point.Lng))
}
