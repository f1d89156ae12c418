package usecase

import (
	"context"

	"foodmap/internal/domain/entity"
)

// AreaUsecase serves neighborhood polygons, metrics and containment checks.
type AreaUsecase interface {
	// ListAreas returns all areas in the city scope, with geometry when
	// requested (startup load and choropleth refresh).
	ListAreas(ctx context.Context, city string, withGeometry bool) ([]*entity.Area, error)

	// GetAreaMetrics returns the single-area detail surface.
	GetAreaMetrics(ctx context.Context, name string) (*entity.AreaMetrics, error)

	// LocateArea finds the loaded area containing the coordinate. Returns
	// domain errors.ErrOutsideEligibleArea when the point is outside every
	// loaded polygon, so a stray pin is rejected before any search runs.
	LocateArea(ctx context.Context, point entity.Coordinate) (*entity.Area, error)
}
