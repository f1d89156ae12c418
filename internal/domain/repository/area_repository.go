package repository

import (
	"context"

	"foodmap/internal/domain/entity"
	"foodmap/internal/errors"
)

// ErrAreaNotFound is returned when a named area does not match any loaded area.
var ErrAreaNotFound = errors.New("area not found")

// AreaRepository serves neighborhood polygons and their socioeconomic
// metrics. Areas are loaded once per session and immutable thereafter, which
// makes the whole surface safely cacheable.
type AreaRepository interface {
	// ListAreas returns every area in the city scope, alphabetically by
	// name. Geometry decoding is skipped when withGeometry is false.
	ListAreas(ctx context.Context, city string, withGeometry bool) ([]*entity.Area, error)

	// GetAreaMetrics returns the detail surface for one area by normalized
	// name. Returns ErrAreaNotFound when the name matches nothing.
	GetAreaMetrics(ctx context.Context, name string) (*entity.AreaMetrics, error)
}
