package usecase

import (
	"context"

	"foodmap/internal/domain/entity"
)

// ViewportResult is the tiered payload for one viewport query: either
// derived clusters or individual facility points, never both.
type ViewportResult struct {
	Mode        entity.Tier           `json:"mode"`
	Zoom        float64               `json:"zoom"`
	Clusters    []entity.ClusterPoint `json:"clusters,omitempty"`
	Points      []entity.Facility     `json:"points,omitempty"`
	TotalPoints int                   `json:"total_points"`
	Truncated   bool                  `json:"truncated"`
}

// MapDataUsecase serves viewport-scoped facility data at the granularity the
// zoom level calls for.
type MapDataUsecase interface {
	// QueryViewport returns clusters for cluster-tier zooms and individual
	// points above the cluster threshold. Aggregate-tier zooms are answered
	// by the area surface instead; callers should not reach this method for
	// them, and it degrades to cluster mode if they do.
	QueryViewport(ctx context.Context, bounds entity.Bounds, zoom float64, placeType entity.PlaceType) (*ViewportResult, error)

	// SamplePreview returns a deterministic facility sample for the initial
	// map render before any viewport query has settled.
	SamplePreview(ctx context.Context, samplePct float64) ([]entity.Facility, error)
}
