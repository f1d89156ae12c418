// Package mapview implements the map-facing engine: zoom tier selection,
// viewport query coordination, overlay reconciliation and the choropleth
// color scale. It consumes the HTTP API; it never touches the store.
package mapview

import "foodmap/internal/domain/entity"

// TierFor maps a zoom level to its rendering tier. Total over all finite
// zooms; both thresholds are upper-inclusive, so zoom 12 still aggregates
// and zoom 15 still clusters.
func TierFor(zoom float64) entity.Tier {
	switch {
	case zoom <= entity.ZoomAggMax:
		return entity.TierAggregate
	case zoom <= entity.ZoomClusterMax:
		return entity.TierCluster
	default:
		return entity.TierPoint
	}
}
