// Package entity contains the core business objects of the project.
package entity

import "fmt"

// Rendering tier zoom thresholds. Zoom at or below ZoomAggMax renders
// pre-aggregated area statistics only; zoom in (ZoomAggMax, ZoomClusterMax]
// renders spatial clusters; anything above renders individual facilities.
const (
	ZoomAggMax     = 12.0
	ZoomClusterMax = 15.0
)

// Tier is the rendering granularity selected by zoom level.
type Tier string

const (
	// TierAggregate renders per-area summaries only; no facilities fetched.
	TierAggregate Tier = "aggregate"
	// TierCluster renders derived cluster points scoped to the viewport.
	TierCluster Tier = "cluster"
	// TierPoint renders individual facility markers scoped to the viewport.
	TierPoint Tier = "point"
)

// Bounds is a geographic viewport rectangle. West may exceed East when the
// viewport crosses the antimeridian; consumers split such queries at ±180.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether the coordinate falls inside the bounds, honoring
// an antimeridian-crossing longitude span.
func (b Bounds) Contains(c Coordinate) bool {
	if c.Lat < b.South || c.Lat > b.North {
		return false
	}
	if b.West <= b.East {
		return c.Lng >= b.West && c.Lng <= b.East
	}

	return c.Lng >= b.West || c.Lng <= b.East
}

// ViewportQuery is one stabilized viewport state: bounds, zoom, the tier the
// zoom maps to, and the active place-type filter. Superseded instances are
// cancelled, never queued.
type ViewportQuery struct {
	Bounds          Bounds
	Zoom            float64
	Tier            Tier
	PlaceTypeFilter PlaceType // Empty means all place types.
}

// ClusterPoint is a derived spatial cluster for the cluster tier. Never
// persisted; regenerated per viewport query.
type ClusterPoint struct {
	ID         string            `json:"id"` // "zoom:rowCell:colCell" grid key.
	Centroid   Coordinate        `json:"centroid"`
	Count      int               `json:"count"`
	CountsByPT map[PlaceType]int `json:"counts_by_place_type"`
}

// ClusterID formats the stable grid-cell identity of a cluster.
func ClusterID(zoom float64, rowCell, colCell int) string {
	return fmt.Sprintf("%g:%d:%d", zoom, rowCell, colCell)
}
