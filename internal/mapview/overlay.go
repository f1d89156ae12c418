package mapview

import (
	"fmt"

	"foodmap/internal/domain/entity"
)

// OverlayKind separates the overlay families; reconciliation treats keys as
// flat, so the kind is baked into each key prefix.
type OverlayKind string

const (
	OverlayArea         OverlayKind = "area"
	OverlayCluster      OverlayKind = "cluster"
	OverlayFacility     OverlayKind = "facility"
	OverlaySearchPin    OverlayKind = "search_pin"
	OverlaySearchCircle OverlayKind = "search_circle"
)

// StableKey identifies one rendered overlay across refreshes. Two facilities
// at the same spot with the same name and type collapse into one overlay.
type StableKey string

// FacilityKey builds the identity of a facility marker from its visible
// properties rather than its store id, so re-ingested data maps onto the
// same markers.
func FacilityKey(name string, placeType entity.PlaceType, lat, lng float64) StableKey {
	return StableKey(fmt.Sprintf("facility:%s:%s:%.6f:%.6f", name, placeType, lat, lng))
}

// AreaKey builds the identity of an area polygon.
func AreaKey(name string) StableKey {
	return StableKey("area:" + entity.NormalizeAreaName(name))
}

// ClusterKey builds the identity of a cluster marker from its grid cell.
func ClusterKey(id string) StableKey {
	return StableKey("cluster:" + id)
}

// The search overlay has exactly one pin and one circle; a new search
// replaces both wholesale.
const (
	SearchPinKey    StableKey = "search:pin"
	SearchCircleKey StableKey = "search:circle"
)

// OverlayDescriptor is the renderable state of one overlay element.
type OverlayDescriptor struct {
	Key         StableKey
	Kind        OverlayKind
	Label       string
	Position    entity.Coordinate
	RadiusMiles float64 // Search circle only.
	Count       int     // Cluster markers only.
	FillColor   string  // Area polygons only.
}

// OverlayDiff is the minimal set of operations that turns one overlay state
// into another. Applying a diff twice is harmless: the second application
// finds nothing left to change.
type OverlayDiff struct {
	Create  []OverlayDescriptor
	Update  []OverlayDescriptor
	Destroy []StableKey
}

// Empty reports whether the diff carries no operations.
func (d OverlayDiff) Empty() bool {
	return len(d.Create) == 0 && len(d.Update) == 0 && len(d.Destroy) == 0
}

// Reconcile diffs the desired overlay state against the current one.
// Identical states produce an empty diff, which makes refreshes of unchanged
// viewports free.
func Reconcile(current, desired map[StableKey]OverlayDescriptor) OverlayDiff {
	var diff OverlayDiff

	for key, next := range desired {
		prev, exists := current[key]
		switch {
		case !exists:
			diff.Create = append(diff.Create, next)
		case prev != next:
			diff.Update = append(diff.Update, next)
		}
	}

	for key := range current {
		if _, keep := desired[key]; !keep {
			diff.Destroy = append(diff.Destroy, key)
		}
	}

	return diff
}

// Apply folds a diff into the current state, returning the new state.
func Apply(current map[StableKey]OverlayDescriptor, diff OverlayDiff) map[StableKey]OverlayDescriptor {
	next := make(map[StableKey]OverlayDescriptor, len(current)+len(diff.Create))
	for key, desc := range current {
		next[key] = desc
	}

	for _, key := range diff.Destroy {
		delete(next, key)
	}
	for _, desc := range diff.Create {
		next[desc.Key] = desc
	}
	for _, desc := range diff.Update {
		next[desc.Key] = desc
	}

	return next
}

// DescriptorsForAreas builds the aggregate-tier overlay: one colored polygon
// per area, filled by the poverty-rate choropleth.
func DescriptorsForAreas(areas []*entity.Area, scale ChoroplethScale) map[StableKey]OverlayDescriptor {
	state := make(map[StableKey]OverlayDescriptor, len(areas))
	for _, area := range areas {
		key := AreaKey(area.Name)
		state[key] = OverlayDescriptor{
			Key:       key,
			Kind:      OverlayArea,
			Label:     area.Name,
			FillColor: scale.ColorFor(area.PovertyRate),
		}
	}

	return state
}

// DescriptorsForClusters builds the cluster-tier overlay.
func DescriptorsForClusters(clusters []entity.ClusterPoint) map[StableKey]OverlayDescriptor {
	state := make(map[StableKey]OverlayDescriptor, len(clusters))
	for _, cluster := range clusters {
		key := ClusterKey(cluster.ID)
		state[key] = OverlayDescriptor{
			Key:      key,
			Kind:     OverlayCluster,
			Label:    fmt.Sprintf("%d", cluster.Count),
			Position: cluster.Centroid,
			Count:    cluster.Count,
		}
	}

	return state
}

// DescriptorsForFacilities builds the point-tier overlay.
func DescriptorsForFacilities(facilities []entity.Facility) map[StableKey]OverlayDescriptor {
	state := make(map[StableKey]OverlayDescriptor, len(facilities))
	for _, f := range facilities {
		key := FacilityKey(f.Name, f.PlaceType, f.Lat, f.Lng)
		state[key] = OverlayDescriptor{
			Key:      key,
			Kind:     OverlayFacility,
			Label:    f.Name,
			Position: entity.Coordinate{Lat: f.Lat, Lng: f.Lng},
		}
	}

	return state
}

// MergeSearchOverlay replaces the search family of an overlay state with the
// pin and circle of a new result. Passing nil clears the search overlay.
func MergeSearchOverlay(state map[StableKey]OverlayDescriptor, result *entity.SearchResult) map[StableKey]OverlayDescriptor {
	next := make(map[StableKey]OverlayDescriptor, len(state)+2)
	for key, desc := range state {
		if desc.Kind == OverlaySearchPin || desc.Kind == OverlaySearchCircle {
			continue
		}
		next[key] = desc
	}

	if result == nil {
		return next
	}

	next[SearchPinKey] = OverlayDescriptor{
		Key:      SearchPinKey,
		Kind:     OverlaySearchPin,
		Label:    result.ResolvedAddress,
		Position: result.ResolvedCenter,
	}
	next[SearchCircleKey] = OverlayDescriptor{
		Key:         SearchCircleKey,
		Kind:        OverlaySearchCircle,
		Position:    result.ResolvedCenter,
		RadiusMiles: result.RadiusMiles,
	}

	return next
}
