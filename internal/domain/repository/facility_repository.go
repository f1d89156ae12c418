// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodmap/internal/domain/entity"
	"foodmap/internal/errors"
)

// Domain-specific errors for the facility store.
var (
	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached or a query times out. Callers must not conflate it with an
	// empty result set.
	ErrStoreUnavailable = errors.New("facility store unavailable")

	// ErrInvalidSamplePct is returned when a sampling fraction is outside (0, 1].
	ErrInvalidSamplePct = errors.New("sample percentage must be in (0, 1]")
)

// FacilityRepository is the read-mostly facility store. Ingestion happens
// offline and never runs concurrently with serving, so implementations need
// no write coordination.
type FacilityRepository interface {
	// QueryByRadius returns facilities within radiusMiles of center as
	// distance-annotated hits, optionally filtered by place type, capped at
	// limit. Ordering is deterministic: ascending distance, then ascending
	// id, so identical queries are reproducible.
	QueryByRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, placeTypes []entity.PlaceType, limit int) ([]entity.FacilityHit, error)

	// QueryByBounds returns facilities inside the viewport rectangle,
	// optionally filtered by place type, capped at limit, ordered by id.
	QueryByBounds(ctx context.Context, bounds entity.Bounds, placeTypes []entity.PlaceType, limit int) ([]entity.Facility, error)

	// QueryByArea returns facilities whose neighborhood normalizes to
	// areaName (case and whitespace insensitive).
	QueryByArea(ctx context.Context, areaName string, placeTypes []entity.PlaceType, limit int) ([]entity.Facility, error)

	// SampleAll returns a deterministic stride sample of roughly
	// samplePct of all facilities for the initial preview render.
	// Returns ErrInvalidSamplePct unless 0 < samplePct <= 1.
	SampleAll(ctx context.Context, samplePct float64) ([]entity.Facility, error)
}
