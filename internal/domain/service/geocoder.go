// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"foodmap/internal/domain/entity"
	"foodmap/internal/errors"
)

// ErrNoGeocodeResult is returned when the geocoder answers with zero results.
var ErrNoGeocodeResult = errors.New("no geocode result")

// GeocodeResult is a successfully resolved address.
type GeocodeResult struct {
	Coordinate       entity.Coordinate
	FormattedAddress string
}

// Geocoder turns a free-form address into a coordinate. Implementations must
// honor the context deadline; upstream failures and zero-result answers both
// surface as errors, never as a zero coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}
