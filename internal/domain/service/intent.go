package service

import (
	"context"

	"foodmap/internal/domain/entity"
)

// SearchIntent is the structured interpretation of a free-text query as
// produced by the external text-to-intent service.
type SearchIntent struct {
	PlaceType    entity.PlaceType // Empty when no place type was mentioned.
	Neighborhood string           // Empty when no neighborhood was mentioned.
	Address      string           // Empty when no street address was mentioned.
}

// IntentParser is the boundary to the external natural-language intent
// service. The engine only consumes its output as an alternate way to build
// a search; it never implements the parsing itself.
type IntentParser interface {
	ParseQuery(ctx context.Context, query string) (*SearchIntent, error)
}
