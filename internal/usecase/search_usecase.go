package usecase

import (
	"context"

	"foodmap/internal/domain/entity"
)

// SearchUsecase defines the interface for the radius search service.
type SearchUsecase interface {
	// SearchRadius runs one radius search end to end: validate the request,
	// resolve its center, query the facility store, and return a bounded
	// result set with the resolved center and source. Read-only; it never
	// mutates the facility store.
	SearchRadius(ctx context.Context, req *entity.SearchRequest) (*entity.SearchResult, error)

	// SearchIntent interprets a free-text query through the external intent
	// service and runs the resulting area or radius search.
	SearchIntent(ctx context.Context, query string) (*entity.SearchResult, error)
}
