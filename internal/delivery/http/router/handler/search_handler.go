package handler

import (
	"log/slog"
	"net/http"

	"foodmap/internal/delivery/http/response"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	"foodmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	AreaUC   usecase.AreaUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for search-related handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	areaUC   usecase.AreaUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		areaUC:   params.AreaUC,
		logger:   params.Logger,
	}
}

// RadiusSearchRequest represents the request body for a radius search
type RadiusSearchRequest struct {
	Address     string   `json:"address"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Hint        string   `json:"hint" validate:"omitempty,oneof=address pin"`
	RadiusMiles float64  `json:"radius_miles" validate:"required,gt=0"`
	PlaceTypes  []string `json:"place_types" validate:"omitempty,dive,oneof=grocery_store restaurant farmers_market food_pantry"`
	Limit       int      `json:"limit" validate:"omitempty,gte=1"`
}

// IntentSearchRequest represents the request body for a free-text search
type IntentSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// searchResultDTO is the wire form of a completed search.
type searchResultDTO struct {
	Facilities      []facilityHitDTO  `json:"facilities"`
	Count           int               `json:"count"`
	ResolvedCenter  entity.Coordinate `json:"resolved_center"`
	ResolvedAddress string            `json:"resolved_address,omitempty"`
	SearchSource    string            `json:"search_source"`
	RadiusMiles     float64           `json:"radius_miles,omitempty"`
	Truncated       bool              `json:"truncated"`
}

// SearchRadius handles POST /search/radius
func (h *SearchHandler) SearchRadius(c echo.Context) error {
	var req RadiusSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if (req.Lat == nil) != (req.Lng == nil) {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lng must be provided together")
	}
	if req.Address == "" && req.Lat == nil {
		return domainerrors.ErrMissingCenter
	}
	if req.Address != "" && req.Lat != nil && req.Hint == "" {
		return domainerrors.ErrAmbiguousCenter
	}

	ctx := c.Request().Context()
	center := entity.SearchCenter{
		Address: req.Address,
		Hint:    entity.CenterHint(req.Hint),
	}

	if req.Lat != nil {
		pin := entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
		center.Pin = &pin

		// A dropped pin must land inside a covered neighborhood before any
		// search runs on it.
		if usesPin(center) {
			if _, err := h.areaUC.LocateArea(ctx, pin); err != nil {
				return err
			}
		}
	}

	placeTypes := make([]entity.PlaceType, 0, len(req.PlaceTypes))
	for _, pt := range req.PlaceTypes {
		placeTypes = append(placeTypes, entity.PlaceType(pt))
	}

	result, err := h.searchUC.SearchRadius(ctx, &entity.SearchRequest{
		Center:      center,
		RadiusMiles: req.RadiusMiles,
		PlaceTypes:  placeTypes,
		Limit:       req.Limit,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toSearchResultDTO(result))
}

// SearchIntent handles POST /search/intent
func (h *SearchHandler) SearchIntent(c echo.Context) error {
	var req IntentSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	result, err := h.searchUC.SearchIntent(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toSearchResultDTO(result))
}

// usesPin mirrors the resolution precedence: the pin is the effective center
// when hinted, or when no address text is present.
func usesPin(center entity.SearchCenter) bool {
	if center.Pin == nil {
		return false
	}
	if center.Hint == entity.CenterHintPin {
		return true
	}

	return center.Hint == entity.CenterHintNone && center.Address == ""
}

func toSearchResultDTO(result *entity.SearchResult) searchResultDTO {
	return searchResultDTO{
		Facilities:      toFacilityHitDTOs(result.Facilities),
		Count:           len(result.Facilities),
		ResolvedCenter:  result.ResolvedCenter,
		ResolvedAddress: result.ResolvedAddress,
		SearchSource:    string(result.SearchSource),
		RadiusMiles:     result.RadiusMiles,
		Truncated:       result.Truncated,
	}
}
