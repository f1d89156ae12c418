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

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapDataUC usecase.MapDataUsecase
	Logger    *slog.Logger
}

// MapHandler holds dependencies for viewport-related handlers
type MapHandler struct {
	mapDataUC usecase.MapDataUsecase
	logger    *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapDataUC: params.MapDataUC,
		logger:    params.Logger,
	}
}

// ViewportRequest represents the query parameters for a viewport query.
// Coordinates are pointers so that zero values (equator, prime meridian,
// zoom 0) pass the required check.
type ViewportRequest struct {
	North     *float64 `query:"north" validate:"required,gte=-90,lte=90"`
	South     *float64 `query:"south" validate:"required,gte=-90,lte=90"`
	East      *float64 `query:"east" validate:"required,gte=-180,lte=180"`
	West      *float64 `query:"west" validate:"required,gte=-180,lte=180"`
	Zoom      *float64 `query:"zoom" validate:"required,gte=0,lte=22"`
	PlaceType string   `query:"place_type" validate:"omitempty,oneof=grocery_store restaurant farmers_market food_pantry"`
}

// SamplePreviewRequest represents the query parameters for the preview sample
type SamplePreviewRequest struct {
	SamplePct float64 `query:"sample_pct" validate:"required,gt=0,lte=1"`
}

// viewportResultDTO is the wire form of a viewport answer.
type viewportResultDTO struct {
	Mode        string                `json:"mode"`
	Zoom        float64               `json:"zoom"`
	Clusters    []entity.ClusterPoint `json:"clusters,omitempty"`
	Points      []facilityDTO         `json:"points,omitempty"`
	TotalPoints int                   `json:"total_points"`
	Truncated   bool                  `json:"truncated"`
}

// QueryViewport handles GET /map/viewport
func (h *MapHandler) QueryViewport(c echo.Context) error {
	var req ViewportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid viewport input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if *req.South > *req.North {
		return domainerrors.ErrValidationFailed.WithDetails("south must not exceed north")
	}

	bounds := entity.Bounds{
		North: *req.North,
		South: *req.South,
		East:  *req.East,
		West:  *req.West,
	}

	result, err := h.mapDataUC.QueryViewport(c.Request().Context(), bounds, *req.Zoom, entity.PlaceType(req.PlaceType))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, viewportResultDTO{
		Mode:        string(result.Mode),
		Zoom:        result.Zoom,
		Clusters:    result.Clusters,
		Points:      toFacilityDTOs(result.Points),
		TotalPoints: result.TotalPoints,
		Truncated:   result.Truncated,
	})
}

// SamplePreview handles GET /map/preview
func (h *MapHandler) SamplePreview(c echo.Context) error {
	var req SamplePreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	facilities, err := h.mapDataUC.SamplePreview(c.Request().Context(), req.SamplePct)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"facilities": toFacilityDTOs(facilities),
		"count":      len(facilities),
	})
}
