package handler

import (
	"log/slog"
	"net/http"

	"foodmap/internal/delivery/http/response"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	"foodmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// AreaHandlerParams holds dependencies for AreaHandler, injected by Fx.
type AreaHandlerParams struct {
	fx.In

	AreaUC usecase.AreaUsecase
	Logger *slog.Logger
}

// AreaHandler holds dependencies for area-related handlers
type AreaHandler struct {
	areaUC usecase.AreaUsecase
	logger *slog.Logger
}

// NewAreaHandler is the constructor for AreaHandler
func NewAreaHandler(params AreaHandlerParams) *AreaHandler {
	return &AreaHandler{
		areaUC: params.AreaUC,
		logger: params.Logger,
	}
}

// ListAreasRequest represents the query parameters for listing areas
type ListAreasRequest struct {
	City         string `query:"city"`
	WithGeometry bool   `query:"with_geometry"`
}

// LocateAreaRequest represents the query parameters for a containment check.
// Pointers keep a point on the equator or prime meridian valid.
type LocateAreaRequest struct {
	Lat *float64 `query:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `query:"lng" validate:"required,gte=-180,lte=180"`
}

// areaDTO is the wire form of an area.
type areaDTO struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Population  *int              `json:"population"`
	PovertyRate *float64          `json:"poverty_rate"`
	Counts      entity.AreaCounts `json:"counts"`
	TotalCount  int               `json:"total_count"`
	Geometry    *geojson.Geometry `json:"geometry,omitempty"`
}

// ListAreas handles GET /areas
func (h *AreaHandler) ListAreas(c echo.Context) error {
	var req ListAreasRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid area input")
	}

	areas, err := h.areaUC.ListAreas(c.Request().Context(), req.City, req.WithGeometry)
	if err != nil {
		return err
	}

	dtos := make([]areaDTO, 0, len(areas))
	for _, area := range areas {
		dtos = append(dtos, toAreaDTO(area))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"areas": dtos,
		"count": len(dtos),
	})
}

// GetAreaMetrics handles GET /areas/:name/metrics
func (h *AreaHandler) GetAreaMetrics(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("area name is required")
	}

	metrics, err := h.areaUC.GetAreaMetrics(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, metrics)
}

// LocateArea handles GET /areas/locate
func (h *AreaHandler) LocateArea(c echo.Context) error {
	var req LocateAreaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid locate input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	area, err := h.areaUC.LocateArea(c.Request().Context(), entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		return err
	}

	dto := toAreaDTO(area)
	dto.Geometry = nil // The caller asked where the point is, not for the polygon.

	return response.Success(c, http.StatusOK, dto)
}

func toAreaDTO(area *entity.Area) areaDTO {
	dto := areaDTO{
		ID:          area.ID,
		Name:        area.Name,
		City:        area.City,
		Population:  area.Population,
		PovertyRate: area.PovertyRate,
		Counts:      area.Counts,
		TotalCount:  area.Counts.Total(),
	}

	if area.Geometry != nil {
		dto.Geometry = geojson.NewGeometry(area.Geometry)
	}

	return dto
}
