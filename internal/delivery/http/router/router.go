// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodmap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler *handler.SearchHandler
	MapHandler    *handler.MapHandler
	AreaHandler   *handler.AreaHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler *handler.SearchHandler
	mapHandler    *handler.MapHandler
	areaHandler   *handler.AreaHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler: params.SearchHandler,
		mapHandler:    params.MapHandler,
		areaHandler:   params.AreaHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Search routes
	searchGroup := e.Group("/search")
	{
		searchGroup.POST("/radius", r.searchHandler.SearchRadius)
		searchGroup.POST("/intent", r.searchHandler.SearchIntent)
	}

	// Map routes serving the viewport tiers
	mapGroup := e.Group("/map")
	{
		mapGroup.GET("/viewport", r.mapHandler.QueryViewport)
		mapGroup.GET("/preview", r.mapHandler.SamplePreview)
	}

	// Area routes serving polygons, metrics and containment checks
	areaGroup := e.Group("/areas")
	{
		areaGroup.GET("", r.areaHandler.ListAreas)
		areaGroup.GET("/locate", r.areaHandler.LocateArea)
		areaGroup.GET("/:name/metrics", r.areaHandler.GetAreaMetrics)
	}
}
