// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/paulmach/orb"
)

// Area is an administrative neighborhood polygon with socioeconomic context.
// Areas are loaded once per session and immutable thereafter.
type Area struct {
	ID          int          // Stable identifier assigned at ingestion.
	Name        string       // Canonical neighborhood name.
	City        string       // Administrative scope the area belongs to.
	Geometry    orb.Geometry // Polygon or MultiPolygon in (lng, lat) ring order.
	Population  *int         // Resident population, when known.
	PovertyRate *float64     // Share of residents below the poverty line, when known.
	Counts      AreaCounts   // Facility counts by place type.
}

// AreaCounts holds per-place-type facility counts for an area.
type AreaCounts struct {
	GroceryStores  int `json:"grocery_count"`
	Restaurants    int `json:"restaurant_count"`
	FarmersMarkets int `json:"farmers_market_count"`
	FoodPantries   int `json:"food_pantry_count"`
}

// Total returns the number of facilities across all place types.
func (c AreaCounts) Total() int {
	return c.GroceryStores + c.Restaurants + c.FarmersMarkets + c.FoodPantries
}

// AreaMetrics is the single-area detail surface: population, poverty rate,
// raw counts and counts per 1000 residents.
type AreaMetrics struct {
	Name        string     `json:"name"`
	Population  *int       `json:"population"`
	PovertyRate *float64   `json:"poverty_rate"`
	Counts      AreaCounts `json:"counts"`

	// Centroid is the midpoint of the area's geometry bounds; nil when the
	// area was stored without geometry.
	Centroid *Coordinate `json:"centroid,omitempty"`

	// Per-1000-resident rates; nil when population is unknown or zero.
	GroceryPer1000    *float64 `json:"grocery_per_1000"`
	RestaurantPer1000 *float64 `json:"restaurant_per_1000"`
	MarketPer1000     *float64 `json:"farmers_market_per_1000"`
	PantryPer1000     *float64 `json:"food_pantry_per_1000"`
}

// NormalizeAreaName canonicalizes an area name for matching: lowercased,
// trimmed, with interior whitespace runs collapsed to a single space.
func NormalizeAreaName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
