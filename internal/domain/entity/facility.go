// Package entity contains the core business objects of the project.
package entity

// Facility is a single food-access location (grocery store, restaurant,
// farmers market or food pantry). Facilities are created by offline batch
// ingestion and are immutable on the serving path.
type Facility struct {
	ID             int64     // Store-assigned identifier.
	Name           string    // Display name.
	PlaceType      PlaceType // Facility classification.
	Subtype        string    // Optional finer classification (e.g., "supermarket").
	Lat            float64   // Geographic latitude.
	Lng            float64   // Geographic longitude.
	Address        string    // Human-readable street address.
	Neighborhood   string    // Name of the containing area, if resolved at ingestion.
	BusinessStatus string    // Upstream operational status, if known.
	OpenNow        *bool     // Upstream open-now flag, if known.
}

// Coordinate is a (lat, lng) pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
