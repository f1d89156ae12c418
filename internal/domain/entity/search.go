// Package entity contains the core business objects of the project.
package entity

// SearchSource records how a search center was produced.
type SearchSource string

const (
	// SearchSourceAddress means the center came from geocoding free-form text.
	SearchSourceAddress SearchSource = "address"
	// SearchSourcePin means the center was a raw dropped-pin coordinate.
	SearchSourcePin SearchSource = "pin"
	// SearchSourceNeighborhood means the center was anchored to a named area.
	SearchSourceNeighborhood SearchSource = "neighborhood"
)

// CenterHint lets a caller force which center reference wins when both an
// address and a pin are present.
type CenterHint string

const (
	// CenterHintNone applies the default precedence: non-empty address wins.
	CenterHintNone CenterHint = ""
	// CenterHintAddress forces the address even if a pin is also present.
	CenterHintAddress CenterHint = "address"
	// CenterHintPin forces the pin even if address text is also present.
	CenterHintPin CenterHint = "pin"
)

// SearchCenter is the location reference of a radius search: a free-form
// address, a dropped pin, or both plus a hint.
type SearchCenter struct {
	Address string
	Pin     *Coordinate
	Hint    CenterHint
}

// SearchRequest describes one radius search. Ephemeral; validated before any
// network call.
type SearchRequest struct {
	Center      SearchCenter
	RadiusMiles float64
	PlaceTypes  []PlaceType // Empty means all place types.
	Limit       int         // Zero means the configured default cap.
}

// ResolvedCenter is the coordinate a search ultimately used after geocoding
// or pin pass-through.
type ResolvedCenter struct {
	Coordinate
	FormattedAddress string // Set only when resolution went through geocoding.
	Source           SearchSource
}

// FacilityHit is one radius-search match with its great-circle distance from
// the resolved center.
type FacilityHit struct {
	Facility
	DistanceMiles float64
}

// SearchResult is the complete outcome of one radius search. It is recomputed
// per request and fully replaces any prior overlay state; results are never
// merged.
type SearchResult struct {
	Facilities      []FacilityHit
	ResolvedCenter  Coordinate
	ResolvedAddress string // Empty unless the center was geocoded.
	SearchSource    SearchSource
	RadiusMiles     float64
	Truncated       bool // True when the result hit the configured cap.
}
