// Package geocode implements address resolution against the Google
// geocoding REST API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"foodmap/config"
	"foodmap/internal/domain/entity"
	"foodmap/internal/domain/service"
	"foodmap/internal/errors"
)

type googleGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoogleGeocoder is the constructor for the Google geocoding client. The
// per-request deadline comes from the caller's context, not the HTTP client.
func NewGoogleGeocoder(cfg *config.Config) service.Geocoder {
	return &googleGeocoder{
		baseURL: cfg.Geocoder.BaseURL,
		apiKey:  cfg.Geocoder.APIKey,
		client:  http.DefaultClient,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-form address to a coordinate. Zero results come
// back as service.ErrNoGeocodeResult so callers can tell "bad address" apart
// from "geocoder down".
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)
	requestURL := g.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build geocode request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call geocoder")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read geocode response")
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, "decode geocode response")
	}

	if decoded.Status == "ZERO_RESULTS" {
		return nil, service.ErrNoGeocodeResult
	}
	if decoded.Status != "OK" {
		return nil, errors.Errorf("geocoder status %q", decoded.Status)
	}
	if len(decoded.Results) == 0 {
		return nil, service.ErrNoGeocodeResult
	}

	first := decoded.Results[0]

	return &service.GeocodeResult{
		Coordinate: entity.Coordinate{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
		FormattedAddress: first.FormattedAddress,
	}, nil
}
