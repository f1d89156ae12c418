package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodmap/config"
	"foodmap/internal/domain/service"
	"foodmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) service.Geocoder {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Geocoder: &config.GeocoderConfig{
			BaseURL: server.URL,
			APIKey:  "test-key",
		},
	}

	return NewGoogleGeocoder(cfg)
}

func TestGoogleGeocoder_Geocode_Success(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1 City Hall Square", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "1 City Hall Sq, Boston, MA 02201, USA",
				"geometry": {"location": {"lat": 42.3601, "lng": -71.0589}}
			}]
		}`))
	})

	result, err := geocoder.Geocode(context.Background(), "1 City Hall Square")
	require.NoError(t, err)
	assert.InDelta(t, 42.3601, result.Coordinate.Lat, 1e-9)
	assert.InDelta(t, -71.0589, result.Coordinate.Lng, 1e-9)
	assert.Equal(t, "1 City Hall Sq, Boston, MA 02201, USA", result.FormattedAddress)
}

func TestGoogleGeocoder_Geocode_ZeroResults(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	result, err := geocoder.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, service.ErrNoGeocodeResult))
}

func TestGoogleGeocoder_Geocode_UpstreamFailure(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result, err := geocoder.Geocode(context.Background(), "1 City Hall Square")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, errors.Is(err, service.ErrNoGeocodeResult))
}

func TestGoogleGeocoder_Geocode_ErrorStatus(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	result, err := geocoder.Geocode(context.Background(), "1 City Hall Square")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, errors.Is(err, service.ErrNoGeocodeResult))
}
