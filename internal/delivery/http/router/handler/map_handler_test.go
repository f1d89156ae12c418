package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodmap/internal/delivery/http/validator"
	"foodmap/internal/domain/entity"
	mockUC "foodmap/internal/mocks/usecase"
	"foodmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMapHandlerTest(t *testing.T) (*MapHandler, *mockUC.MockMapDataUsecase) {
	mapUC := mockUC.NewMockMapDataUsecase(t)
	h := NewMapHandler(MapHandlerParams{
		MapDataUC: mapUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, mapUC
}

func getRequest(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// A viewport edge on the equator or prime meridian and zoom 0 are all valid
// zero values, not missing parameters.
func TestQueryViewport_ZeroValuedEdgesAreValid(t *testing.T) {
	h, mapUC := newMapHandlerTest(t)
	c, rec := getRequest("/map/viewport?north=0.5&south=-0.5&east=0&west=-1&zoom=0")

	mapUC.EXPECT().
		QueryViewport(mock.Anything, entity.Bounds{North: 0.5, South: -0.5, East: 0, West: -1}, 0.0, entity.PlaceType("")).
		Return(&usecase.ViewportResult{Mode: entity.TierCluster, Zoom: 0}, nil)

	require.NoError(t, h.QueryViewport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"cluster"`)
}

func TestQueryViewport_MissingEdgeRejected(t *testing.T) {
	h, _ := newMapHandlerTest(t)
	c, _ := getRequest("/map/viewport?south=-0.5&east=1&west=-1&zoom=16")

	assertErrorCode(t, h.QueryViewport(c), "VALIDATION_FAILED")
}

func TestQueryViewport_SouthAboveNorthRejected(t *testing.T) {
	h, _ := newMapHandlerTest(t)
	c, _ := getRequest("/map/viewport?north=-1&south=1&east=1&west=-1&zoom=16")

	assertErrorCode(t, h.QueryViewport(c), "VALIDATION_FAILED")
}

func TestQueryViewport_ZoomAboveRangeRejected(t *testing.T) {
	h, _ := newMapHandlerTest(t)
	c, _ := getRequest("/map/viewport?north=1&south=-1&east=1&west=-1&zoom=23")

	assertErrorCode(t, h.QueryViewport(c), "VALIDATION_FAILED")
}

func TestSamplePreview_PassesFraction(t *testing.T) {
	h, mapUC := newMapHandlerTest(t)
	c, rec := getRequest("/map/preview?sample_pct=0.25")

	mapUC.EXPECT().
		SamplePreview(mock.Anything, 0.25).
		Return([]entity.Facility{{ID: 1, Name: "Corner Market", PlaceType: entity.PlaceTypeGroceryStore}}, nil)

	require.NoError(t, h.SamplePreview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}
