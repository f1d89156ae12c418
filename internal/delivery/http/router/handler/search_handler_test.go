package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodmap/internal/delivery/http/validator"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	mockUC "foodmap/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchHandlerTest(t *testing.T) (*SearchHandler, *mockUC.MockSearchUsecase, *mockUC.MockAreaUsecase) {
	searchUC := mockUC.NewMockSearchUsecase(t)
	areaUC := mockUC.NewMockAreaUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{
		SearchUC: searchUC,
		AreaUC:   areaUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, searchUC, areaUC
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/search/radius", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestSearchRadius_MissingCenter(t *testing.T) {
	h, _, _ := newSearchHandlerTest(t)
	c, _ := postJSON(`{"radius_miles": 1}`)

	assertErrorCode(t, h.SearchRadius(c), "MISSING_CENTER")
}

func TestSearchRadius_AmbiguousCenterWithoutHint(t *testing.T) {
	h, _, _ := newSearchHandlerTest(t)
	c, _ := postJSON(`{"address": "100 Main St", "lat": 42.35, "lng": -71.06, "radius_miles": 1}`)

	assertErrorCode(t, h.SearchRadius(c), "AMBIGUOUS_CENTER")
}

func TestSearchRadius_LatWithoutLng(t *testing.T) {
	h, _, _ := newSearchHandlerTest(t)
	c, _ := postJSON(`{"lat": 42.35, "radius_miles": 1}`)

	assertErrorCode(t, h.SearchRadius(c), "VALIDATION_FAILED")
}

func TestSearchRadius_MissingRadius(t *testing.T) {
	h, _, _ := newSearchHandlerTest(t)
	c, _ := postJSON(`{"address": "100 Main St"}`)

	assertErrorCode(t, h.SearchRadius(c), "VALIDATION_FAILED")
}

func TestSearchRadius_PinOutsideEligibleArea(t *testing.T) {
	h, _, areaUC := newSearchHandlerTest(t)
	c, _ := postJSON(`{"lat": 40.7, "lng": -74.0, "radius_miles": 1}`)

	areaUC.EXPECT().
		LocateArea(mock.Anything, entity.Coordinate{Lat: 40.7, Lng: -74.0}).
		Return(nil, domainerrors.ErrOutsideEligibleArea)

	// The search usecase must never be reached for an out-of-scope pin.
	assertErrorCode(t, h.SearchRadius(c), "OUTSIDE_ELIGIBLE_AREA")
}

func TestSearchRadius_PinInsideAreaRunsSearch(t *testing.T) {
	h, searchUC, areaUC := newSearchHandlerTest(t)
	c, rec := postJSON(`{"lat": 42.35, "lng": -71.06, "radius_miles": 1, "place_types": ["grocery_store"]}`)

	pin := entity.Coordinate{Lat: 42.35, Lng: -71.06}
	areaUC.EXPECT().
		LocateArea(mock.Anything, pin).
		Return(&entity.Area{ID: 1, Name: "Roxbury"}, nil)
	searchUC.EXPECT().
		SearchRadius(mock.Anything, mock.MatchedBy(func(req *entity.SearchRequest) bool {
			return req.Center.Pin != nil && *req.Center.Pin == pin &&
				req.RadiusMiles == 1 &&
				len(req.PlaceTypes) == 1 && req.PlaceTypes[0] == entity.PlaceTypeGroceryStore
		})).
		Return(&entity.SearchResult{
			ResolvedCenter: pin,
			SearchSource:   entity.SearchSourcePin,
			RadiusMiles:    1,
		}, nil)

	require.NoError(t, h.SearchRadius(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"search_source":"pin"`)
}

func TestSearchRadius_AddressHintSkipsContainmentCheck(t *testing.T) {
	h, searchUC, _ := newSearchHandlerTest(t)
	c, rec := postJSON(`{"address": "100 Main St", "lat": 42.35, "lng": -71.06, "hint": "address", "radius_miles": 2}`)

	searchUC.EXPECT().
		SearchRadius(mock.Anything, mock.MatchedBy(func(req *entity.SearchRequest) bool {
			return req.Center.Address == "100 Main St" && req.Center.Hint == entity.CenterHintAddress
		})).
		Return(&entity.SearchResult{
			ResolvedCenter:  entity.Coordinate{Lat: 42.3501, Lng: -71.0589},
			ResolvedAddress: "100 Main St, Boston, MA",
			SearchSource:    entity.SearchSourceAddress,
			RadiusMiles:     2,
		}, nil)

	require.NoError(t, h.SearchRadius(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resolved_address":"100 Main St, Boston, MA"`)
}

func TestSearchIntent_ProxiesQuery(t *testing.T) {
	h, searchUC, _ := newSearchHandlerTest(t)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/search/intent", strings.NewReader(`{"query": "groceries in Roxbury"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	searchUC.EXPECT().
		SearchIntent(mock.Anything, "groceries in Roxbury").
		Return(&entity.SearchResult{
			SearchSource:    entity.SearchSourceNeighborhood,
			ResolvedAddress: "Roxbury",
		}, nil)

	require.NoError(t, h.SearchIntent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"search_source":"neighborhood"`)
}

func TestSearchIntent_EmptyQuery(t *testing.T) {
	h, _, _ := newSearchHandlerTest(t)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/search/intent", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assertErrorCode(t, h.SearchIntent(c), "VALIDATION_FAILED")
}
