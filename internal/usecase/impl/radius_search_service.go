package impl

import (
	"context"
	"fmt"

	"foodmap/config"
	"foodmap/internal/domain/entity"
	domainerrors "foodmap/internal/domain/errors"
	"foodmap/internal/domain/geo"
	"foodmap/internal/domain/repository"
	"foodmap/internal/domain/service"
	"foodmap/internal/errors"
	"foodmap/internal/usecase"

	"github.com/paulmach/orb"
)

// Radius applied when a free-text query names an address but no explicit
// radius exists to carry over.
const intentRadiusMiles = 1.0

type radiusSearchService struct {
	facilityRepo repository.FacilityRepository
	areaRepo     repository.AreaRepository
	geocoder     service.Geocoder
	intentParser service.IntentParser // nil when the external service is disabled
	cfg          *config.Config
}

// NewSearchService creates the radius search service. Each request moves
// through validate, resolve and query; a failure at any stage stops the
// request before the next stage runs.
func NewSearchService(
	facilityRepo repository.FacilityRepository,
	areaRepo repository.AreaRepository,
	geocoder service.Geocoder,
	intentParser service.IntentParser,
	cfg *config.Config,
) usecase.SearchUsecase {
	if cfg.Search == nil {
		cfg.Search = &config.SearchConfig{
			MinRadiusMiles: 0.1,
			DefaultLimit:   200,
			MaxLimit:       1000,
		}
	}

	return &radiusSearchService{
		facilityRepo: facilityRepo,
		areaRepo:     areaRepo,
		geocoder:     geocoder,
		intentParser: intentParser,
		cfg:          cfg,
	}
}

// SearchRadius validates, resolves and runs one radius search.
func (s *radiusSearchService) SearchRadius(ctx context.Context, req *entity.SearchRequest) (*entity.SearchResult, error) {
	limit, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	center, err := s.resolveCenter(ctx, req.Center)
	if err != nil {
		return nil, err
	}

	hits, err := s.queryRadius(ctx, center.Coordinate, req.RadiusMiles, req.PlaceTypes, limit)
	if err != nil {
		return nil, err
	}

	return &entity.SearchResult{
		Facilities:      hits,
		ResolvedCenter:  center.Coordinate,
		ResolvedAddress: center.FormattedAddress,
		SearchSource:    center.Source,
		RadiusMiles:     req.RadiusMiles,
		Truncated:       len(hits) == limit,
	}, nil
}

// validate runs all request checks before any network call and returns the
// effective result cap.
func (s *radiusSearchService) validate(req *entity.SearchRequest) (int, error) {
	if req.RadiusMiles < s.cfg.Search.MinRadiusMiles {
		return 0, domainerrors.ErrInvalidRadius.WithDetails(
			fmt.Sprintf("radius %.3f mi is below the minimum %.3f mi", req.RadiusMiles, s.cfg.Search.MinRadiusMiles))
	}

	for _, pt := range req.PlaceTypes {
		if !pt.IsValid() {
			return 0, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("unknown place type %q", pt))
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.Search.DefaultLimit
	}
	if limit > s.cfg.Search.MaxLimit {
		limit = s.cfg.Search.MaxLimit
	}

	return limit, nil
}

// resolveCenter turns the request's location reference into a coordinate.
// Precedence: an explicit hint wins; otherwise a non-empty address wins over
// a pin.
func (s *radiusSearchService) resolveCenter(ctx context.Context, center entity.SearchCenter) (*entity.ResolvedCenter, error) {
	useAddress := false

	switch center.Hint {
	case entity.CenterHintAddress:
		if center.Address == "" {
			return nil, domainerrors.ErrMissingCenter.WithDetails("address hint given but no address text")
		}
		useAddress = true
	case entity.CenterHintPin:
		if center.Pin == nil {
			return nil, domainerrors.ErrMissingCenter.WithDetails("pin hint given but no pin coordinate")
		}
	default:
		switch {
		case center.Address != "":
			useAddress = true
		case center.Pin != nil:
		default:
			return nil, domainerrors.ErrMissingCenter
		}
	}

	if !useAddress {
		return &entity.ResolvedCenter{
			Coordinate: *center.Pin,
			Source:     entity.SearchSourcePin,
		}, nil
	}

	geocodeCtx, cancel := context.WithTimeout(ctx, s.cfg.Geocoder.Timeout)
	defer cancel()

	result, err := s.geocoder.Geocode(geocodeCtx, center.Address)
	if err != nil {
		return nil, domainerrors.ErrUnresolvableAddress.WithDetails(err.Error())
	}

	return &entity.ResolvedCenter{
		Coordinate:       result.Coordinate,
		FormattedAddress: result.FormattedAddress,
		Source:           entity.SearchSourceAddress,
	}, nil
}

func (s *radiusSearchService) queryRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, placeTypes []entity.PlaceType, limit int) ([]entity.FacilityHit, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.cfg.Search.QueryTimeout)
	defer cancel()

	hits, err := s.facilityRepo.QueryByRadius(queryCtx, center, radiusMiles, placeTypes, limit)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, domainerrors.NewStoreExecuteError(err, "radius query failed")
		}

		return nil, errors.Wrap(err, "query facilities by radius")
	}

	return hits, nil
}

// SearchIntent interprets a free-text query through the external intent
// service and runs the matching search: a named neighborhood becomes an
// area-scoped query, a street address becomes a radius search.
func (s *radiusSearchService) SearchIntent(ctx context.Context, query string) (*entity.SearchResult, error) {
	if s.intentParser == nil {
		return nil, domainerrors.ErrIntentUnavailable.WithDetails("intent service is not configured")
	}

	intent, err := s.intentParser.ParseQuery(ctx, query)
	if err != nil {
		return nil, domainerrors.ErrIntentUnavailable.WithDetails(err.Error())
	}

	var placeTypes []entity.PlaceType
	if intent.PlaceType != "" {
		placeTypes = append(placeTypes, intent.PlaceType)
	}

	switch {
	case intent.Neighborhood != "":
		return s.searchArea(ctx, intent.Neighborhood, placeTypes)
	case intent.Address != "":
		return s.SearchRadius(ctx, &entity.SearchRequest{
			Center:      entity.SearchCenter{Address: intent.Address, Hint: entity.CenterHintAddress},
			RadiusMiles: intentRadiusMiles,
			PlaceTypes:  placeTypes,
		})
	default:
		return nil, domainerrors.ErrMissingCenter.WithDetails("the query named no neighborhood or address")
	}
}

// searchArea anchors a search to a named area: facilities come from the
// area's own neighborhood assignment, and the reported center is the
// midpoint of the area's geometry bounds. Areas stored without geometry
// fall back to the midpoint of the matched facilities.
func (s *radiusSearchService) searchArea(ctx context.Context, areaName string, placeTypes []entity.PlaceType) (*entity.SearchResult, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.cfg.Search.QueryTimeout)
	defer cancel()

	metrics, err := s.areaRepo.GetAreaMetrics(queryCtx, areaName)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, domainerrors.ErrAreaNotFound.WithDetails(fmt.Sprintf("no area named %q", areaName))
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, domainerrors.NewStoreExecuteError(err, "area lookup failed")
		}

		return nil, errors.Wrap(err, "get area metrics")
	}

	facilities, err := s.facilityRepo.QueryByArea(queryCtx, metrics.Name, placeTypes, s.cfg.Search.DefaultLimit)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, domainerrors.NewStoreExecuteError(err, "area query failed")
		}

		return nil, errors.Wrap(err, "query facilities by area")
	}

	center := facilitiesMidpoint(facilities)
	if metrics.Centroid != nil {
		center = *metrics.Centroid
	}

	hits := make([]entity.FacilityHit, 0, len(facilities))
	for _, f := range facilities {
		hits = append(hits, entity.FacilityHit{
			Facility:      f,
			DistanceMiles: geo.DistanceMiles(center, entity.Coordinate{Lat: f.Lat, Lng: f.Lng}),
		})
	}

	return &entity.SearchResult{
		Facilities:      hits,
		ResolvedCenter:  center,
		ResolvedAddress: metrics.Name,
		SearchSource:    entity.SearchSourceNeighborhood,
		Truncated:       len(hits) == s.cfg.Search.DefaultLimit,
	}, nil
}

func facilitiesMidpoint(facilities []entity.Facility) entity.Coordinate {
	if len(facilities) == 0 {
		return entity.Coordinate{}
	}

	b := geo.EmptyBounds()
	for _, f := range facilities {
		b = geo.ExtendBounds(b, orb.Point{f.Lng, f.Lat})
	}

	return entity.Coordinate{
		Lat: (b.North + b.South) / 2,
		Lng: (b.East + b.West) / 2,
	}
}
