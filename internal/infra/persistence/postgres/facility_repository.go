// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"math"
	"sort"

	"foodmap/internal/domain/entity"
	"foodmap/internal/domain/geo"
	"foodmap/internal/domain/repository"
	"foodmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// facilityRepository implements the repository.FacilityRepository interface.
type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(db *gorm.DB) repository.FacilityRepository {
	return &facilityRepository{db: db}
}

// QueryByRadius runs a bounding-box prefilter in SQL, then the exact
// great-circle check in memory. The prefilter rectangle always covers the
// circle, so no true hit is lost; the exact check discards the corners.
func (repo *facilityRepository) QueryByRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, placeTypes []entity.PlaceType, limit int) ([]entity.FacilityHit, error) {
	bounds := geo.BoundsForRadius(center, radiusMiles)

	rows, err := repo.queryBounds(ctx, bounds, placeTypes, 0)
	if err != nil {
		return nil, err
	}

	hits := make([]entity.FacilityHit, 0, len(rows))
	for _, row := range rows {
		d := geo.DistanceMiles(center, entity.Coordinate{Lat: row.Lat, Lng: row.Lng})
		if d > radiusMiles {
			continue
		}
		hits = append(hits, entity.FacilityHit{
			Facility:      row.ToDomain(),
			DistanceMiles: d,
		})
	}

	// Identical queries must return identical orderings; id breaks distance ties.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].DistanceMiles != hits[j].DistanceMiles {
			return hits[i].DistanceMiles < hits[j].DistanceMiles
		}

		return hits[i].Facility.ID < hits[j].Facility.ID
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	return hits, nil
}

// QueryByBounds returns facilities inside the viewport rectangle.
func (repo *facilityRepository) QueryByBounds(ctx context.Context, bounds entity.Bounds, placeTypes []entity.PlaceType, limit int) ([]entity.Facility, error) {
	rows, err := repo.queryBounds(ctx, bounds, placeTypes, limit)
	if err != nil {
		return nil, err
	}

	facilities := make([]entity.Facility, 0, len(rows))
	for _, row := range rows {
		facilities = append(facilities, row.ToDomain())
	}

	return facilities, nil
}

// QueryByArea returns facilities assigned to the named neighborhood at
// ingestion time. Both sides of the match are normalized: the argument here,
// the column at ingestion, so padding or doubled whitespace on either side
// cannot hide a row.
func (repo *facilityRepository) QueryByArea(ctx context.Context, areaName string, placeTypes []entity.PlaceType, limit int) ([]entity.Facility, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FacilityModel{}).
		Where("normalized_neighborhood = ?", entity.NormalizeAreaName(areaName))

	if len(placeTypes) > 0 {
		query = query.Where("place_type IN ?", placeTypeStrings(placeTypes))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*model.FacilityModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, storeError(err, "query facilities by area")
	}

	facilities := make([]entity.Facility, 0, len(rows))
	for _, row := range rows {
		facilities = append(facilities, row.ToDomain())
	}

	return facilities, nil
}

// SampleAll returns a deterministic stride sample of the whole table: every
// n-th row in id order, where n is derived from the requested fraction. The
// same fraction over the same data always yields the same rows.
func (repo *facilityRepository) SampleAll(ctx context.Context, samplePct float64) ([]entity.Facility, error) {
	if samplePct <= 0 || samplePct > 1 {
		return nil, errors.Wrapf(repository.ErrInvalidSamplePct, "got %v", samplePct)
	}

	stride := int64(math.Round(1 / samplePct))
	if stride < 1 {
		stride = 1
	}

	var rows []*model.FacilityModel
	err := repo.db.WithContext(ctx).
		Model(&model.FacilityModel{}).
		Where("id % ? = 0", stride).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, storeError(err, "sample facilities")
	}

	facilities := make([]entity.Facility, 0, len(rows))
	for _, row := range rows {
		facilities = append(facilities, row.ToDomain())
	}

	return facilities, nil
}

// queryBounds is the shared rectangle query. A west edge east of the east
// edge means the rectangle crosses the antimeridian and splits into two
// longitude ranges.
func (repo *facilityRepository) queryBounds(ctx context.Context, bounds entity.Bounds, placeTypes []entity.PlaceType, limit int) ([]*model.FacilityModel, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FacilityModel{}).
		Where("lat BETWEEN ? AND ?", bounds.South, bounds.North)

	if bounds.West > bounds.East {
		query = query.Where("lng >= ? OR lng <= ?", bounds.West, bounds.East)
	} else {
		query = query.Where("lng BETWEEN ? AND ?", bounds.West, bounds.East)
	}

	if len(placeTypes) > 0 {
		query = query.Where("place_type IN ?", placeTypeStrings(placeTypes))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*model.FacilityModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, storeError(err, "query facilities by bounds")
	}

	return rows, nil
}

func placeTypeStrings(placeTypes []entity.PlaceType) []string {
	values := make([]string, 0, len(placeTypes))
	for _, pt := range placeTypes {
		values = append(values, pt.String())
	}

	return values
}

// storeError folds any driver failure into ErrStoreUnavailable so callers
// can tell infrastructure failures apart from empty result sets.
func storeError(err error, msg string) error {
	return errors.Wrapf(repository.ErrStoreUnavailable, "%s: %v", msg, err)
}
