package postgres

import (
	"context"

	"foodmap/internal/domain/entity"
	"foodmap/internal/domain/geo"
	"foodmap/internal/domain/repository"
	"foodmap/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// areaRepository implements the repository.AreaRepository interface.
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository is the constructor for areaRepository.
func NewAreaRepository(db *gorm.DB) repository.AreaRepository {
	return &areaRepository{db: db}
}

// ListAreas returns every area in the city, alphabetically. The geometry
// column is only fetched and decoded when the caller needs polygons.
func (repo *areaRepository) ListAreas(ctx context.Context, city string, withGeometry bool) ([]*entity.Area, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.AreaModel{}).
		Where("city = ?", city).
		Order("name")

	if !withGeometry {
		query = query.Omit("geometry")
	}

	var rows []*model.AreaModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, storeError(err, "list areas")
	}

	areas := make([]*entity.Area, 0, len(rows))
	for _, row := range rows {
		area, err := row.ToDomain(withGeometry)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	return areas, nil
}

// GetAreaMetrics returns the detail surface for one area by normalized name.
// The geometry column is fetched so the centroid can anchor callers that have
// no facility coordinates to average.
func (repo *areaRepository) GetAreaMetrics(ctx context.Context, name string) (*entity.AreaMetrics, error) {
	var row model.AreaModel
	err := repo.db.WithContext(ctx).
		Where("normalized_name = ?", entity.NormalizeAreaName(name)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAreaNotFound
		}

		return nil, storeError(err, "get area metrics")
	}

	area, err := row.ToDomain(true)
	if err != nil {
		return nil, err
	}

	counts := entity.AreaCounts{
		GroceryStores:  row.GroceryCount,
		Restaurants:    row.RestaurantCount,
		FarmersMarkets: row.MarketCount,
		FoodPantries:   row.PantryCount,
	}

	return &entity.AreaMetrics{
		Name:              row.Name,
		Population:        row.Population,
		PovertyRate:       row.PovertyRate,
		Counts:            counts,
		Centroid:          geometryCentroid(area.Geometry),
		GroceryPer1000:    per1000(counts.GroceryStores, row.Population),
		RestaurantPer1000: per1000(counts.Restaurants, row.Population),
		MarketPer1000:     per1000(counts.FarmersMarkets, row.Population),
		PantryPer1000:     per1000(counts.FoodPantries, row.Population),
	}, nil
}

// geometryCentroid returns the midpoint of the geometry's bounds, or nil when
// the row carries no geometry.
func geometryCentroid(g orb.Geometry) *entity.Coordinate {
	if g == nil {
		return nil
	}

	b := geo.ExtendBounds(geo.EmptyBounds(), g)
	if geo.IsEmptyBounds(b) {
		return nil
	}

	return &entity.Coordinate{
		Lat: (b.North + b.South) / 2,
		Lng: (b.East + b.West) / 2,
	}
}

// per1000 returns nil when the population is unknown or zero; a missing rate
// and a zero rate mean different things on the detail surface.
func per1000(count int, population *int) *float64 {
	if population == nil || *population <= 0 {
		return nil
	}

	rate := float64(count) / float64(*population) * 1000
	return &rate
}
