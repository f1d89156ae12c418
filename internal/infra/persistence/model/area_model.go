package model

import (
	"time"

	"foodmap/internal/domain/entity"
	"foodmap/internal/errors"

	"github.com/paulmach/orb/geojson"
	"gorm.io/datatypes"
)

// AreaModel is the GORM-specific struct for the 'areas' table. Geometry is
// stored as a GeoJSON document in a jsonb column and decoded on read.
type AreaModel struct {
	ID              int            `gorm:"primary_key"`
	Name            string         `gorm:"type:varchar(128);not null;uniqueIndex:idx_areas_on_city_name"`
	NormalizedName  string         `gorm:"type:varchar(128);not null;index:idx_areas_on_normalized_name"`
	City            string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_areas_on_city_name"`
	Geometry        datatypes.JSON `gorm:"type:jsonb"`
	Population      *int
	PovertyRate     *float64 `gorm:"type:decimal(5,4)"`
	GroceryCount    int      `gorm:"not null;default:0"`
	RestaurantCount int      `gorm:"not null;default:0"`
	MarketCount     int      `gorm:"not null;default:0"`
	PantryCount     int      `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AreaModel) TableName() string {
	return "areas"
}

// ToDomain converts the row into the domain area. Geometry decoding is
// skipped when decodeGeometry is false, so list endpoints that only need
// names and counts avoid the jsonb parse.
func (m *AreaModel) ToDomain(decodeGeometry bool) (*entity.Area, error) {
	area := &entity.Area{
		ID:          m.ID,
		Name:        m.Name,
		City:        m.City,
		Population:  m.Population,
		PovertyRate: m.PovertyRate,
		Counts: entity.AreaCounts{
			GroceryStores:  m.GroceryCount,
			Restaurants:    m.RestaurantCount,
			FarmersMarkets: m.MarketCount,
			FoodPantries:   m.PantryCount,
		},
	}

	// A SQL NULL scans into datatypes.JSON as the literal "null" payload.
	if decodeGeometry && len(m.Geometry) > 0 && string(m.Geometry) != "null" {
		geom, err := geojson.UnmarshalGeometry(m.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "decode geometry for area %q", m.Name)
		}
		area.Geometry = geom.Geometry()
	}

	return area, nil
}
