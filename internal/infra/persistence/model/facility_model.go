package model

import (
	"time"

	"foodmap/internal/domain/entity"

	"gorm.io/gorm"
)

// FacilityModel is the GORM-specific struct for the 'facilities' table.
// Rows are written by the offline ingestion batch; the serving path only
// reads them.
type FacilityModel struct {
	ID             int64   `gorm:"primary_key"`
	Name           string  `gorm:"type:varchar(255);not null"`
	PlaceType      string  `gorm:"type:varchar(32);not null;index:idx_facilities_on_place_type"`
	Subtype        string  `gorm:"type:varchar(64)"`
	Lat            float64 `gorm:"type:decimal(10,8);not null;index:idx_facilities_on_lat"`
	Lng            float64 `gorm:"type:decimal(11,8);not null;index:idx_facilities_on_lng"`
	Address        string  `gorm:"type:text"`
	Neighborhood   string  `gorm:"type:varchar(128)"`
	BusinessStatus string  `gorm:"type:varchar(32)"`
	OpenNow        *bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// NormalizedNeighborhood is the lowercased, whitespace-collapsed form of
	// Neighborhood, written at ingestion so area-scoped lookups match rows
	// regardless of how the upstream data spells or pads the name.
	NormalizedNeighborhood string `gorm:"type:varchar(128);index:idx_facilities_on_normalized_neighborhood"`
}

// BeforeSave keeps the lookup column in sync with the display name.
func (m *FacilityModel) BeforeSave(*gorm.DB) error {
	m.NormalizedNeighborhood = entity.NormalizeAreaName(m.Neighborhood)

	return nil
}

// TableName explicitly sets the table name for GORM.
func (FacilityModel) TableName() string {
	return "facilities"
}

// ToDomain converts the row into the domain facility.
func (m *FacilityModel) ToDomain() entity.Facility {
	return entity.Facility{
		ID:             m.ID,
		Name:           m.Name,
		PlaceType:      entity.PlaceType(m.PlaceType),
		Subtype:        m.Subtype,
		Lat:            m.Lat,
		Lng:            m.Lng,
		Address:        m.Address,
		Neighborhood:   m.Neighborhood,
		BusinessStatus: m.BusinessStatus,
		OpenNow:        m.OpenNow,
	}
}
