package postgres

import (
	"context"
	"testing"

	"foodmap/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

var facilityColumns = []string{"id", "name", "place_type", "lat", "lng", "neighborhood", "normalized_neighborhood"}

// The area filter must hit the normalized lookup column with a normalized
// argument, so rows whose display name carries stray case or whitespace
// still match.
func TestFacilityRepository_QueryByArea_NormalizesBothSides(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFacilityRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM "facilities" WHERE normalized_neighborhood = \$1 ORDER BY id`).
		WithArgs("back bay").
		WillReturnRows(sqlmock.NewRows(facilityColumns).
			AddRow(7, "Corner Market", "grocery_store", 42.35, -71.08, "Back  Bay ", "back bay"))

	facilities, err := repo.QueryByArea(context.Background(), "  Back  BAY ", nil, 0)
	require.NoError(t, err)

	require.Len(t, facilities, 1)
	assert.Equal(t, int64(7), facilities[0].ID)
	assert.Equal(t, "Back  Bay ", facilities[0].Neighborhood)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFacilityRepository_QueryByBounds_AntimeridianSplit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFacilityRepository(db)

	// West of 179 and east of -179: the longitude filter becomes an OR of
	// the two ranges instead of a BETWEEN.
	mock.ExpectQuery(`SELECT .+ FROM "facilities" WHERE lat BETWEEN \$1 AND \$2 AND \(lng >= \$3 OR lng <= \$4\) ORDER BY id`).
		WithArgs(-1.0, 1.0, 179.0, -179.0).
		WillReturnRows(sqlmock.NewRows(facilityColumns))

	_, err := repo.QueryByBounds(context.Background(), entity.Bounds{North: 1, South: -1, East: -179, West: 179}, nil, 0)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFacilityRepository_SampleAll_RejectsOutOfRangeFraction(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewFacilityRepository(db)

	for _, pct := range []float64{0, -0.1, 1.5} {
		_, err := repo.SampleAll(context.Background(), pct)
		require.Error(t, err)
	}
}
