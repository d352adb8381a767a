package sales

import (
	"context"
	"regexp"
	"testing"

	"game-insights/core/database"
	"game-insights/feature/sales/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_ListAll_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"sale_id", "name", "platform", "year", "genre", "publisher", "na_sales", "eu_sales", "jp_sales", "other_sales", "global_sales"})
	rows.AddRow(1, "Wii Sports", "Wii", 2006, "Sports", "Nintendo", 41.49, 29.02, 3.77, 8.46, 82.74)
	rows.AddRow(2, "Tetris", "GB", 1989, "Puzzle", "Nintendo", 23.20, 2.26, 4.22, 0.58, 30.26)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sales` ORDER BY sale_id")).WillReturnRows(rows)

	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Wii Sports", records[0].Name)
	assert.Equal(t, 82.74, records[0].GlobalSales)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ReplaceAll(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	ctx := context.Background()

	records := []models.SalesRecord{
		{Name: "Wii Sports", Platform: "Wii", Year: 2006, Genre: "Sports", Publisher: "Nintendo", GlobalSales: 82.74},
		{Name: "Wii Sports", Platform: "PC", Year: 2010, Genre: "Sports", Publisher: "Nintendo", GlobalSales: 3.1},
	}

	require.NoError(t, store.ReplaceAll(ctx, records))

	got, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Wii", got[0].Platform)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
