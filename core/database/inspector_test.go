package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE games (game_id INTEGER PRIMARY KEY, title TEXT, rating REAL)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "games")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["game_id"])
	assert.Equal(t, "text", colMap["title"])
	assert.Equal(t, "real", colMap["rating"])

	// PRAGMA table_info returns an empty result for a non-existent table,
	// no error.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestVerifyTables(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE games (game_id INTEGER PRIMARY KEY, title TEXT)").Error
	assert.NoError(t, err)

	missing, err := VerifyTables(db, "games", "sales")
	assert.NoError(t, err)
	assert.Equal(t, []string{"sales"}, missing)

	err = db.Exec("CREATE TABLE sales (sale_id INTEGER PRIMARY KEY, name TEXT)").Error
	assert.NoError(t, err)

	missing, err = VerifyTables(db, "games", "sales")
	assert.NoError(t, err)
	assert.Empty(t, missing)
}
