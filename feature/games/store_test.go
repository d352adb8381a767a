package games

import (
	"context"
	"testing"

	"game-insights/core/database"
	"game-insights/feature/games/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestStore_ReplaceAllAndList(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	rating := 4.5
	records := []models.GameRecord{
		{Title: "Elden Ring", Rating: &rating, Genres: "['RPG']", Plays: 3800, Platform: "PC", Team: "FromSoftware"},
		{Title: "Stray", Genres: "['Adventure']", Plays: 900, Platform: "PS5", Team: "BlueTwelve"},
	}

	require.NoError(t, store.ReplaceAll(ctx, records))

	got, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Elden Ring", got[0].Title)
	require.NotNil(t, got[0].Rating)
	assert.Equal(t, 4.5, *got[0].Rating)
	assert.Nil(t, got[1].Rating)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// A second load replaces, never appends.
	require.NoError(t, store.ReplaceAll(ctx, records[:1]))
	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStore_ReplaceAllEmpty(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, nil))

	got, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
