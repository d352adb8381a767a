package merge

import (
	"context"
	"testing"

	"game-insights/core/database"
	"game-insights/feature/games"
	gamemodels "game-insights/feature/games/models"
	"game-insights/feature/sales"
	salesmodels "game-insights/feature/sales/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *games.Store, *sales.Store, *gorm.DB) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	gamesStore := games.NewStore(db)
	salesStore := sales.NewStore(db)
	mergedStore := NewStore(db)
	require.NoError(t, gamesStore.Migrate())
	require.NoError(t, salesStore.Migrate())
	require.NoError(t, mergedStore.Migrate())

	svc := NewService(db, gamesStore, salesStore, mergedStore, zap.NewNop())
	return svc, gamesStore, salesStore, db
}

func TestService_Rebuild(t *testing.T) {
	svc, gamesStore, salesStore, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, gamesStore.ReplaceAll(ctx, []gamemodels.GameRecord{
		{Title: "Wii Sports", Genres: "['Sports']", Plays: 500},
		{Title: "No Sales Data", Genres: "['Indie']"},
	}))
	require.NoError(t, salesStore.ReplaceAll(ctx, []salesmodels.SalesRecord{
		{Name: "wii sports", Platform: "Wii", Publisher: "Nintendo", GlobalSales: 82.74},
		{Name: "wii sports", Platform: "PC", Publisher: "Nintendo", GlobalSales: 3.1},
	}))

	stats, err := svc.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Merged)

	count, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// Idempotence: re-running on unchanged inputs yields the same rows.
	stats, err = svc.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Merged)

	count, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestService_RebuildEmptyStores(t *testing.T) {
	svc, _, _, _ := setupService(t)
	ctx := context.Background()

	stats, err := svc.Rebuild(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Merged)

	count, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_RebuildMissingTables(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	svc := NewService(db, games.NewStore(db), sales.NewStore(db), NewStore(db), zap.NewNop())

	_, err = svc.Rebuild(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing source tables")
}
