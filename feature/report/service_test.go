package report

import (
	"context"
	"testing"

	gamemodels "game-insights/feature/games/models"
	mergemodels "game-insights/feature/merge/models"
	"game-insights/feature/report/models"
	salesmodels "game-insights/feature/sales/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSources serves fixed slices in place of the gorm-backed stores.
type fakeSources struct {
	games  []gamemodels.GameRecord
	sales  []salesmodels.SalesRecord
	merged []mergemodels.MergedRecord
}

func (f *fakeSources) gamesSource() GamesSource   { return gamesFunc(f.games) }
func (f *fakeSources) salesSource() SalesSource   { return salesFunc(f.sales) }
func (f *fakeSources) mergedSource() MergedSource { return mergedFunc(f.merged) }

type gamesFunc []gamemodels.GameRecord

func (g gamesFunc) ListAll(context.Context) ([]gamemodels.GameRecord, error) { return g, nil }

type salesFunc []salesmodels.SalesRecord

func (s salesFunc) ListAll(context.Context) ([]salesmodels.SalesRecord, error) { return s, nil }

type mergedFunc []mergemodels.MergedRecord

func (m mergedFunc) ListAll(context.Context) ([]mergemodels.MergedRecord, error) { return m, nil }

func newService(f *fakeSources) *Service {
	return NewService(f.gamesSource(), f.salesSource(), f.mergedSource(), zap.NewNop())
}

func ratingPtr(f float64) *float64 { return &f }

func TestTopGlobalSellers_TieBreak(t *testing.T) {
	svc := newService(&fakeSources{
		sales: []salesmodels.SalesRecord{
			{Name: "A", GlobalSales: 10},
			{Name: "B", GlobalSales: 10},
			{Name: "C", GlobalSales: 5},
		},
	})

	rows, err := svc.TopGlobalSellers(context.Background(), 2)
	require.NoError(t, err)

	// Equal sales keep input order: A before B, always.
	require.Len(t, rows, 2)
	assert.Equal(t, models.SellerRow{Title: "A", GlobalSales: 10}, rows[0])
	assert.Equal(t, models.SellerRow{Title: "B", GlobalSales: 10}, rows[1])
}

func TestTopGlobalSellers_LimitBoundaries(t *testing.T) {
	svc := newService(&fakeSources{
		sales: []salesmodels.SalesRecord{
			{Name: "A", GlobalSales: 10},
			{Name: "B", GlobalSales: 5},
		},
	})
	ctx := context.Background()

	_, err := svc.TopGlobalSellers(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = svc.TopGlobalSellers(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	// Limit larger than the row count returns all rows, no error.
	rows, err := svc.TopGlobalSellers(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestTopGenresBySales(t *testing.T) {
	svc := newService(&fakeSources{
		merged: []mergemodels.MergedRecord{
			{Genres: "['Sports']", GlobalSales: 82.74},
			{Genres: "['RPG']", GlobalSales: 31.37},
			{Genres: "['Sports']", GlobalSales: 3.1},
		},
	})

	rows, err := svc.TopGenresBySales(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "['Sports']", rows[0].Genres)
	assert.InDelta(t, 85.84, rows[0].TotalGlobalSales, 1e-9)
	assert.Equal(t, "['RPG']", rows[1].Genres)
}

func TestAverageRatingByGenre_HalfUpRounding(t *testing.T) {
	svc := newService(&fakeSources{
		merged: []mergemodels.MergedRecord{
			{Genres: "['RPG']", Rating: ratingPtr(3.005)},
			{Genres: "['RPG']", Rating: ratingPtr(3.015)},
		},
	})

	rows, err := svc.AverageRatingByGenre(context.Background(), 10)
	require.NoError(t, err)

	// Mean 3.01 survives the 2-decimal rounding exactly.
	require.Len(t, rows, 1)
	assert.Equal(t, 3.01, rows[0].AvgRating)
}

func TestAverageRatingByGenre_ExcludesUnrated(t *testing.T) {
	svc := newService(&fakeSources{
		merged: []mergemodels.MergedRecord{
			{Genres: "['RPG']", Rating: ratingPtr(4.0)},
			{Genres: "['RPG']", Rating: nil},
			{Genres: "['Shooter']", Rating: nil},
		},
	})

	rows, err := svc.AverageRatingByGenre(context.Background(), 10)
	require.NoError(t, err)

	// The nil rating doesn't drag the RPG mean down, and a genre with
	// no rated records at all produces no row.
	require.Len(t, rows, 1)
	assert.Equal(t, "['RPG']", rows[0].Genres)
	assert.Equal(t, 4.0, rows[0].AvgRating)
}

func TestPublisherPerformance_DistinctTitles(t *testing.T) {
	svc := newService(&fakeSources{
		merged: []mergemodels.MergedRecord{
			// Same title on two platforms: one distinct title, summed sales.
			{Title: "Wii Sports", Publisher: "Nintendo", GlobalSales: 82.74},
			{Title: "wii sports", Publisher: "Nintendo", GlobalSales: 3.1},
			{Title: "Tetris", Publisher: "Nintendo", GlobalSales: 30.26},
			{Title: "Doom", Publisher: "id", GlobalSales: 2.0},
		},
	})

	rows, err := svc.PublisherPerformance(context.Background(), 20)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Nintendo", rows[0].Publisher)
	assert.InDelta(t, 116.1, rows[0].TotalSales, 1e-9)
	assert.Equal(t, 2, rows[0].Titles)
	assert.Equal(t, "id", rows[1].Publisher)
	assert.Equal(t, 1, rows[1].Titles)
}

func TestPlatformSales(t *testing.T) {
	svc := newService(&fakeSources{
		merged: []mergemodels.MergedRecord{
			{SalesPlatform: "Wii", GlobalSales: 82.74, Rating: ratingPtr(4.0)},
			{SalesPlatform: "DS", GlobalSales: 30.01, Rating: nil},
			{SalesPlatform: "Wii", GlobalSales: 3.1, Rating: ratingPtr(3.0)},
		},
	})

	rows, err := svc.PlatformSales(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Wii", rows[0].Platform)
	assert.InDelta(t, 85.84, rows[0].TotalGlobalSales, 1e-9)
	assert.Equal(t, 3.5, rows[0].AvgRating)
	// A platform with no rated records reports 0, not NaN.
	assert.Equal(t, "DS", rows[1].Platform)
	assert.Zero(t, rows[1].AvgRating)
}

func TestPlatformSales_InvalidLimit(t *testing.T) {
	svc := newService(&fakeSources{})

	_, err := svc.PlatformSales(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestYearlySales(t *testing.T) {
	svc := newService(&fakeSources{
		sales: []salesmodels.SalesRecord{
			{Name: "B", Year: 2009, GlobalSales: 5},
			{Name: "A", Year: 2006, GlobalSales: 82.74},
			{Name: "C", Year: 2006, GlobalSales: 3.1},
			{Name: "D", Year: 0, GlobalSales: 99},
		},
	})

	rows, err := svc.YearlySales(context.Background())
	require.NoError(t, err)

	// Ascending by year; the unknown-year record contributes nothing.
	require.Len(t, rows, 2)
	assert.Equal(t, 2006, rows[0].Year)
	assert.InDelta(t, 85.84, rows[0].TotalGlobalSales, 1e-9)
	assert.Equal(t, 2009, rows[1].Year)
	assert.Equal(t, 5.0, rows[1].TotalGlobalSales)
}

func TestDefaultLimitFor(t *testing.T) {
	assert.Equal(t, DefaultPublisherLimit, DefaultLimitFor("publishers"))
	assert.Equal(t, DefaultLimit, DefaultLimitFor("top-sellers"))
	assert.Equal(t, DefaultLimit, DefaultLimitFor("platform-sales"))
}

func TestTopWishlisted(t *testing.T) {
	svc := newService(&fakeSources{
		games: []gamemodels.GameRecord{
			{Title: "A", Wishlist: 100},
			{Title: "B", Wishlist: 2500},
		},
	})

	rows, err := svc.TopWishlisted(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].Title)
}

func TestOverview(t *testing.T) {
	svc := newService(&fakeSources{
		merged: []mergemodels.MergedRecord{
			{Title: "A", Rating: ratingPtr(4.0), Wishlist: 100, GlobalSales: 10},
			{Title: "A", Rating: nil, Wishlist: 100, GlobalSales: 5},
			{Title: "B", Rating: ratingPtr(3.0), Wishlist: 40, GlobalSales: 1},
		},
	})

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 16.0, o.TotalGlobalSales, 1e-9)
	assert.Equal(t, 3.5, o.AvgRating)
	assert.Equal(t, 2, o.UniqueTitles)
	assert.Equal(t, 80.0, o.AvgWishlist)
}

func TestReports_EmptyStores(t *testing.T) {
	svc := newService(&fakeSources{})
	ctx := context.Background()

	sellers, err := svc.TopGlobalSellers(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, sellers)

	genres, err := svc.TopGenresBySales(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, genres)

	ratings, err := svc.AverageRatingByGenre(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, ratings)

	publishers, err := svc.PublisherPerformance(ctx, 20)
	require.NoError(t, err)
	assert.Empty(t, publishers)

	platforms, err := svc.PlatformSales(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, platforms)

	yearly, err := svc.YearlySales(ctx)
	require.NoError(t, err)
	assert.Empty(t, yearly)

	o, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Zero(t, o.UniqueTitles)
}
