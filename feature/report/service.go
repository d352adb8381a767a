package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	gamemodels "game-insights/feature/games/models"
	"game-insights/feature/merge"
	mergemodels "game-insights/feature/merge/models"
	"game-insights/feature/report/models"
	salesmodels "game-insights/feature/sales/models"

	"go.uber.org/zap"
)

// ErrInvalidLimit is returned when a report limit is not a positive integer.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// Default limits per report.
const (
	DefaultLimit          = 10
	DefaultPublisherLimit = 20
)

// GamesSource provides read access to the engagement records.
type GamesSource interface {
	ListAll(ctx context.Context) ([]gamemodels.GameRecord, error)
}

// SalesSource provides read access to the sales records.
type SalesSource interface {
	ListAll(ctx context.Context) ([]salesmodels.SalesRecord, error)
}

// MergedSource provides read access to the merged records.
type MergedSource interface {
	ListAll(ctx context.Context) ([]mergemodels.MergedRecord, error)
}

// Service computes the ranked aggregate reports. All reports are pure
// reads: the stores are never mutated and every call returns a fresh
// result slice. Ties rank by first-seen input order, so results are
// deterministic for identical store contents.
type Service struct {
	games  GamesSource
	sales  SalesSource
	merged MergedSource
	logger *zap.Logger
}

// NewService creates a new report service.
func NewService(games GamesSource, sales SalesSource, merged MergedSource, logger *zap.Logger) *Service {
	return &Service{
		games:  games,
		sales:  sales,
		merged: merged,
		logger: logger,
	}
}

// TopGlobalSellers returns the best-selling titles by reported global
// sales, one row per sales record. Equal sales rank in input order.
func (s *Service) TopGlobalSellers(ctx context.Context, limit int) ([]models.SellerRow, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.SellerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.SellerRow{Title: r.Name, GlobalSales: r.GlobalSales})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GlobalSales > rows[j].GlobalSales
	})

	return rows[:min(limit, len(rows))], nil
}

// TopGenresBySales returns the engagement-side genre groups with the
// highest summed global sales over the merged store.
func (s *Service) TopGenresBySales(ctx context.Context, limit int) ([]models.GenreSalesRow, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.merged.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Group in first-seen order so equal totals rank deterministically.
	index := make(map[string]int)
	var rows []models.GenreSalesRow
	for _, r := range records {
		i, ok := index[r.Genres]
		if !ok {
			i = len(rows)
			index[r.Genres] = i
			rows = append(rows, models.GenreSalesRow{Genres: r.Genres})
		}
		rows[i].TotalGlobalSales += r.GlobalSales
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalGlobalSales > rows[j].TotalGlobalSales
	})

	return rows[:min(limit, len(rows))], nil
}

// AverageRatingByGenre returns the genre groups with the highest mean
// rating over the merged store, rounded half-up to 2 decimal places.
// Records without a rating do not contribute; genres with no rated
// records are excluded entirely.
func (s *Service) AverageRatingByGenre(ctx context.Context, limit int) ([]models.GenreRatingRow, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.merged.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		genres string
		sum    float64
		n      int
	}
	index := make(map[string]int)
	var groups []acc
	for _, r := range records {
		if r.Rating == nil {
			continue
		}
		i, ok := index[r.Genres]
		if !ok {
			i = len(groups)
			index[r.Genres] = i
			groups = append(groups, acc{genres: r.Genres})
		}
		groups[i].sum += *r.Rating
		groups[i].n++
	}

	rows := make([]models.GenreRatingRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, models.GenreRatingRow{
			Genres:    g.genres,
			AvgRating: round2(g.sum / float64(g.n)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgRating > rows[j].AvgRating
	})

	return rows[:min(limit, len(rows))], nil
}

// PublisherPerformance returns publishers ranked by summed global sales
// over the merged store, with the count of distinct titles each.
func (s *Service) PublisherPerformance(ctx context.Context, limit int) ([]models.PublisherRow, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.merged.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		row    models.PublisherRow
		titles map[string]struct{}
	}
	index := make(map[string]int)
	var groups []acc
	for _, r := range records {
		i, ok := index[r.Publisher]
		if !ok {
			i = len(groups)
			index[r.Publisher] = i
			groups = append(groups, acc{
				row:    models.PublisherRow{Publisher: r.Publisher},
				titles: make(map[string]struct{}),
			})
		}
		groups[i].row.TotalSales += r.GlobalSales
		groups[i].titles[merge.JoinKey(r.Title)] = struct{}{}
	}

	rows := make([]models.PublisherRow, 0, len(groups))
	for _, g := range groups {
		g.row.Titles = len(g.titles)
		rows = append(rows, g.row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSales > rows[j].TotalSales
	})

	return rows[:min(limit, len(rows))], nil
}

// PlatformSales returns platforms ranked by summed global sales over the
// merged store, with the mean rating of the platform's rated records
// alongside. A platform with no rated records reports 0, not an error.
func (s *Service) PlatformSales(ctx context.Context, limit int) ([]models.PlatformRow, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.merged.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		row       models.PlatformRow
		ratingSum float64
		rated     int
	}
	index := make(map[string]int)
	var groups []acc
	for _, r := range records {
		i, ok := index[r.SalesPlatform]
		if !ok {
			i = len(groups)
			index[r.SalesPlatform] = i
			groups = append(groups, acc{row: models.PlatformRow{Platform: r.SalesPlatform}})
		}
		groups[i].row.TotalGlobalSales += r.GlobalSales
		if r.Rating != nil {
			groups[i].ratingSum += *r.Rating
			groups[i].rated++
		}
	}

	rows := make([]models.PlatformRow, 0, len(groups))
	for _, g := range groups {
		if g.rated > 0 {
			g.row.AvgRating = round2(g.ratingSum / float64(g.rated))
		}
		rows = append(rows, g.row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalGlobalSales > rows[j].TotalGlobalSales
	})

	return rows[:min(limit, len(rows))], nil
}

// YearlySales returns the global sales trend over the sales store,
// grouped by year in ascending order. Records without a usable year are
// excluded. A trend has no top-N semantics, so there is no limit.
func (s *Service) YearlySales(ctx context.Context) ([]models.YearlyRow, error) {
	records, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[int]int)
	var rows []models.YearlyRow
	for _, r := range records {
		if r.Year == 0 {
			continue
		}
		i, ok := index[r.Year]
		if !ok {
			i = len(rows)
			index[r.Year] = i
			rows = append(rows, models.YearlyRow{Year: r.Year})
		}
		rows[i].TotalGlobalSales += r.GlobalSales
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Year < rows[j].Year
	})

	return rows, nil
}

// TopWishlisted returns the most wishlisted titles from the engagement
// store. Sales data is not required, so unmatched titles appear too.
func (s *Service) TopWishlisted(ctx context.Context, limit int) ([]models.WishlistRow, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.games.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.WishlistRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.WishlistRow{Title: r.Title, Wishlist: r.Wishlist})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Wishlist > rows[j].Wishlist
	})

	return rows[:min(limit, len(rows))], nil
}

// Overview computes the dashboard KPI row over the merged store.
func (s *Service) Overview(ctx context.Context) (models.Overview, error) {
	records, err := s.merged.ListAll(ctx)
	if err != nil {
		return models.Overview{}, err
	}

	var o models.Overview
	var ratingSum float64
	var rated int
	var wishlistSum float64
	titles := make(map[string]struct{})

	for _, r := range records {
		o.TotalGlobalSales += r.GlobalSales
		wishlistSum += r.Wishlist
		titles[merge.JoinKey(r.Title)] = struct{}{}
		if r.Rating != nil {
			ratingSum += *r.Rating
			rated++
		}
	}

	o.UniqueTitles = len(titles)
	if rated > 0 {
		o.AvgRating = round2(ratingSum / float64(rated))
	}
	if len(records) > 0 {
		o.AvgWishlist = round2(wishlistSum / float64(len(records)))
	}

	return o, nil
}

// DefaultLimitFor returns the default row limit for a named limited
// report, so callers outside the HTTP handlers don't hardcode which
// report uses which default.
func DefaultLimitFor(name string) int {
	if name == "publishers" {
		return DefaultPublisherLimit
	}
	return DefaultLimit
}

// checkLimit validates a report limit parameter.
func checkLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, limit)
	}
	return nil
}

// round2 rounds half-up to 2 decimal places. math.Round rounds half away
// from zero, which matches half-up for the non-negative values handled
// here.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
