package merge

import (
	"strings"

	gamemodels "game-insights/feature/games/models"
	"game-insights/feature/merge/models"
	salesmodels "game-insights/feature/sales/models"
)

// Stats summarizes one join run.
type Stats struct {
	// GamesIn is the number of engagement records consumed.
	GamesIn int `json:"games_in"`
	// SalesIn is the number of sales records consumed.
	SalesIn int `json:"sales_in"`
	// SkippedGames counts engagement records excluded for a blank title.
	SkippedGames int `json:"skipped_games"`
	// SkippedSales counts sales records excluded for a blank name.
	SkippedSales int `json:"skipped_sales"`
	// Merged is the number of joined pairs produced.
	Merged int `json:"merged"`
}

// JoinKey normalizes a title for matching: surrounding whitespace is
// trimmed, internal whitespace runs collapse to a single space, and the
// result is lowercased. "  Wii  Sports " and "wii sports" join.
func JoinKey(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// Join computes the inner join of engagement and sales records on
// normalized title equality.
//
// Duplicate keys on either side produce the full cross product of
// matching pairs, so a title sold on five platforms yields five merged
// records all carrying the same engagement fields. Records with a blank
// join key are excluded on both sides and counted in Stats. Output order
// follows the games traversal order, then the sales input order within a
// key; the result is deterministic for identical inputs.
func Join(games []gamemodels.GameRecord, sales []salesmodels.SalesRecord) ([]models.MergedRecord, Stats) {
	stats := Stats{GamesIn: len(games), SalesIn: len(sales)}

	// Index sales rows by key, preserving input order within each key.
	salesByKey := make(map[string][]salesmodels.SalesRecord, len(sales))
	for _, s := range sales {
		key := JoinKey(s.Name)
		if key == "" {
			stats.SkippedSales++
			continue
		}
		salesByKey[key] = append(salesByKey[key], s)
	}

	merged := make([]models.MergedRecord, 0, len(games))
	for _, g := range games {
		key := JoinKey(g.Title)
		if key == "" {
			stats.SkippedGames++
			continue
		}
		for _, s := range salesByKey[key] {
			merged = append(merged, combine(g, s))
		}
	}
	stats.Merged = len(merged)

	return merged, stats
}

// combine builds one merged record from a matching pair.
func combine(g gamemodels.GameRecord, s salesmodels.SalesRecord) models.MergedRecord {
	return models.MergedRecord{
		GameID:        g.ID,
		SaleID:        s.ID,
		Title:         g.Title,
		Rating:        g.Rating,
		Genres:        g.Genres,
		Plays:         g.Plays,
		Wishlist:      g.Wishlist,
		ReleaseDate:   g.ReleaseDate,
		ReleaseYear:   g.ReleaseYear,
		Platform:      g.Platform,
		Team:          g.Team,
		SalesPlatform: s.Platform,
		Publisher:     s.Publisher,
		NASales:       s.NASales,
		EUSales:       s.EUSales,
		JPSales:       s.JPSales,
		OtherSales:    s.OtherSales,
		GlobalSales:   s.GlobalSales,
	}
}
