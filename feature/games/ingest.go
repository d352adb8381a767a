package games

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"game-insights/core/utils"
	"game-insights/feature/games/models"
)

// IngestStats summarizes a CSV ingestion run.
type IngestStats struct {
	// Rows is the number of data rows read (header excluded).
	Rows int `json:"rows"`
	// Loaded is the number of records accepted.
	Loaded int `json:"loaded"`
	// SkippedNoTitle is the number of rows dropped for a missing title.
	// Such rows could never participate in the title join.
	SkippedNoTitle int `json:"skipped_no_title"`
	// SkippedMalformed is the number of rows dropped for a wrong column count.
	SkippedMalformed int `json:"skipped_malformed"`
}

// ParseCSV reads engagement records from the cleaned games CSV.
// Column lookup is header-driven and case-insensitive; rows without a
// title are skipped and counted, never fatal.
func ParseCSV(r io.Reader) ([]models.GameRecord, IngestStats, error) {
	var stats IngestStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column check is done per row

	header, err := reader.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read games CSV header: %w", err)
	}
	cols := indexColumns(header)

	titleIdx, ok := cols["title"]
	if !ok {
		return nil, stats, fmt.Errorf("games CSV has no title column")
	}

	var records []models.GameRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Rows++
			stats.SkippedMalformed++
			continue
		}
		stats.Rows++

		if len(row) != len(header) {
			stats.SkippedMalformed++
			continue
		}

		title := strings.TrimSpace(row[titleIdx])
		if title == "" {
			stats.SkippedNoTitle++
			continue
		}

		rec := models.GameRecord{
			Title:    title,
			Rating:   utils.ParseOptionalFloat(field(row, cols, "rating")),
			Genres:   strings.TrimSpace(field(row, cols, "genres", "genre")),
			Plays:    utils.ParseCount(field(row, cols, "plays")),
			Backlogs: utils.ParseCount(field(row, cols, "backlogs")),
			Wishlist: utils.ParseCount(field(row, cols, "wishlist")),
			Platform: strings.TrimSpace(field(row, cols, "platform")),
			Team:     strings.TrimSpace(field(row, cols, "team", "developer")),
		}

		rec.ReleaseDate = utils.ParseDate(field(row, cols, "release_date", "date", "released"))
		if rec.ReleaseDate != nil {
			rec.ReleaseYear = rec.ReleaseDate.Year()
		}

		records = append(records, rec)
		stats.Loaded++
	}

	return records, stats, nil
}

// indexColumns maps normalized header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if _, exists := cols[key]; !exists {
			cols[key] = i
		}
	}
	return cols
}

// field returns the first matching column value, or "" if none present.
func field(row []string, cols map[string]int, names ...string) string {
	for _, name := range names {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return row[idx]
		}
	}
	return ""
}
