package sales

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"game-insights/core/utils"
	"game-insights/feature/sales/models"
)

// IngestStats summarizes a CSV ingestion run.
type IngestStats struct {
	// Rows is the number of data rows read (header excluded).
	Rows int `json:"rows"`
	// Loaded is the number of records accepted.
	Loaded int `json:"loaded"`
	// SkippedNoName is the number of rows dropped for a missing name.
	SkippedNoName int `json:"skipped_no_name"`
	// SkippedMalformed is the number of rows dropped for a wrong column count.
	SkippedMalformed int `json:"skipped_malformed"`
}

// ParseCSV reads regional sales records from the sales CSV.
// Column lookup is header-driven and case-insensitive; rows without a
// name are skipped and counted, never fatal.
func ParseCSV(r io.Reader) ([]models.SalesRecord, IngestStats, error) {
	var stats IngestStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read sales CSV header: %w", err)
	}
	cols := indexColumns(header)

	nameIdx, ok := cols["name"]
	if !ok {
		return nil, stats, fmt.Errorf("sales CSV has no name column")
	}

	var records []models.SalesRecord
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

		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			stats.SkippedNoName++
			continue
		}

		records = append(records, models.SalesRecord{
			Name:        name,
			Platform:    strings.TrimSpace(field(row, cols, "platform")),
			Year:        utils.ParseInt(field(row, cols, "year")),
			Genre:       strings.TrimSpace(field(row, cols, "genre")),
			Publisher:   strings.TrimSpace(field(row, cols, "publisher")),
			NASales:     utils.ParseFloat(field(row, cols, "na_sales")),
			EUSales:     utils.ParseFloat(field(row, cols, "eu_sales")),
			JPSales:     utils.ParseFloat(field(row, cols, "jp_sales")),
			OtherSales:  utils.ParseFloat(field(row, cols, "other_sales")),
			GlobalSales: utils.ParseFloat(field(row, cols, "global_sales")),
		})
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
