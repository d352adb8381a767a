package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseFloat converts a raw CSV field to a float64.
// It tolerates surrounding whitespace and thousands separators.
// Empty or unparseable fields yield 0.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseOptionalFloat is like ParseFloat but distinguishes missing values.
// Empty, "N/A" and unparseable fields yield nil.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || strings.EqualFold(s, "n/a") || strings.EqualFold(s, "nan") {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseCount converts an engagement count field to a float64.
// The source dataset abbreviates large counts ("3.8K", "1.2M"); plain
// numbers pass through unchanged. Unparseable fields yield 0.
func ParseCount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = s[:len(s)-1]
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f * multiplier
}

// ParseInt converts a raw CSV field to an int, truncating decimals.
// Empty or unparseable fields yield 0.
func ParseInt(s string) int {
	return int(ParseFloat(s))
}

// dateLayouts are the release date formats observed in the source datasets.
var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"02/01/2006",
}

// ParseDate converts a release date field to a time.Time.
// Unparseable or empty fields yield nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
