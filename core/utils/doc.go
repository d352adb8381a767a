// Package utils provides common utility functions for the game-insights
// application. It includes the lenient field parsers used during CSV
// ingestion, where the source datasets mix numeric formats, abbreviated
// counts ("3.8K") and several date layouts.
package utils
