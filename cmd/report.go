package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"game-insights/core/config"
	"game-insights/core/database"
	"game-insights/core/logger"
	"game-insights/feature/games"
	"game-insights/feature/merge"
	"game-insights/feature/report"
	"game-insights/feature/sales"

	"github.com/spf13/cobra"
)

var reportLimit int

// reportCmd runs a named report and prints it as JSON.
var reportCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Run a report against the current database",
	Long: `Runs one of the ranked reports and prints the result as JSON.

Available reports:
  top-sellers     Titles ranked by reported global sales
  genre-sales     Genres ranked by summed global sales (merged table)
  genre-ratings   Genres ranked by mean community rating (merged table)
  publishers      Publishers ranked by total sales with distinct title counts
  platform-sales  Platforms ranked by total sales with mean ratings (merged table)
  yearly-sales    Global sales trend per year, ascending
  top-wishlist    Titles ranked by wishlist count
  overview        KPI summary over the merged table`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"top-sellers", "genre-sales", "genre-ratings", "publishers", "platform-sales", "yearly-sales", "top-wishlist", "overview"},
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0, "Maximum rows (0 uses the report default)")

	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	name := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	service := report.NewService(games.NewStore(db), sales.NewStore(db), merge.NewStore(db), l)

	limit := reportLimit
	if limit == 0 {
		limit = report.DefaultLimitFor(name)
	}

	var result any
	switch name {
	case "top-sellers":
		result, err = service.TopGlobalSellers(ctx, limit)
	case "genre-sales":
		result, err = service.TopGenresBySales(ctx, limit)
	case "genre-ratings":
		result, err = service.AverageRatingByGenre(ctx, limit)
	case "publishers":
		result, err = service.PublisherPerformance(ctx, limit)
	case "platform-sales":
		result, err = service.PlatformSales(ctx, limit)
	case "yearly-sales":
		result, err = service.YearlySales(ctx)
	case "top-wishlist":
		result, err = service.TopWishlisted(ctx, limit)
	case "overview":
		result, err = service.Overview(ctx)
	default:
		return fmt.Errorf("unknown report %q", name)
	}
	if err != nil {
		return fmt.Errorf("report %s failed: %w", name, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
