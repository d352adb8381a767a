package cmd

import (
	"context"
	"fmt"

	"game-insights/core/config"
	"game-insights/core/database"
	"game-insights/core/logger"
	"game-insights/feature/games"
	"game-insights/feature/merge"
	"game-insights/feature/sales"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mergeCmd rebuilds the merged table from the leaf stores.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Rebuild the merged table from the games and sales tables",
	Long: `Joins the games and sales tables on normalized title and replaces
the merged table wholesale. Safe to re-run; the result is deterministic
for identical inputs.`,
	RunE: runMerge,
}

func init() {
	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	mergedStore := merge.NewStore(db)
	if err := mergedStore.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate merged table: %w", err)
	}

	service := merge.NewService(db, games.NewStore(db), sales.NewStore(db), mergedStore, l)

	stats, err := service.Rebuild(ctx)
	if err != nil {
		return fmt.Errorf("failed to rebuild merged table: %w", err)
	}

	l.Info("Merge complete",
		zap.Int("games_in", stats.GamesIn),
		zap.Int("sales_in", stats.SalesIn),
		zap.Int("merged", stats.Merged),
		zap.Int("skipped_games", stats.SkippedGames),
		zap.Int("skipped_sales", stats.SkippedSales),
	)
	return nil
}
