package cmd

import (
	"context"
	"fmt"
	"os"

	"game-insights/core/config"
	"game-insights/core/database"
	"game-insights/core/logger"
	"game-insights/feature/games"
	"game-insights/feature/sales"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	gamesCSVPath string
	salesCSVPath string
)

// loadCmd ingests the cleaned CSV datasets into the leaf tables.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the cleaned CSV datasets into the database",
	Long: `Reads the engagement and sales CSVs, replaces the games and sales
tables wholesale, and reports ingestion statistics.

The merged table is not touched; run merge afterwards to rebuild it.`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&gamesCSVPath, "games", "", "Path to the engagement CSV (overrides DATASET_GAMES_CSV)")
	loadCmd.Flags().StringVar(&salesCSVPath, "sales", "", "Path to the sales CSV (overrides DATASET_SALES_CSV)")

	RootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
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

	gamesPath := cfg.Dataset.GamesCSV
	if gamesCSVPath != "" {
		gamesPath = gamesCSVPath
	}
	salesPath := cfg.Dataset.SalesCSV
	if salesCSVPath != "" {
		salesPath = salesCSVPath
	}

	gamesStore := games.NewStore(db)
	salesStore := sales.NewStore(db)

	gamesFile, err := os.Open(gamesPath)
	if err != nil {
		return fmt.Errorf("failed to open games CSV: %w", err)
	}
	defer gamesFile.Close()

	gameRecords, gameStats, err := games.ParseCSV(gamesFile)
	if err != nil {
		return fmt.Errorf("failed to parse games CSV: %w", err)
	}
	l.Info("Parsed engagement records",
		zap.String("file", gamesPath),
		zap.Int("rows", gameStats.Rows),
		zap.Int("loaded", gameStats.Loaded),
		zap.Int("skipped_no_title", gameStats.SkippedNoTitle),
		zap.Int("skipped_malformed", gameStats.SkippedMalformed),
	)

	salesFile, err := os.Open(salesPath)
	if err != nil {
		return fmt.Errorf("failed to open sales CSV: %w", err)
	}
	defer salesFile.Close()

	salesRecords, salesStats, err := sales.ParseCSV(salesFile)
	if err != nil {
		return fmt.Errorf("failed to parse sales CSV: %w", err)
	}
	l.Info("Parsed sales records",
		zap.String("file", salesPath),
		zap.Int("rows", salesStats.Rows),
		zap.Int("loaded", salesStats.Loaded),
		zap.Int("skipped_no_name", salesStats.SkippedNoName),
		zap.Int("skipped_malformed", salesStats.SkippedMalformed),
	)

	if err := gamesStore.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate games table: %w", err)
	}
	if err := salesStore.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate sales table: %w", err)
	}

	if err := gamesStore.ReplaceAll(ctx, gameRecords); err != nil {
		return fmt.Errorf("failed to load games table: %w", err)
	}
	if err := salesStore.ReplaceAll(ctx, salesRecords); err != nil {
		return fmt.Errorf("failed to load sales table: %w", err)
	}

	l.Info("Datasets loaded",
		zap.Int("games", gameStats.Loaded),
		zap.Int("sales", salesStats.Loaded),
	)
	return nil
}
