package cmd

import (
	"context"
	"fmt"
	"os"

	"game-insights/core/config"
	"game-insights/core/database"
	"game-insights/core/logger"
	"game-insights/core/storage"
	"game-insights/feature/export"
	"game-insights/feature/merge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOutput string

// exportCmd serializes the merged table to CSV.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the merged table as CSV",
	Long: `Serializes the merged table to CSV. With --output the file is
written locally; without it the export is uploaded to the configured
object storage bucket under a timestamped name.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Local file path (skips object storage upload)")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		service := export.NewService(mergedStore, nil, "", l)
		rows, err := service.WriteCSV(ctx, f)
		if err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		l.Info("Export written", zap.String("file", exportOutput), zap.Int("rows", rows))
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	service := export.NewService(mergedStore, client, cfg.Storage.Bucket, l)
	object, err := service.Upload(ctx)
	if err != nil {
		return fmt.Errorf("failed to upload export: %w", err)
	}

	l.Info("Export uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.String("object", object))
	return nil
}
