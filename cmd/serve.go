package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"game-insights/core/config"
	"game-insights/core/database"
	"game-insights/core/loader"
	"game-insights/core/logger"
	"game-insights/core/middleware/auth"
	"game-insights/core/middleware/rayid"

	"game-insights/feature/games"
	"game-insights/feature/merge"
	"game-insights/feature/report"
	"game-insights/feature/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "game-insights/docs/swagger"
)

// @title Game Insights API
// @version 1.0
// @description Join-and-aggregate reporting over video game sales and engagement data.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reporting server",
	Long:  `Starts the HTTP server exposing the merge and report endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		gamesStore := games.NewStore(db)
		salesStore := sales.NewStore(db)
		mergedStore := merge.NewStore(db)

		// POST /merge writes the merged table, so make sure it exists.
		if err := mergedStore.Migrate(); err != nil {
			logg.Fatal("Failed to migrate merged table", zap.Error(err))
		}

		mergeService := merge.NewService(db, gamesStore, salesStore, mergedStore, logg)
		reportService := report.NewService(gamesStore, salesStore, mergedStore, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(merge.NewFeature(mergeService))
		mgr.Register(report.NewFeature(reportService))

		// RayID first so every later log line can carry the trace id.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public; everything behind it needs the API key
		// when one is configured.
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
