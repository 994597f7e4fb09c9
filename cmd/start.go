package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"breezechess/core/config"
	"breezechess/core/database"
	"breezechess/core/loader"
	"breezechess/core/logger"
	"breezechess/core/middleware/rayid"
	"breezechess/feature/health"
	"breezechess/feature/puzzles"
	"breezechess/feature/puzzles/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "breezechess/docs/swagger"
)

// @title Puzzle Gateway API
// @version 1.0
// @description Forwards puzzle filter requests to the puzzle database.
// @host localhost:8000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the puzzle gateway server",
	Long:  `Starts the HTTP server exposing the health check and the puzzle endpoint.`,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// Connects lazily so the health check answers even while the database is down.
	provider := database.NewProvider(cfg.Database)
	defer func() {
		if err := provider.Close(); err != nil {
			logg.Warn("Failed to close database pool", zap.Error(err))
		}
	}()

	app, err := newApp(cfg, logg, provider)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logg.Error("Server failed", zap.Error(err))
		return err
	case <-c:
		logg.Info("Shutting down server...")
		return app.Shutdown()
	}
}

// newApp builds the Fiber application with middleware and all features.
func newApp(cfg *config.Config, logg *zap.Logger, provider database.Provider) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	mgr := loader.NewManager()
	mgr.Register(health.NewFeature())
	mgr.Register(puzzles.NewFeature(provider, store.NewSelector(), logg))

	// RayID first so every later log line carries it.
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

	app.Get("/swagger/*", swagger.HandlerDefault)

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}
