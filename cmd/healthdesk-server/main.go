package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthdesk/healthdesk/internal/config"
	"github.com/healthdesk/healthdesk/internal/domain/appointment"
	"github.com/healthdesk/healthdesk/internal/domain/catalog"
	"github.com/healthdesk/healthdesk/internal/domain/prescription"
	"github.com/healthdesk/healthdesk/internal/platform/db"
	"github.com/healthdesk/healthdesk/internal/platform/middleware"
	"github.com/healthdesk/healthdesk/internal/platform/notification"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthdesk-server",
		Short: "HealthDesk directory and appointment booking API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HealthDesk API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the appointment schema for the postgres storage driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required to run migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := appointment.NewPGRepo(pool, logger).Migrate(ctx); err != nil {
				return err
			}
			logger.Info().Msg("appointment schema ready")
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Reference catalog
	store := catalog.Default()
	if cfg.CatalogFile != "" {
		store, err = catalog.Load(cfg.CatalogFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CatalogFile).Msg("failed to load catalog")
		}
		logger.Info().Str("path", cfg.CatalogFile).Msg("loaded catalog override")
	}

	// Appointment storage
	ctx := context.Background()
	var repo appointment.Repository
	var pool *pgxpool.Pool
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		p, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		pool = p
		pg := appointment.NewPGRepo(p, logger)
		if err := pg.Migrate(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare appointment schema")
		}
		repo = pg
		logger.Info().Msg("using postgres appointment store")
	case config.DriverMemory:
		repo = appointment.NewMemRepo()
		logger.Info().Msg("using in-memory appointment store")
	default:
		repo = appointment.NewFileRepo(cfg.AppointmentsFile, logger)
		logger.Info().Str("path", cfg.AppointmentsFile).Msg("using file appointment store")
	}
	if pool != nil {
		defer pool.Close()
	}

	// Services
	notifier := notification.NewLogNotifier(logger)
	bookingSvc := appointment.NewService(store, repo, notifier, logger)
	prescriptionSvc := prescription.NewService(prescription.Default(), store, notifier, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.BodyLimit(1 << 20))
	e.Use(middleware.RequestTimeout(30 * time.Second))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	// Routes
	api := e.Group("/api")
	catalog.NewHandler(store).RegisterRoutes(api)
	appointment.NewHandler(bookingSvc).RegisterRoutes(api)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
