package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/insights-api/internal/application/service"
	"github.com/sangkips/insights-api/internal/config"
	"github.com/sangkips/insights-api/internal/infrastructure/database"
	"github.com/sangkips/insights-api/internal/infrastructure/repository"
	"github.com/sangkips/insights-api/internal/logging"
	"github.com/sangkips/insights-api/internal/presentation/http/handler"
	"github.com/sangkips/insights-api/internal/presentation/http/middleware"
	"github.com/sangkips/insights-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.New(cfg.Log, os.Stdout)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Initialize repositories
	partyRepo := repository.NewPartyRepository(db)
	insightsRepo := repository.NewInsightsRepository(db)

	// Initialize services
	formatter := cfg.Format.Formatter()
	insightsService := service.NewInsightsService(partyRepo, insightsRepo, formatter)
	drilldownService, err := service.NewDrilldownService(insightsRepo, formatter)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build drill-down renderer")
	}

	limiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.Burst,
	})
	defer limiter.Close()

	// Setup routes
	router := routes.Setup(&routes.Handlers{
		Insights: handler.NewInsightsHandler(insightsService, drilldownService),
	}, &routes.Deps{
		Cfg:         cfg,
		Logger:      logger,
		RateLimiter: limiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().
			Str("service", cfg.App.Name).
			Str("env", cfg.App.Env).
			Str("port", port).
			Msg("starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
