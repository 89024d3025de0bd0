package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/sangkips/insights-api/internal/application/service"
	"github.com/sangkips/insights-api/internal/config"
	"github.com/sangkips/insights-api/internal/infrastructure/database"
	"github.com/sangkips/insights-api/internal/infrastructure/repository"
	"github.com/sangkips/insights-api/internal/logging"
	"github.com/sangkips/insights-api/internal/presentation/cli"
)

func main() {
	cfg := config.Load()
	// Reports go to stdout, so logs go to stderr.
	logger := logging.New(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	var db *gorm.DB
	factory := func(ctx context.Context) (*cli.Deps, error) {
		var err error
		db, err = database.NewPostgresDB(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}

		formatter := cfg.Format.Formatter()
		partyRepo := repository.NewPartyRepository(db)
		insightsRepo := repository.NewInsightsRepository(db)

		drilldown, err := service.NewDrilldownService(insightsRepo, formatter)
		if err != nil {
			return nil, err
		}

		return &cli.Deps{
			Insights:  service.NewInsightsService(partyRepo, insightsRepo, formatter),
			Drilldown: drilldown,
			Migrate: func(ctx context.Context) error {
				return database.AutoMigrate(ctx, db)
			},
			Seed: func(ctx context.Context) error {
				return database.SeedDemoData(ctx, db, time.Now())
			},
		}, nil
	}

	err := cli.NewRootCmd(factory, os.Stdout).ExecuteContext(ctx)
	if db != nil {
		if cerr := database.Close(db); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close database")
		}
	}
	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
