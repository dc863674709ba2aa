package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/riftbounddb/backend/internal/cards"
	"github.com/riftbounddb/backend/internal/ingest"
	"github.com/riftbounddb/backend/pkg/config"
	"github.com/riftbounddb/backend/pkg/logger"
	"github.com/riftbounddb/backend/pkg/mongodb"
)

// Offline catalog sync. Run it from a scheduler (cron, Cloud Run job); the
// API never triggers ingestion.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.Catalog.APIKey == "" {
		logg.Error(context.Background(), "catalog api key is required", nil)
		os.Exit(1)
	}

	mongoClient, err := mongodb.New(context.Background(), cfg.Mongo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap mongodb", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			logg.Error(context.Background(), "error closing mongodb", err)
		}
	}()

	cardRepo := cards.NewRepository(mongoClient.DB())
	if err := cardRepo.EnsureIndexes(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to ensure card indexes", err)
		os.Exit(1)
	}

	client, err := ingest.NewClient(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	runner, err := ingest.NewRunner(client, cardRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create seed runner", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logg.Info(ctx, "seed.start")

	total, err := runner.Run(ctx)
	if err != nil {
		logCtx := logg.WithField(ctx, "upserts", total)
		logg.Error(logCtx, "seed.aborted", err)
		os.Exit(1)
	}

	logCtx := logg.WithField(ctx, "upserts", total)
	logg.Info(logCtx, "seed.complete")
}
