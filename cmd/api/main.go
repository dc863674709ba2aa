package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/riftbounddb/backend/api/routes"
	authsvc "github.com/riftbounddb/backend/internal/auth"
	"github.com/riftbounddb/backend/internal/cards"
	"github.com/riftbounddb/backend/internal/users"
	"github.com/riftbounddb/backend/pkg/config"
	"github.com/riftbounddb/backend/pkg/logger"
	"github.com/riftbounddb/backend/pkg/metrics"
	"github.com/riftbounddb/backend/pkg/mongodb"
	"github.com/riftbounddb/backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

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
	userRepo := users.NewRepository(mongoClient.DB())
	if err := cardRepo.EnsureIndexes(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to ensure card indexes", err)
		os.Exit(1)
	}
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to ensure user indexes", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	cardService, err := cards.NewService(cardRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create card service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, mongoClient, redisClient, httpMetrics, cardService, authService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
