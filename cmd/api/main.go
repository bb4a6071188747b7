package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/danielmerja/stnh/internal/cache"
	"github.com/danielmerja/stnh/internal/config"
	"github.com/danielmerja/stnh/internal/database"
	"github.com/danielmerja/stnh/internal/handlers"
	"github.com/danielmerja/stnh/internal/intake"
	"github.com/danielmerja/stnh/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.GinMode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// The listing cache is optional; without Redis every read hits the
	// database directly.
	var listings *cache.Listings
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		listings = cache.NewListings(client, logger)
		logger.Info("listing cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	handler := handlers.NewHandler(db.GetDB(), listings, intake.Mode(cfg.SubmissionMode), logger)
	srv := server.New(cfg, db, handler)

	logger.Info("server starting",
		zap.String("addr", srv.Addr), zap.String("submission_mode", cfg.SubmissionMode))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
