package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dishcovery/backend/config"
	httpDelivery "github.com/dishcovery/backend/internal/delivery/http"
	"github.com/dishcovery/backend/internal/domain"
	"github.com/dishcovery/backend/internal/infrastructure/cache"
	"github.com/dishcovery/backend/internal/infrastructure/catalog"
	"github.com/dishcovery/backend/internal/infrastructure/search"
	"github.com/dishcovery/backend/internal/pkg/logging"
	"github.com/dishcovery/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting dishcovery backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type),
		zap.Duration("search_timeout", cfg.Search.Timeout),
	)

	// Cache backend: in-process by default, redis when configured.
	var store domain.CacheStore
	switch cfg.Cache.Type {
	case "redis":
		redisStore, err := cache.NewRedisStore(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
	default:
		store = cache.NewMemoryStore()
	}

	catalogClient := catalog.NewClient(cfg.Catalog.APIKey, cfg.Catalog.BaseURL, logger)
	catalogCache := cache.NewCatalogCache(store, catalogClient, cfg.Cache.TTL, logger)

	searchClient := search.NewClient(cfg.Search.BaseURL, cfg.Search.APIKey, cfg.Search.Timeout, logger)

	resolver := usecase.NewSynonymResolver()
	matchService := usecase.NewMatchService(
		searchClient,
		catalogCache,
		resolver,
		usecase.MatchServiceConfig{
			SearchTimeout: cfg.Search.Timeout,
			Denominator:   usecase.ScoreDenominator(cfg.Matching.ScoreDenominator),
		},
		logger,
	)

	handler := httpDelivery.NewHandler(matchService, catalogCache, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server exited")
}
