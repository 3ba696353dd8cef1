// ABOUTME: Main entry point for the WikiScroll API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikiscroll-api/api"
	"wikiscroll-api/api/handlers"
	"wikiscroll-api/core/articles"
	"wikiscroll-api/core/interfaces"
	"wikiscroll-api/core/preview"
	"wikiscroll-api/infrastructure/cache/memory"
	"wikiscroll-api/infrastructure/cache/redis"
	"wikiscroll-api/infrastructure/cache/sqlite"
	"wikiscroll-api/infrastructure/clock"
	stdhttp "wikiscroll-api/infrastructure/http/standard"
	logruslogger "wikiscroll-api/infrastructure/logger/logrus"
	"wikiscroll-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger()
	logger.Info("Starting WikiScroll API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Cache.TTLSeconds,
	})

	// Create cache
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(ttl)
		} else {
			cache = redisCache
			defer redisCache.Close()
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(ttl)
		} else {
			cache = sqliteCache
			defer sqliteCache.Close()
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
		}
	default:
		cache = memory.NewMemoryCache(ttl)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Clock:      clock.NewSystemClock(),
	}

	// Create services
	articleService := articles.NewService(deps, articles.Options{
		FanoutLimit:  cfg.Fetch.FanoutLimit,
		FetchTimeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
	})
	articleStore := articles.NewStore(deps, articleService, ttl)
	previewService := preview.NewService(deps)

	// Create router
	router := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Articles: handlers.NewArticlesHandler(articleStore, logger),
		Resolver: previewService,
		Page:     http.FileServer(http.Dir(cfg.Server.StaticDir)),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
