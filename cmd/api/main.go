// Package main is the entry point for the movie-search-service API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"movie-search-service/internal/app/service"
	"movie-search-service/internal/config"
	"movie-search-service/internal/domain"
	"movie-search-service/internal/infra/omdb"
	rediscache "movie-search-service/internal/infra/redis"
	"movie-search-service/internal/job"
	"movie-search-service/internal/logger"
	"movie-search-service/internal/transport/httpserver"
	"movie-search-service/internal/transport/httpserver/handler"
	"movie-search-service/internal/validator"
	"movie-search-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting movie-search-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Create the OMDb client
	omdbClient := omdb.New(
		omdb.Config{
			BaseURL: cfg.OMDb.BaseURL,
			APIKey:  cfg.OMDb.APIKey,
			Timeout: cfg.OMDb.Timeout,
			CB: omdb.CBConfig{
				MaxRequests:  cfg.OMDb.CB.MaxRequests,
				Interval:     cfg.OMDb.CB.Interval,
				Timeout:      cfg.OMDb.CB.Timeout,
				FailureRatio: cfg.OMDb.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Ping Redis to verify connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	log.Info("connected to Redis",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)

	// Create cache implementation (optional, based on config)
	var byteCache domain.ByteCache
	var flusher handler.CacheFlusher
	if cfg.Cache.Enabled {
		cache := rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		byteCache = cache
		flusher = cache
		log.Info("cache enabled",
			zap.Duration("search_ttl", cfg.Cache.SearchTTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("cache disabled")
	}

	// Create services
	searchSvc := service.NewSearchService(omdbClient, omdbClient, byteCache, cfg.Cache.SearchTTL, log.Logger)

	// Create distributed locker
	distLocker := locker.NewRedisLocker(redisClient, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			Debug:     cfg.App.Debug,
		},
		searchSvc,
		flusher,
		redisClient,
		v,
		log.Logger,
	)

	// Start the cache warm scheduler with distributed locking
	var scheduler *job.WarmScheduler
	if cfg.Warm.Enabled && len(cfg.Warm.Queries) > 0 {
		scheduler = job.NewWarmScheduler(
			searchSvc,
			job.WarmConfig{
				Queries:   cfg.Warm.Queries,
				Interval:  cfg.Warm.Interval,
				Timeout:   cfg.Warm.Timeout,
				OnStartup: cfg.Warm.OnStartup,
			},
			log.Logger,
			distLocker,
		)
		scheduler.Start(cfg.Warm.OnStartup)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		if scheduler != nil {
			scheduler.Stop()
		}

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
