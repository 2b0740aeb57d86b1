package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/aggregator"
	"github.com/tokentrack/burn-tracker/internal/cache"
	"github.com/tokentrack/burn-tracker/internal/config"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/providers/ethereum"
	"github.com/tokentrack/burn-tracker/internal/ratelimit"
	"github.com/tokentrack/burn-tracker/internal/refresher"
	"github.com/tokentrack/burn-tracker/internal/registry"
	"github.com/tokentrack/burn-tracker/internal/store"
	"github.com/tokentrack/burn-tracker/internal/tracker"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Burn Tracker Sweeper")

	// Load token registry
	tokenRegistry, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load token registry",
			zap.Error(err), zap.String("path", cfg.RegistryPath))
	}

	// Initialize adapters
	clock := adapter.NewClock()
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}()

	// Connect to the chain RPC
	dialer := adapter.NewEthClientDialer()
	ethClient, err := dialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial RPC provider", zap.Error(err))
	}

	chainClient, err := ethereum.NewClient(ethereum.Config{
		ChainID:     cfg.Ethereum.ChainID,
		ChunkSize:   cfg.Ethereum.ChunkSize,
		CallTimeout: cfg.Ethereum.CallTimeout,
	}, ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}
	defer chainClient.Close()

	// Rate limit proxy in front of the RPC provider
	limiter, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			logger.Warn("Failed to close rate limit proxy", zap.Error(err))
		}
	}()

	// Optional job bookkeeping database
	var jobStore store.Store
	if cfg.Database.Host != "" {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		if err := store.AutoMigrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		jobStore = store.NewPGStore(db)
		logger.InfoCtx(ctx, "Connected to database")
	} else {
		logger.WarnCtx(ctx, "Database not configured, job bookkeeping disabled")
	}

	// Build the refresh pipeline
	agg := aggregator.NewAggregator(chainClient, limiter, clock)
	cacheStore := cache.NewStore(redisClient, clock, cfg.Refresh)
	viewTracker := tracker.NewTracker(redisClient, clock)
	ref := refresher.NewRefresher(tokenRegistry, agg, cacheStore, viewTracker, jobStore, clock, cfg.Refresh)
	defer ref.Close()

	// Two loops: a slow full-registry sweep and a fast active-token sweep
	fullSweeper := refresher.NewFullSweeper(ref, clock, cfg.Refresh.FullSweepEvery)
	activeSweeper := refresher.NewActiveSweeper(ref, clock, cfg.Refresh.ActiveSweepEvery)

	logger.InfoCtx(ctx, "Initialized sweepers",
		zap.Duration("full_every", cfg.Refresh.FullSweepEvery),
		zap.Duration("active_every", cfg.Refresh.ActiveSweepEvery),
		zap.Int("batch_size", cfg.Refresh.BatchSize),
	)

	// Start both sweepers
	errChan := make(chan error, 2)
	go func() {
		if err := fullSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()
	go func() {
		if err := activeSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := fullSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := activeSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
