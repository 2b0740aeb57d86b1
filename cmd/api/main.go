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
	"github.com/tokentrack/burn-tracker/internal/api/server"
	"github.com/tokentrack/burn-tracker/internal/cache"
	"github.com/tokentrack/burn-tracker/internal/config"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/providers/ethereum"
	"github.com/tokentrack/burn-tracker/internal/ratelimit"
	"github.com/tokentrack/burn-tracker/internal/refresher"
	"github.com/tokentrack/burn-tracker/internal/registry"
	"github.com/tokentrack/burn-tracker/internal/store"
	"github.com/tokentrack/burn-tracker/internal/supply"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Burn Tracker API")

	// Load token registry
	tokenRegistry, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load token registry",
			zap.Error(err), zap.String("path", cfg.RegistryPath))
	}
	logger.InfoCtx(ctx, "Loaded token registry",
		zap.String("path", cfg.RegistryPath),
		zap.Int("tokens", tokenRegistry.Len()))

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
	logger.InfoCtx(ctx, "Connected to RPC provider",
		zap.String("chain", string(cfg.Ethereum.ChainID)))

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
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
	} else {
		logger.WarnCtx(ctx, "Database not configured, job bookkeeping disabled")
	}

	// Build the refresh pipeline
	agg := aggregator.NewAggregator(chainClient, limiter, clock)
	cacheStore := cache.NewStore(redisClient, clock, cfg.Refresh)
	viewTracker := tracker.NewTracker(redisClient, clock)
	ref := refresher.NewRefresher(tokenRegistry, agg, cacheStore, viewTracker, jobStore, clock, cfg.Refresh)
	defer ref.Close()

	supplyCalc := supply.NewCalculator(chainClient, limiter, cfg.LockedSupplyAddresses)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CronSecret:   cfg.Auth.CronSecret,
	}

	// Create and start server
	srv := server.New(serverConfig, tokenRegistry, cacheStore, viewTracker, ref, supplyCalc, clock)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
