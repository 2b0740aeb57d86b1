package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/api/middleware"
	"github.com/tokentrack/burn-tracker/internal/api/rest"
	"github.com/tokentrack/burn-tracker/internal/cache"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/refresher"
	"github.com/tokentrack/burn-tracker/internal/registry"
	"github.com/tokentrack/burn-tracker/internal/supply"
	"github.com/tokentrack/burn-tracker/internal/tracker"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CronSecret   string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	registry   registry.TokenRegistry
	cache      cache.Store
	tracker    tracker.Tracker
	refresher  refresher.Refresher
	supply     supply.Calculator
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	reg registry.TokenRegistry,
	cacheStore cache.Store,
	trk tracker.Tracker,
	ref refresher.Refresher,
	sup supply.Calculator,
	clock adapter.Clock,
) *Server {
	return &Server{
		config:    cfg,
		registry:  reg,
		cache:     cacheStore,
		tracker:   trk,
		refresher: ref,
		supply:    sup,
		clock:     clock,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.registry, s.cache, s.tracker, s.refresher, s.supply, s.clock)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, middleware.AuthConfig{CronSecret: s.config.CronSecret})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
