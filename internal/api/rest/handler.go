package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/cache"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/refresher"
	"github.com/tokentrack/burn-tracker/internal/registry"
	"github.com/tokentrack/burn-tracker/internal/supply"
	"github.com/tokentrack/burn-tracker/internal/tracker"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetTotalBurnt returns the cached burn summary for a token, enqueueing a
	// background recomputation when the entry is stale or absent
	// GET /api/:chain/total-burnt/:tokenName
	GetTotalBurnt(c *gin.Context)

	// CalculateBurns synchronously recomputes a token and writes the cache
	// POST|GET /api/cron/calculate-burns/:tokenName
	CalculateBurns(c *gin.Context)

	// UpdateBurnData runs a full sweep, or refreshes one token when ?token= is
	// given
	// GET|POST /api/cron/update-burn-data
	UpdateBurnData(c *gin.Context)

	// RefreshActive sweeps the actively viewed tokens
	// GET /api/workers/refresh-active
	RefreshActive(c *gin.Context)

	// TrackActive records a token view
	// POST /api/workers/track-active
	TrackActive(c *gin.Context)

	// ListActive lists the current active-token set
	// GET /api/workers/track-active
	ListActive(c *gin.Context)

	// CacheAdmin serves operator cache actions (health, info, clear,
	// clear-chain)
	// GET /api/cache/api?action=<action>
	CacheAdmin(c *gin.Context)

	// GetCirculatingSupply returns the circulating supply breakdown
	// GET /api/:chain/circulating-supply/:tokenName
	GetCirculatingSupply(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	registry  registry.TokenRegistry
	cache     cache.Store
	tracker   tracker.Tracker
	refresher refresher.Refresher
	supply    supply.Calculator
	clock     adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(
	reg registry.TokenRegistry,
	cacheStore cache.Store,
	trk tracker.Tracker,
	ref refresher.Refresher,
	sup supply.Calculator,
	clock adapter.Clock,
) Handler {
	return &handler{
		registry:  reg,
		cache:     cacheStore,
		tracker:   trk,
		refresher: ref,
		supply:    sup,
		clock:     clock,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"tokens": h.registry.Len(),
	})
}

// resolveChainToken parses the :chain and :tokenName params against the
// registry, writing the error response itself on failure
func (h *handler) resolveChainToken(c *gin.Context) *registry.Token {
	chain := domain.Chain(c.Param("chain"))
	if !chain.Valid() {
		respondBadRequest(c, "Unsupported chain", string(chain))
		return nil
	}

	token, err := h.registry.ResolveForChain(chain, c.Param("tokenName"))
	if err != nil {
		respondBadRequest(c, "Unknown token", err.Error())
		return nil
	}
	return token
}

// GetTotalBurnt returns the cached burn summary for a token.
// The response is always immediate: stale or missing entries trigger exactly
// one background recomputation while the request is served from whatever data
// exists.
func (h *handler) GetTotalBurnt(c *gin.Context) {
	token := h.resolveChainToken(c)
	if token == nil {
		return
	}

	ctx := c.Request.Context()

	// Viewing a token keeps it on the fast refresh cadence
	h.tracker.RecordView(ctx, token.Chain, token.Address)

	entry, err := h.cache.Get(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrCacheUnavailable) {
		respondInternalError(c, err, "Failed to read burn data")
		return
	}

	if entry == nil {
		entry = h.cache.Placeholder(token)
	}
	if entry.Stale(h.clock.Now()) {
		h.refresher.Enqueue(token, domain.IntervalShort, refresher.TriggerStaleRead)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        entry.Summary,
		"from_cache":  entry.FromCache,
		"next_update": entry.NextUpdate,
	})
}

// CalculateBurns synchronously recomputes a token and writes the cache
func (h *handler) CalculateBurns(c *gin.Context) {
	tokenName := c.Param("tokenName")
	if tokenName == "" {
		respondBadRequest(c, "Token name is required")
		return
	}

	token, err := h.registry.Resolve(tokenName)
	if err != nil {
		respondBadRequest(c, "Unknown token", err.Error())
		return
	}

	entry, err := h.refresher.RefreshToken(c.Request.Context(), token, domain.IntervalShort, refresher.TriggerCron)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshInFlight) {
			respondConflict(c, "Recomputation already in flight", err.Error())
			return
		}
		respondInternalError(c, err, "Failed to compute burn data",
			zap.String("token", token.Symbol))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        entry.Summary,
		"next_update": entry.NextUpdate,
	})
}

// UpdateBurnData runs a full sweep, or refreshes one token when ?token= is
// given
func (h *handler) UpdateBurnData(c *gin.Context) {
	ctx := c.Request.Context()

	if tokenName := c.Query("token"); tokenName != "" {
		token, err := h.registry.Resolve(tokenName)
		if err != nil {
			respondBadRequest(c, "Unknown token", err.Error())
			return
		}

		entry, err := h.refresher.RefreshToken(ctx, token, domain.IntervalMedium, refresher.TriggerCron)
		if err != nil {
			if errors.Is(err, domain.ErrRefreshInFlight) {
				respondConflict(c, "Recomputation already in flight", err.Error())
				return
			}
			respondInternalError(c, err, "Failed to compute burn data",
				zap.String("token", token.Symbol))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":        entry.Summary,
			"next_update": entry.NextUpdate,
		})
		return
	}

	report := h.refresher.FullSweep(ctx)
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// RefreshActive sweeps the actively viewed tokens
func (h *handler) RefreshActive(c *gin.Context) {
	report := h.refresher.ActiveSweep(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// trackActiveRequest is the POST body for TrackActive
type trackActiveRequest struct {
	Chain string `json:"chain" binding:"required"`
	Token string `json:"token" binding:"required"`
}

// TrackActive records a token view
func (h *handler) TrackActive(c *gin.Context) {
	var req trackActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "chain and token fields are required", err.Error())
		return
	}

	chain := domain.Chain(req.Chain)
	if !chain.Valid() {
		respondBadRequest(c, "Unsupported chain", req.Chain)
		return
	}

	token, err := h.registry.ResolveForChain(chain, req.Token)
	if err != nil {
		respondBadRequest(c, "Unknown token", err.Error())
		return
	}

	h.tracker.RecordView(c.Request.Context(), token.Chain, token.Address)
	c.JSON(http.StatusOK, gin.H{"tracked": token.Key()})
}

// ListActive lists the current active-token set
func (h *handler) ListActive(c *gin.Context) {
	active, err := h.tracker.ListActive(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list active tokens")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active": active,
		"count":  len(active),
	})
}

// CacheAdmin serves operator cache actions
func (h *handler) CacheAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	switch c.Query("action") {
	case "health":
		if err := h.cache.Health(ctx); err != nil {
			respondUpstreamError(c, err, "Cache backend unhealthy")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})

	case "info":
		info, err := h.cache.Info(ctx)
		if err != nil {
			respondInternalError(c, err, "Failed to inspect cache")
			return
		}
		c.JSON(http.StatusOK, info)

	case "clear":
		cleared, err := h.cache.Clear(ctx)
		if err != nil {
			respondInternalError(c, err, "Failed to clear cache")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": cleared})

	case "clear-chain":
		chain := domain.Chain(c.Query("chain"))
		if !chain.Valid() {
			respondBadRequest(c, "Unsupported chain", string(chain))
			return
		}
		cleared, err := h.cache.ClearChain(ctx, chain)
		if err != nil {
			respondInternalError(c, err, "Failed to clear cache for chain")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": cleared, "chain": chain})

	default:
		respondBadRequest(c, "Invalid action", "expected health, info, clear or clear-chain")
	}
}

// GetCirculatingSupply returns the circulating supply breakdown
func (h *handler) GetCirculatingSupply(c *gin.Context) {
	token := h.resolveChainToken(c)
	if token == nil {
		return
	}

	breakdown, err := h.supply.Circulating(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamRateLimited) {
			respondUpstreamError(c, err, "RPC provider throttled the request")
			return
		}
		respondInternalError(c, err, "Failed to compute circulating supply",
			zap.String("token", token.Symbol))
		return
	}

	logger.DebugCtx(c.Request.Context(), "Served circulating supply",
		zap.String("token", token.Symbol))
	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}
