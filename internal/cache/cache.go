package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/config"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/registry"
)

const (
	// entryPrefix namespaces burn summary entries in Redis
	entryPrefix = "burn:"

	// lockPrefix namespaces per-token in-flight recomputation locks
	lockPrefix = "lock:burn:"

	// entryTTL is the hard expiry of a cache entry, independent of the softer
	// nextUpdate staleness signal. Twice the widest window so an idle token's
	// last summary survives a full sweep gap.
	entryTTL = 48 * time.Hour

	// lockTTL bounds how long a crashed recomputation can block others
	lockTTL = 2 * time.Minute
)

// Info describes the cache backend state for the operator endpoint
type Info struct {
	Backend        string `json:"backend"`
	RedisKeys      int64  `json:"redis_keys"`
	BurnEntries    int    `json:"burn_entries"`
	FallbackMemory int    `json:"fallback_memory_entries"`
}

// Store persists burn summaries with staleness metadata.
// Reads and writes degrade to an in-process memory fallback when Redis is
// unreachable; the fallback never expires entries on its own.
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache_store.go -package=mocks -mock_names=Store=MockCacheStore
type Store interface {
	// Get returns the cached entry for the token, or nil when absent
	Get(ctx context.Context, token *registry.Token) (*domain.CacheEntry, error)

	// Put stores a freshly computed summary. The entry's NextUpdate is
	// assigned from the interval class that triggered the recomputation.
	Put(ctx context.Context, token *registry.Token, summary *domain.BurnSummary, class domain.IntervalClass) (*domain.CacheEntry, error)

	// Placeholder synthesizes an all-zero entry for tokens with no cached
	// data yet, marked FromCache=false
	Placeholder(token *registry.Token) *domain.CacheEntry

	// TryLock attempts to take the per-token in-flight recomputation lock.
	// Returns false when another recomputation already holds it.
	TryLock(ctx context.Context, key domain.TokenKey) (bool, error)

	// Unlock releases the in-flight recomputation lock
	Unlock(ctx context.Context, key domain.TokenKey)

	// Health pings the Redis backend
	Health(ctx context.Context) error

	// Info reports backend state for the operator endpoint
	Info(ctx context.Context) (*Info, error)

	// Clear removes every burn entry (Redis and memory fallback)
	Clear(ctx context.Context) (int, error)

	// ClearChain removes burn entries for one chain only
	ClearChain(ctx context.Context, chain domain.Chain) (int, error)
}

type store struct {
	redis   adapter.RedisClient
	clock   adapter.Clock
	refresh config.RefreshConfig
	memory  *memoryStore
}

// NewStore creates a Redis-backed cache store with a memory fallback
func NewStore(rc adapter.RedisClient, clock adapter.Clock, refresh config.RefreshConfig) Store {
	return &store{
		redis:   rc,
		clock:   clock,
		refresh: refresh,
		memory:  newMemoryStore(),
	}
}

func entryKey(token *registry.Token) string {
	return entryPrefix + string(token.Key())
}

// Get returns the cached entry for the token, or nil when absent
func (s *store) Get(ctx context.Context, token *registry.Token) (*domain.CacheEntry, error) {
	key := entryKey(token)

	value, found, err := s.redis.Get(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Cache read failed, using memory fallback",
			zap.String("key", key), zap.Error(err))
		if entry, ok := s.memory.get(key); ok {
			return entry, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	if !found {
		return nil, nil
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal([]byte(value), &entry); err != nil {
		// A corrupt entry is treated as absent so the refresh path replaces it
		logger.WarnCtx(ctx, "Discarding corrupt cache entry",
			zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	entry.FromCache = true
	return &entry, nil
}

// Put stores a freshly computed summary with a tiered NextUpdate
func (s *store) Put(ctx context.Context, token *registry.Token, summary *domain.BurnSummary, class domain.IntervalClass) (*domain.CacheEntry, error) {
	entry := domain.CacheEntry{
		Summary:    *summary,
		NextUpdate: s.clock.Now().Add(s.refresh.IntervalFor(class)),
		FromCache:  true,
	}

	payload, err := json.Marshal(&entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	key := entryKey(token)
	if err := s.redis.Set(ctx, key, string(payload), entryTTL); err != nil {
		logger.WarnCtx(ctx, "Cache write failed, using memory fallback",
			zap.String("key", key), zap.Error(err))
		s.memory.put(key, entry)
		return &entry, nil
	}

	// Mirror into the fallback so a later Redis outage still has data
	s.memory.put(key, entry)
	return &entry, nil
}

// Placeholder synthesizes an all-zero entry for tokens with no cached data
func (s *store) Placeholder(token *registry.Token) *domain.CacheEntry {
	now := s.clock.Now()
	return &domain.CacheEntry{
		Summary: domain.BurnSummary{
			TokenName:    token.Symbol,
			TokenAddress: strings.ToLower(token.Address),
			LastUpdated:  now,
		},
		NextUpdate: now,
		FromCache:  false,
	}
}

// TryLock attempts to take the per-token in-flight recomputation lock
func (s *store) TryLock(ctx context.Context, key domain.TokenKey) (bool, error) {
	acquired, err := s.redis.SetNX(ctx, lockPrefix+string(key), "1", lockTTL)
	if err != nil {
		// Without Redis there is no cross-process coordination; let the
		// caller's local in-flight set carry deduplication alone
		logger.WarnCtx(ctx, "In-flight lock unavailable",
			zap.String("token", string(key)), zap.Error(err))
		return true, nil
	}
	return acquired, nil
}

// Unlock releases the in-flight recomputation lock
func (s *store) Unlock(ctx context.Context, key domain.TokenKey) {
	if _, err := s.redis.Del(ctx, lockPrefix+string(key)); err != nil {
		logger.WarnCtx(ctx, "Failed to release in-flight lock",
			zap.String("token", string(key)), zap.Error(err))
	}
}

// Health pings the Redis backend
func (s *store) Health(ctx context.Context) error {
	if err := s.redis.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Info reports backend state for the operator endpoint
func (s *store) Info(ctx context.Context) (*Info, error) {
	info := &Info{
		Backend:        "redis",
		FallbackMemory: s.memory.len(),
	}

	size, err := s.redis.DBSize(ctx)
	if err != nil {
		info.Backend = "memory-fallback"
		info.BurnEntries = s.memory.len()
		return info, nil
	}
	info.RedisKeys = size

	keys, err := s.redis.Keys(ctx, entryPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	info.BurnEntries = len(keys)

	return info, nil
}

// Clear removes every burn entry
func (s *store) Clear(ctx context.Context) (int, error) {
	cleared := s.memory.clear()

	keys, err := s.redis.Keys(ctx, entryPrefix+"*")
	if err != nil {
		return cleared, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	if len(keys) > 0 {
		if _, err := s.redis.Del(ctx, keys...); err != nil {
			return cleared, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
		}
	}

	logger.InfoCtx(ctx, "Cleared burn cache",
		zap.Int("redis_keys", len(keys)),
		zap.Int("memory_entries", cleared))
	return len(keys), nil
}

// ClearChain removes burn entries for one chain only
func (s *store) ClearChain(ctx context.Context, chain domain.Chain) (int, error) {
	prefix := entryPrefix + string(chain) + ":"
	cleared := s.memory.clearPrefix(prefix)

	keys, err := s.redis.Keys(ctx, prefix+"*")
	if err != nil {
		return cleared, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	if len(keys) > 0 {
		if _, err := s.redis.Del(ctx, keys...); err != nil {
			return cleared, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
		}
	}

	logger.InfoCtx(ctx, "Cleared burn cache for chain",
		zap.String("chain", string(chain)),
		zap.Int("redis_keys", len(keys)))
	return len(keys), nil
}
