package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentrack/burn-tracker/internal/cache"
	"github.com/tokentrack/burn-tracker/internal/config"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/mocks"
	"github.com/tokentrack/burn-tracker/internal/registry"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testCacheMocks struct {
	ctrl  *gomock.Controller
	redis *mocks.MockRedisClient
	clock *mocks.MockClock
	store cache.Store
}

func testRefreshConfig() config.RefreshConfig {
	return config.RefreshConfig{
		ShortInterval:  time.Minute,
		MediumInterval: 5 * time.Minute,
		LongInterval:   30 * time.Minute,
	}
}

func setupTestCache(t *testing.T) *testCacheMocks {
	ctrl := gomock.NewController(t)

	tm := &testCacheMocks{
		ctrl:  ctrl,
		redis: mocks.NewMockRedisClient(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.store = cache.NewStore(tm.redis, tm.clock, testRefreshConfig())
	return tm
}

func cacheTestToken() *registry.Token {
	return &registry.Token{
		Symbol:   "PHT",
		Chain:    domain.ChainAssetChain,
		Address:  "0xAAAA000000000000000000000000000000000001",
		Decimals: 18,
	}
}

const phtEntryKey = "burn:assetchain:0xaaaa000000000000000000000000000000000001"

func TestGet_Hit(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	stored := domain.CacheEntry{
		Summary:    domain.BurnSummary{TokenName: "PHT", Burn24H: 175},
		NextUpdate: time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(&stored)
	require.NoError(t, err)

	tm.redis.EXPECT().Get(gomock.Any(), phtEntryKey).Return(string(payload), true, nil)

	entry, err := tm.store.Get(context.Background(), cacheTestToken())
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 175.0, entry.Summary.Burn24H)
	assert.True(t, entry.FromCache)
	assert.True(t, stored.NextUpdate.Equal(entry.NextUpdate))
}

func TestGet_Absent(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	tm.redis.EXPECT().Get(gomock.Any(), phtEntryKey).Return("", false, nil)

	entry, err := tm.store.Get(context.Background(), cacheTestToken())
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGet_CorruptEntryTreatedAsAbsent(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	tm.redis.EXPECT().Get(gomock.Any(), phtEntryKey).Return("{garbage", true, nil)

	entry, err := tm.store.Get(context.Background(), cacheTestToken())
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGet_RedisDownNoFallback(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	tm.redis.EXPECT().Get(gomock.Any(), phtEntryKey).
		Return("", false, errors.New("connection refused"))

	_, err := tm.store.Get(context.Background(), cacheTestToken())
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestGet_RedisDownServesMemoryFallback(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := cacheTestToken()

	// A successful Put mirrors the entry into the memory fallback
	tm.clock.EXPECT().Now().Return(now)
	tm.redis.EXPECT().Set(gomock.Any(), phtEntryKey, gomock.Any(), gomock.Any()).Return(nil)

	summary := &domain.BurnSummary{TokenName: "PHT", Burn24H: 42}
	_, err := tm.store.Put(context.Background(), token, summary, domain.IntervalShort)
	require.NoError(t, err)

	// Redis goes away; the read degrades to the mirror
	tm.redis.EXPECT().Get(gomock.Any(), phtEntryKey).
		Return("", false, errors.New("connection refused"))

	entry, err := tm.store.Get(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 42.0, entry.Summary.Burn24H)
}

func TestPut_AssignsTieredNextUpdate(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := cacheTestToken()

	tests := []struct {
		class    domain.IntervalClass
		expected time.Time
	}{
		{domain.IntervalShort, now.Add(time.Minute)},
		{domain.IntervalMedium, now.Add(5 * time.Minute)},
		{domain.IntervalLong, now.Add(30 * time.Minute)},
	}

	for _, tc := range tests {
		tm.clock.EXPECT().Now().Return(now)
		tm.redis.EXPECT().Set(gomock.Any(), phtEntryKey, gomock.Any(), 48*time.Hour).Return(nil)

		entry, err := tm.store.Put(context.Background(), token, &domain.BurnSummary{}, tc.class)
		require.NoError(t, err, string(tc.class))
		assert.True(t, tc.expected.Equal(entry.NextUpdate), string(tc.class))
		assert.True(t, entry.FromCache)
	}
}

func TestPut_RedisDownStillSucceeds(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.redis.EXPECT().Set(gomock.Any(), phtEntryKey, gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	entry, err := tm.store.Put(context.Background(), cacheTestToken(), &domain.BurnSummary{Burn24H: 7}, domain.IntervalShort)
	require.NoError(t, err)
	assert.Equal(t, 7.0, entry.Summary.Burn24H)
}

func TestPlaceholder(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	entry := tm.store.Placeholder(cacheTestToken())
	require.NotNil(t, entry)
	assert.False(t, entry.FromCache)
	assert.Equal(t, "PHT", entry.Summary.TokenName)
	assert.Equal(t, "0xaaaa000000000000000000000000000000000001", entry.Summary.TokenAddress)
	assert.Zero(t, entry.Summary.Burn24H)
	// A placeholder is stale immediately so the first read triggers a refresh
	assert.True(t, entry.Stale(now))
}

func TestTryLock(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	key := domain.NewTokenKey(domain.ChainAssetChain, "0xaaaa01")
	lockKey := "lock:burn:" + string(key)

	tm.redis.EXPECT().SetNX(gomock.Any(), lockKey, "1", 2*time.Minute).Return(true, nil)
	acquired, err := tm.store.TryLock(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, acquired)

	tm.redis.EXPECT().SetNX(gomock.Any(), lockKey, "1", 2*time.Minute).Return(false, nil)
	acquired, err = tm.store.TryLock(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestTryLock_RedisDownGrantsLock(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	key := domain.NewTokenKey(domain.ChainAssetChain, "0xaaaa01")
	tm.redis.EXPECT().SetNX(gomock.Any(), gomock.Any(), "1", gomock.Any()).
		Return(false, errors.New("connection refused"))

	// Without Redis the in-process in-flight set is the only dedup layer
	acquired, err := tm.store.TryLock(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestUnlock(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	key := domain.NewTokenKey(domain.ChainAssetChain, "0xaaaa01")
	tm.redis.EXPECT().Del(gomock.Any(), "lock:burn:"+string(key)).Return(int64(1), nil)

	tm.store.Unlock(context.Background(), key)
}

func TestHealth(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	tm.redis.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, tm.store.Health(context.Background()))

	tm.redis.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	assert.ErrorIs(t, tm.store.Health(context.Background()), domain.ErrCacheUnavailable)
}

func TestClear(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	keys := []string{"burn:assetchain:0x1", "burn:ethereum:0x2"}
	tm.redis.EXPECT().Keys(gomock.Any(), "burn:*").Return(keys, nil)
	tm.redis.EXPECT().Del(gomock.Any(), keys[0], keys[1]).Return(int64(2), nil)

	cleared, err := tm.store.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)
}

func TestClearChain(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	keys := []string{"burn:assetchain:0x1"}
	tm.redis.EXPECT().Keys(gomock.Any(), "burn:assetchain:*").Return(keys, nil)
	tm.redis.EXPECT().Del(gomock.Any(), keys[0]).Return(int64(1), nil)

	cleared, err := tm.store.ClearChain(context.Background(), domain.ChainAssetChain)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)
}

func TestInfo(t *testing.T) {
	tm := setupTestCache(t)
	defer tm.ctrl.Finish()

	tm.redis.EXPECT().DBSize(gomock.Any()).Return(int64(10), nil)
	tm.redis.EXPECT().Keys(gomock.Any(), "burn:*").Return([]string{"burn:a", "burn:b"}, nil)

	info, err := tm.store.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "redis", info.Backend)
	assert.Equal(t, int64(10), info.RedisKeys)
	assert.Equal(t, 2, info.BurnEntries)
}
