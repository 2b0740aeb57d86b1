package refresher_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentrack/burn-tracker/internal/config"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/mocks"
	"github.com/tokentrack/burn-tracker/internal/refresher"
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

type testRefresherMocks struct {
	ctrl      *gomock.Controller
	registry  *mocks.MockTokenRegistry
	agg       *mocks.MockAggregator
	cache     *mocks.MockCacheStore
	tracker   *mocks.MockTracker
	clock     *mocks.MockClock
	refresher refresher.Refresher
}

func setupTestRefresher(t *testing.T) *testRefresherMocks {
	ctrl := gomock.NewController(t)

	tm := &testRefresherMocks{
		ctrl:     ctrl,
		registry: mocks.NewMockTokenRegistry(ctrl),
		agg:      mocks.NewMockAggregator(ctrl),
		cache:    mocks.NewMockCacheStore(ctrl),
		tracker:  mocks.NewMockTracker(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}

	cfg := config.RefreshConfig{
		ShortInterval:  time.Minute,
		MediumInterval: 5 * time.Minute,
		LongInterval:   30 * time.Minute,
		BatchSize:      5,
		BatchDelay:     0,
	}

	// No jobs store: database bookkeeping is optional
	tm.refresher = refresher.NewRefresher(
		tm.registry, tm.agg, tm.cache, tm.tracker, nil, tm.clock, cfg)
	return tm
}

func refreshTestToken(symbol string) *registry.Token {
	return &registry.Token{
		Symbol:       symbol,
		Chain:        domain.ChainAssetChain,
		Address:      "0x" + symbol,
		Decimals:     18,
		BurnEligible: true,
	}
}

func TestRefreshToken(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	token := refreshTestToken("pht")
	key := token.Key()
	summary := &domain.BurnSummary{TokenName: "pht", Burn24H: 175}
	want := &domain.CacheEntry{Summary: *summary, FromCache: true}

	tm.cache.EXPECT().TryLock(gomock.Any(), key).Return(true, nil)
	tm.agg.EXPECT().ComputeSummary(gomock.Any(), token).Return(summary, nil)
	tm.cache.EXPECT().Put(gomock.Any(), token, summary, domain.IntervalShort).Return(want, nil)
	tm.cache.EXPECT().Unlock(gomock.Any(), key)

	entry, err := tm.refresher.RefreshToken(context.Background(), token, domain.IntervalShort, refresher.TriggerCron)
	require.NoError(t, err)
	assert.Equal(t, want, entry)
}

func TestRefreshToken_InFlight(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	token := refreshTestToken("pht")
	tm.cache.EXPECT().TryLock(gomock.Any(), token.Key()).Return(false, nil)

	// No aggregation and no unlock when the lock is held elsewhere
	_, err := tm.refresher.RefreshToken(context.Background(), token, domain.IntervalShort, refresher.TriggerCron)
	assert.ErrorIs(t, err, domain.ErrRefreshInFlight)
}

func TestRefreshToken_AggregationFailureReleasesLock(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	token := refreshTestToken("pht")
	key := token.Key()
	wantErr := errors.New("rpc exploded")

	tm.cache.EXPECT().TryLock(gomock.Any(), key).Return(true, nil)
	tm.agg.EXPECT().ComputeSummary(gomock.Any(), token).Return(nil, wantErr)
	tm.cache.EXPECT().Unlock(gomock.Any(), key)

	_, err := tm.refresher.RefreshToken(context.Background(), token, domain.IntervalShort, refresher.TriggerCron)
	assert.ErrorIs(t, err, wantErr)
}

func TestEnqueue_DeduplicatesInFlightToken(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()

	token := refreshTestToken("pht")
	key := token.Key()

	started := make(chan struct{})
	release := make(chan struct{})

	tm.cache.EXPECT().TryLock(gomock.Any(), key).Return(true, nil)
	tm.agg.EXPECT().
		ComputeSummary(gomock.Any(), token).
		DoAndReturn(func(context.Context, *registry.Token) (*domain.BurnSummary, error) {
			close(started)
			<-release
			return &domain.BurnSummary{}, nil
		})
	tm.cache.EXPECT().Put(gomock.Any(), token, gomock.Any(), domain.IntervalShort).
		Return(&domain.CacheEntry{}, nil)
	tm.cache.EXPECT().Unlock(gomock.Any(), key)

	assert.True(t, tm.refresher.Enqueue(token, domain.IntervalShort, refresher.TriggerStaleRead))

	// The second submission while the first is still computing is dropped
	<-started
	assert.False(t, tm.refresher.Enqueue(token, domain.IntervalShort, refresher.TriggerStaleRead))

	close(release)
	tm.refresher.Close()
}

func TestFullSweep_FailureIsolation(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(2 * time.Second).AnyTimes()

	tokens := []registry.Token{
		*refreshTestToken("aaa"),
		*refreshTestToken("bad"),
		*refreshTestToken("ccc"),
	}
	tm.registry.EXPECT().BurnEligible().Return(tokens)

	tm.cache.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
	tm.cache.EXPECT().Unlock(gomock.Any(), gomock.Any()).Times(3)
	tm.agg.EXPECT().
		ComputeSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *registry.Token) (*domain.BurnSummary, error) {
			if token.Symbol == "bad" {
				return nil, errors.New("scan failed")
			}
			return &domain.BurnSummary{TokenName: token.Symbol}, nil
		}).
		Times(3)
	// Full sweeps write on the medium cadence
	tm.cache.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), domain.IntervalMedium).
		Return(&domain.CacheEntry{}, nil).
		Times(2)

	report := tm.refresher.FullSweep(context.Background())

	assert.Equal(t, "full", report.Kind)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "assetchain:0xbad", report.Failures[0].Token)
}

func TestSweep_InFlightCountsAsSuccess(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	tm.registry.EXPECT().BurnEligible().Return([]registry.Token{*refreshTestToken("pht")})
	// Another process holds the lock; its result will land in the cache
	tm.cache.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(false, nil)

	report := tm.refresher.FullSweep(context.Background())

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.Failed)
}

func TestActiveSweep(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	pht := refreshTestToken("pht")
	rwa := refreshTestToken("rwa")
	rwa.BurnEligible = false

	tm.tracker.EXPECT().ListActive(gomock.Any()).Return([]domain.ActiveToken{
		{Chain: domain.ChainAssetChain, Address: "0xpht", LastSeen: now},
		{Chain: domain.ChainAssetChain, Address: "0xrwa", LastSeen: now},
		{Chain: domain.ChainAssetChain, Address: "0xgone", LastSeen: now},
	}, nil)

	tm.registry.EXPECT().ResolveForChain(domain.ChainAssetChain, "0xpht").Return(pht, nil)
	tm.registry.EXPECT().ResolveForChain(domain.ChainAssetChain, "0xrwa").Return(rwa, nil)
	tm.registry.EXPECT().ResolveForChain(domain.ChainAssetChain, "0xgone").
		Return(nil, domain.ErrUnknownToken)

	// Only the burn-eligible, resolvable token is swept, on the short cadence
	tm.cache.EXPECT().TryLock(gomock.Any(), pht.Key()).Return(true, nil)
	tm.agg.EXPECT().ComputeSummary(gomock.Any(), pht).Return(&domain.BurnSummary{}, nil)
	tm.cache.EXPECT().Put(gomock.Any(), pht, gomock.Any(), domain.IntervalShort).
		Return(&domain.CacheEntry{}, nil)
	tm.cache.EXPECT().Unlock(gomock.Any(), pht.Key())

	report := tm.refresher.ActiveSweep(context.Background())

	assert.Equal(t, "active", report.Kind)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Succeeded)
}

func TestActiveSweep_TrackerError(t *testing.T) {
	tm := setupTestRefresher(t)
	defer tm.ctrl.Finish()
	defer tm.refresher.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.tracker.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused"))

	report := tm.refresher.ActiveSweep(context.Background())

	assert.Equal(t, "active", report.Kind)
	assert.Zero(t, report.Processed)
}
