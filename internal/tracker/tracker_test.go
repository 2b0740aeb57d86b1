package tracker_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/mocks"
	"github.com/tokentrack/burn-tracker/internal/tracker"
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

type testTrackerMocks struct {
	ctrl    *gomock.Controller
	redis   *mocks.MockRedisClient
	clock   *mocks.MockClock
	tracker tracker.Tracker
}

func setupTestTracker(t *testing.T) *testTrackerMocks {
	ctrl := gomock.NewController(t)

	tm := &testTrackerMocks{
		ctrl:  ctrl,
		redis: mocks.NewMockRedisClient(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.tracker = tracker.NewTracker(tm.redis, tm.clock)
	return tm
}

func TestRecordView(t *testing.T) {
	tm := setupTestTracker(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	tm.redis.EXPECT().
		ZAdd(gomock.Any(), "active:tokens", float64(now.Unix()), "assetchain:0xaaaa01").
		Return(nil)
	tm.redis.EXPECT().
		Expire(gomock.Any(), "active:tokens", domain.ACTIVE_WINDOW).
		Return(nil)

	// Address is lowercased into the member key
	tm.tracker.RecordView(context.Background(), domain.ChainAssetChain, "0xAAAA01")
}

func TestRecordView_RedisDownIsSilent(t *testing.T) {
	tm := setupTestTracker(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.redis.EXPECT().
		ZAdd(gomock.Any(), "active:tokens", gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	// Fire-and-forget: no panic, no Expire attempt after a failed ZAdd
	tm.tracker.RecordView(context.Background(), domain.ChainAssetChain, "0xaaaa01")
}

func TestListActive_WindowBounds(t *testing.T) {
	tm := setupTestTracker(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	lastSeen := now.Add(-90 * time.Second)
	tm.redis.EXPECT().
		ZRangeByScoreWithScores(gomock.Any(), "active:tokens",
			float64(now.Add(-domain.ACTIVE_WINDOW).Unix()), float64(now.Unix())).
		Return([]adapter.ScoredMember{
			{Member: "assetchain:0xaaaa01", Score: float64(lastSeen.Unix())},
		}, nil)
	tm.clock.EXPECT().Unix(lastSeen.Unix(), int64(0)).Return(lastSeen)

	active, err := tm.tracker.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, domain.ChainAssetChain, active[0].Chain)
	assert.Equal(t, "0xaaaa01", active[0].Address)
	assert.True(t, lastSeen.Equal(active[0].LastSeen))
}

func TestListActive_SkipsMalformedMembers(t *testing.T) {
	tm := setupTestTracker(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	tm.redis.EXPECT().
		ZRangeByScoreWithScores(gomock.Any(), "active:tokens", gomock.Any(), gomock.Any()).
		Return([]adapter.ScoredMember{
			{Member: "garbage-without-separator", Score: float64(now.Unix())},
			{Member: "ethereum:0xbbbb02", Score: float64(now.Unix())},
		}, nil)
	tm.clock.EXPECT().Unix(now.Unix(), int64(0)).Return(now)

	active, err := tm.tracker.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "0xbbbb02", active[0].Address)
}

func TestListActive_Empty(t *testing.T) {
	tm := setupTestTracker(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.redis.EXPECT().
		ZRangeByScoreWithScores(gomock.Any(), "active:tokens", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	active, err := tm.tracker.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestListActive_RedisError(t *testing.T) {
	tm := setupTestTracker(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.redis.EXPECT().
		ZRangeByScoreWithScores(gomock.Any(), "active:tokens", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := tm.tracker.ListActive(context.Background())
	assert.Error(t, err)
}
