package aggregator_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentrack/burn-tracker/internal/aggregator"
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

type testAggregatorMocks struct {
	ctrl  *gomock.Controller
	chain *mocks.MockChainClient
	clock *mocks.MockClock
	agg   aggregator.Aggregator
}

func setupTestAggregator(t *testing.T) *testAggregatorMocks {
	ctrl := gomock.NewController(t)

	tm := &testAggregatorMocks{
		ctrl:  ctrl,
		chain: mocks.NewMockChainClient(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	// A nil proxy executes requests directly, keeping the tests focused on
	// aggregation logic
	tm.agg = aggregator.NewAggregator(tm.chain, nil, tm.clock)
	return tm
}

func testToken() *registry.Token {
	return &registry.Token{
		Symbol:       "PHT",
		Name:         "Phoenix Token",
		Chain:        domain.ChainAssetChain,
		Address:      "0xAAAA000000000000000000000000000000000001",
		Decimals:     18,
		StartBlock:   100,
		BurnEligible: true,
	}
}

func TestComputeSummary_WindowBucketing(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(50 * time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(1000), nil)
	// The deployment block is inside the widest window, so the whole token
	// history is scanned without a binary search
	tm.chain.EXPECT().BlockTime(gomock.Any(), uint64(100)).Return(now.Add(-time.Hour), nil)

	events := []domain.BurnEvent{
		{TokenAddress: "0xaaaa01", BlockNumber: 990, Timestamp: now.Add(-2 * time.Minute), Amount: "100000000000000000000", TxHash: "0x1"},
		{TokenAddress: "0xaaaa01", BlockNumber: 900, Timestamp: now.Add(-20 * time.Minute), Amount: "50000000000000000000", TxHash: "0x2"},
		{TokenAddress: "0xaaaa01", BlockNumber: 500, Timestamp: now.Add(-2 * time.Hour), Amount: "25000000000000000000", TxHash: "0x3"},
	}
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
		Return(events, nil)

	summary, err := tm.agg.ComputeSummary(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.Burn5Min)
	assert.Equal(t, 100.0, summary.Burn15Min)
	assert.Equal(t, 150.0, summary.Burn30Min)
	assert.Equal(t, 150.0, summary.Burn1H)
	assert.Equal(t, 175.0, summary.Burn3H)
	assert.Equal(t, 175.0, summary.Burn6H)
	assert.Equal(t, 175.0, summary.Burn12H)
	assert.Equal(t, 175.0, summary.Burn24H)

	assert.Equal(t, "PHT", summary.TokenName)
	assert.Equal(t, "0xaaaa000000000000000000000000000000000001", summary.TokenAddress)
	assert.Equal(t, now, summary.LastUpdated)
	assert.Equal(t, uint64(1000), summary.LastProcessedBlock)
	assert.Equal(t, 50*time.Millisecond, summary.ComputationTime)
}

func TestComputeSummary_Monotonic(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(1000), nil)
	tm.chain.EXPECT().BlockTime(gomock.Any(), uint64(100)).Return(now.Add(-time.Hour), nil)

	// Events scattered across every window boundary region
	events := []domain.BurnEvent{
		{Timestamp: now.Add(-time.Minute), Amount: "1000000000000000000", TxHash: "0x1"},
		{Timestamp: now.Add(-10 * time.Minute), Amount: "2000000000000000000", TxHash: "0x2"},
		{Timestamp: now.Add(-25 * time.Minute), Amount: "3000000000000000000", TxHash: "0x3"},
		{Timestamp: now.Add(-50 * time.Minute), Amount: "4000000000000000000", TxHash: "0x4"},
		{Timestamp: now.Add(-2 * time.Hour), Amount: "5000000000000000000", TxHash: "0x5"},
		{Timestamp: now.Add(-5 * time.Hour), Amount: "6000000000000000000", TxHash: "0x6"},
		{Timestamp: now.Add(-10 * time.Hour), Amount: "7000000000000000000", TxHash: "0x7"},
		{Timestamp: now.Add(-20 * time.Hour), Amount: "8000000000000000000", TxHash: "0x8"},
	}
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
		Return(events, nil)

	summary, err := tm.agg.ComputeSummary(context.Background(), token)
	require.NoError(t, err)

	values := summary.WindowValues()
	for i := 1; i < len(values); i++ {
		assert.GreaterOrEqual(t, values[i], values[i-1],
			"window %s must not shrink below %s",
			domain.Windows[i].Name, domain.Windows[i-1].Name)
	}
	assert.Equal(t, 36.0, summary.Burn24H)
}

func TestComputeSummary_NoEvents(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(1000), nil)
	tm.chain.EXPECT().BlockTime(gomock.Any(), uint64(100)).Return(now.Add(-time.Hour), nil)
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
		Return(nil, nil)

	summary, err := tm.agg.ComputeSummary(context.Background(), token)
	require.NoError(t, err)

	for i, value := range summary.WindowValues() {
		assert.Zero(t, value, "window %s", domain.Windows[i].Name)
	}
}

func TestComputeSummary_MalformedAmountSkipped(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(1000), nil)
	tm.chain.EXPECT().BlockTime(gomock.Any(), uint64(100)).Return(now.Add(-time.Hour), nil)

	events := []domain.BurnEvent{
		{Timestamp: now.Add(-time.Minute), Amount: "not-a-number", TxHash: "0xbad"},
		{Timestamp: now.Add(-time.Minute), Amount: "3000000000000000000", TxHash: "0xok"},
	}
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
		Return(events, nil)

	summary, err := tm.agg.ComputeSummary(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.Burn24H)
}

func TestComputeSummary_BinarySearchesScanStart(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()
	token.StartBlock = 1

	const head = uint64(100000)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(head, nil)

	// One-second block times: block n was mined (head-n) seconds ago. The
	// 24h cutoff therefore falls at block head-86400 = 13600.
	tm.chain.EXPECT().
		BlockTime(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, blockNumber uint64) (time.Time, error) {
			return now.Add(-time.Duration(head-blockNumber) * time.Second), nil
		}).
		AnyTimes()

	// The scan must start at the cutoff block, split into proxy segments
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(13600), uint64(63599)).
		Return(nil, nil)
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(63600), head).
		Return(nil, nil)

	_, err := tm.agg.ComputeSummary(context.Background(), token)
	require.NoError(t, err)
}

func TestComputeSummary_HeadBlockError(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(0), errors.New("connection refused"))

	_, err := tm.agg.ComputeSummary(context.Background(), testToken())
	assert.ErrorIs(t, err, domain.ErrAggregationFailed)
}

func TestComputeSummary_ScanErrorIsPermanent(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(1000), nil)
	tm.chain.EXPECT().BlockTime(gomock.Any(), uint64(100)).Return(now.Add(-time.Hour), nil)

	// A non-rate-limit failure must not be retried
	tm.chain.EXPECT().
		ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
		Return(nil, errors.New("execution reverted")).
		Times(1)

	_, err := tm.agg.ComputeSummary(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrAggregationFailed)
}

func TestComputeSummary_RateLimitedSegmentRetried(t *testing.T) {
	tm := setupTestAggregator(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := testToken()

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()

	tm.chain.EXPECT().HeadBlock(gomock.Any()).Return(uint64(1000), nil)
	tm.chain.EXPECT().BlockTime(gomock.Any(), uint64(100)).Return(now.Add(-time.Hour), nil)

	throttled := fmt.Errorf("%w: 429 too many requests", domain.ErrUpstreamRateLimited)
	gomock.InOrder(
		tm.chain.EXPECT().
			ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
			Return(nil, throttled),
		tm.chain.EXPECT().
			ScanBurnTransfers(gomock.Any(), token.Address, uint64(100), uint64(1000)).
			Return([]domain.BurnEvent{
				{Timestamp: now.Add(-time.Minute), Amount: "1000000000000000000", TxHash: "0x1"},
			}, nil),
	)

	summary, err := tm.agg.ComputeSummary(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.Burn24H)
}
