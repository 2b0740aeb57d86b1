package aggregator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/providers/ethereum"
	"github.com/tokentrack/burn-tracker/internal/ratelimit"
	"github.com/tokentrack/burn-tracker/internal/registry"
)

const (
	// rpcProvider is the rate limit proxy provider name for chain RPC calls
	rpcProvider = "rpc"

	// segmentSize is the block span submitted to the rate limit proxy as one
	// unit; the chain client chunks further internally
	segmentSize = 50000

	// maxRetries bounds the backoff retry loop for rate-limited segments
	maxRetries = 3
)

// Aggregator computes burn summaries from on-chain transfer events
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// ComputeSummary scans the token's burn transfers over the widest
	// reporting window and returns the per-window sums.
	// It is read-only: callers decide what to do with the result.
	ComputeSummary(ctx context.Context, token *registry.Token) (*domain.BurnSummary, error)
}

type aggregator struct {
	chain   ethereum.Client
	limiter ratelimit.Proxy
	clock   adapter.Clock
}

// NewAggregator creates a burn aggregator over a chain client
func NewAggregator(chain ethereum.Client, limiter ratelimit.Proxy, clock adapter.Clock) Aggregator {
	return &aggregator{
		chain:   chain,
		limiter: limiter,
		clock:   clock,
	}
}

// ComputeSummary scans the token's burn transfers and sums them per window
func (a *aggregator) ComputeSummary(ctx context.Context, token *registry.Token) (*domain.BurnSummary, error) {
	started := a.clock.Now()
	now := started

	head, err := ratelimit.Request(ctx, a.limiter, rpcProvider, func(ctx context.Context) (uint64, error) {
		return a.chain.HeadBlock(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: head block: %v", domain.ErrAggregationFailed, err)
	}

	// Only events inside the widest window matter
	maxWindow := domain.Windows[len(domain.Windows)-1].Duration
	cutoff := now.Add(-maxWindow)

	fromBlock, err := a.findStartBlock(ctx, token.StartBlock, head, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve scan range: %v", domain.ErrAggregationFailed, err)
	}

	events, err := a.scanRange(ctx, token.Address, fromBlock, head)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamRateLimited) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrAggregationFailed, err)
	}

	summary := a.sumWindows(token, events, now)
	summary.LastUpdated = now
	summary.LastProcessedBlock = head
	summary.ComputationTime = a.clock.Since(started)

	logger.Info("Computed burn summary",
		zap.String("token", token.Symbol),
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", head),
		zap.Int("events", len(events)),
		zap.Float64("burn_24h", summary.Burn24H),
		zap.Duration("took", summary.ComputationTime),
	)

	return summary, nil
}

// findStartBlock binary-searches for the first block at or after the cutoff
// timestamp, bounded below by the token's deployment block
func (a *aggregator) findStartBlock(ctx context.Context, deployBlock, head uint64, cutoff time.Time) (uint64, error) {
	lo := deployBlock
	if lo == 0 {
		lo = 1
	}
	if lo >= head {
		return lo, nil
	}

	loTime, err := a.blockTime(ctx, lo)
	if err != nil {
		return 0, err
	}
	if !loTime.Before(cutoff) {
		// The whole token history fits inside the window
		return lo, nil
	}

	hi := head
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		midTime, err := a.blockTime(ctx, mid)
		if err != nil {
			return 0, err
		}
		if midTime.Before(cutoff) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, nil
}

func (a *aggregator) blockTime(ctx context.Context, blockNumber uint64) (time.Time, error) {
	return ratelimit.Request(ctx, a.limiter, rpcProvider, func(ctx context.Context) (time.Time, error) {
		return a.chain.BlockTime(ctx, blockNumber)
	})
}

// scanRange walks [fromBlock, toBlock] in proxy-sized segments, retrying
// rate-limited segments with bounded exponential backoff
func (a *aggregator) scanRange(ctx context.Context, contractAddress string, fromBlock, toBlock uint64) ([]domain.BurnEvent, error) {
	var events []domain.BurnEvent

	for segFrom := fromBlock; segFrom <= toBlock; segFrom += segmentSize {
		segTo := segFrom + segmentSize - 1
		if segTo > toBlock {
			segTo = toBlock
		}

		segEvents, err := a.scanSegment(ctx, contractAddress, segFrom, segTo)
		if err != nil {
			return nil, err
		}
		events = append(events, segEvents...)
	}

	return events, nil
}

// scanSegment scans one segment, retrying only rate-limit-class failures
func (a *aggregator) scanSegment(ctx context.Context, contractAddress string, fromBlock, toBlock uint64) ([]domain.BurnEvent, error) {
	var segEvents []domain.BurnEvent

	operation := func() error {
		events, err := ratelimit.Request(ctx, a.limiter, rpcProvider, func(ctx context.Context) ([]domain.BurnEvent, error) {
			return a.chain.ScanBurnTransfers(ctx, contractAddress, fromBlock, toBlock)
		})
		if err != nil {
			if errors.Is(err, domain.ErrUpstreamRateLimited) {
				logger.Warn("Upstream rate limited, backing off",
					zap.String("contract", contractAddress),
					zap.Uint64("from_block", fromBlock),
					zap.Uint64("to_block", toBlock),
					zap.Error(err))
				return err
			}
			return backoff.Permanent(err)
		}
		segEvents = events
		return nil
	}

	// Configure exponential backoff
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 10 * time.Second
	b.RandomizationFactor = 0.5

	policy := backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return segEvents, nil
}

// sumWindows buckets events into every window at least as wide as the event's
// age, summing raw amounts as big.Int and dividing by 10^decimals at the end.
// An event too old for any window is dropped; a timestamp slightly in the
// future (clock skew between us and the chain) counts in all windows.
func (a *aggregator) sumWindows(token *registry.Token, events []domain.BurnEvent, now time.Time) *domain.BurnSummary {
	sums := make([]*big.Int, len(domain.Windows))
	for i := range sums {
		sums[i] = new(big.Int)
	}

	for _, event := range events {
		amount, ok := new(big.Int).SetString(event.Amount, 10)
		if !ok {
			logger.Warn("Skipping burn event with malformed amount",
				zap.String("token", token.Symbol),
				zap.String("tx_hash", event.TxHash),
				zap.String("amount", event.Amount))
			continue
		}

		age := now.Sub(event.Timestamp)
		for i, window := range domain.Windows {
			if age <= window.Duration {
				sums[i].Add(sums[i], amount)
			}
		}
	}

	divisor := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(token.Decimals)), nil))

	values := make([]float64, len(sums))
	for i, sum := range sums {
		quotient := new(big.Float).Quo(new(big.Float).SetInt(sum), divisor)
		values[i], _ = quotient.Float64()
	}

	summary := &domain.BurnSummary{
		TokenName:    token.Symbol,
		TokenAddress: strings.ToLower(token.Address),
	}
	summary.SetWindowValues(values)
	return summary
}
