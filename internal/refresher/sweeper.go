package refresher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/logger"
)

// Sweeper is a long-running background loop that triggers sweeps on a fixed
// cadence
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop.
	// This is a blocking call that runs until the context is canceled.
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// sweepFunc runs one sweep; the bool result is unused beyond logging
type sweepFunc func(ctx context.Context)

type loopSweeper struct {
	name     string
	interval time.Duration
	run      sweepFunc
	clock    adapter.Clock

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewFullSweeper creates the full-registry sweep loop
func NewFullSweeper(r Refresher, clock adapter.Clock, interval time.Duration) Sweeper {
	return newLoopSweeper("full-sweeper", interval, clock, func(ctx context.Context) {
		r.FullSweep(ctx)
	})
}

// NewActiveSweeper creates the active-token sweep loop
func NewActiveSweeper(r Refresher, clock adapter.Clock, interval time.Duration) Sweeper {
	return newLoopSweeper("active-sweeper", interval, clock, func(ctx context.Context) {
		r.ActiveSweep(ctx)
	})
}

func newLoopSweeper(name string, interval time.Duration, clock adapter.Clock, run sweepFunc) Sweeper {
	return &loopSweeper{
		name:      name,
		interval:  interval,
		run:       run,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *loopSweeper) Name() string {
	return s.name
}

// Start begins the sweeper's main loop
func (s *loopSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper %s already running", s.name)
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting sweeper",
		zap.String("sweeper", s.name),
		zap.Duration("interval", s.interval))

	// Run once immediately so a fresh deployment has data before the first
	// tick
	s.run(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sweeper stopping due to context cancellation",
				zap.String("sweeper", s.name))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Sweeper stop requested", zap.String("sweeper", s.name))
			return nil
		case <-s.clock.After(s.interval):
			s.run(ctx)
		}
	}
}

// Stop gracefully stops the sweeper
func (s *loopSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", s.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout",
			zap.String("sweeper", s.name))
		return ctx.Err()
	}
}
