package refresher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/aggregator"
	"github.com/tokentrack/burn-tracker/internal/cache"
	"github.com/tokentrack/burn-tracker/internal/config"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
	"github.com/tokentrack/burn-tracker/internal/registry"
	"github.com/tokentrack/burn-tracker/internal/store"
	"github.com/tokentrack/burn-tracker/internal/store/schema"
	"github.com/tokentrack/burn-tracker/internal/tracker"
)

// Trigger names for job bookkeeping
const (
	TriggerStaleRead   = "stale-read"
	TriggerCron        = "cron"
	TriggerSweepFull   = "sweep-full"
	TriggerSweepActive = "sweep-active"
)

// Refresher recomputes burn summaries and keeps the cache fresh.
// Per-token deduplication is two-layered: a local in-flight set stops
// duplicate submissions inside this process, and the cache store's SetNX lock
// stops concurrent recomputations across processes.
//
//go:generate mockgen -source=refresher.go -destination=../mocks/refresher.go -package=mocks -mock_names=Refresher=MockRefresher
type Refresher interface {
	// RefreshToken recomputes a token synchronously and writes the cache.
	// Returns domain.ErrRefreshInFlight when another recomputation holds the
	// in-flight lock.
	RefreshToken(ctx context.Context, token *registry.Token, class domain.IntervalClass, trigger string) (*domain.CacheEntry, error)

	// Enqueue submits a background recomputation, deduplicated per token.
	// Returns false when the token is already queued or running locally.
	Enqueue(token *registry.Token, class domain.IntervalClass, trigger string) bool

	// FullSweep refreshes every burn-eligible registry token in batches
	FullSweep(ctx context.Context) *domain.SweepReport

	// ActiveSweep refreshes the tokens users are actively viewing
	ActiveSweep(ctx context.Context) *domain.SweepReport

	// Close drains the background pool
	Close()
}

type refresher struct {
	registry registry.TokenRegistry
	agg      aggregator.Aggregator
	cache    cache.Store
	tracker  tracker.Tracker
	jobs     store.Store // optional, nil disables bookkeeping
	clock    adapter.Clock
	cfg      config.RefreshConfig

	pool pond.Pool

	mu       sync.Mutex
	inFlight map[domain.TokenKey]struct{}
}

// NewRefresher creates a refresher. The jobs store may be nil, which disables
// database bookkeeping without affecting the refresh pipeline.
func NewRefresher(
	reg registry.TokenRegistry,
	agg aggregator.Aggregator,
	cacheStore cache.Store,
	trk tracker.Tracker,
	jobs store.Store,
	clock adapter.Clock,
	cfg config.RefreshConfig,
) Refresher {
	poolSize := cfg.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = 4
	}
	queueSize := cfg.WorkerQueueSize
	if queueSize <= 0 {
		queueSize = 256
	}

	return &refresher{
		registry: reg,
		agg:      agg,
		cache:    cacheStore,
		tracker:  trk,
		jobs:     jobs,
		clock:    clock,
		cfg:      cfg,
		pool: pond.NewPool(
			poolSize,
			pond.WithQueueSize(queueSize),
		),
		inFlight: make(map[domain.TokenKey]struct{}),
	}
}

// RefreshToken recomputes a token synchronously and writes the cache
func (r *refresher) RefreshToken(ctx context.Context, token *registry.Token, class domain.IntervalClass, trigger string) (*domain.CacheEntry, error) {
	key := token.Key()

	acquired, err := r.cache.TryLock(ctx, key)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", domain.ErrRefreshInFlight, key)
	}
	defer r.cache.Unlock(ctx, key)

	run := r.startJobRun(ctx, key, trigger)

	summary, err := r.agg.ComputeSummary(ctx, token)
	if err != nil {
		r.finishJobRun(ctx, run, nil, err)
		return nil, err
	}

	entry, err := r.cache.Put(ctx, token, summary, class)
	if err != nil {
		r.finishJobRun(ctx, run, summary, err)
		return nil, err
	}

	r.finishJobRun(ctx, run, summary, nil)
	return entry, nil
}

// Enqueue submits a background recomputation, deduplicated per token
func (r *refresher) Enqueue(token *registry.Token, class domain.IntervalClass, trigger string) bool {
	key := token.Key()

	r.mu.Lock()
	if _, busy := r.inFlight[key]; busy {
		r.mu.Unlock()
		return false
	}
	r.inFlight[key] = struct{}{}
	r.mu.Unlock()

	r.pool.Submit(func() {
		defer func() {
			r.mu.Lock()
			delete(r.inFlight, key)
			r.mu.Unlock()
		}()

		ctx := context.Background()
		if _, err := r.RefreshToken(ctx, token, class, trigger); err != nil {
			if errors.Is(err, domain.ErrRefreshInFlight) {
				logger.Debug("Skipping refresh, already in flight",
					zap.String("token", string(key)))
				return
			}
			logger.ErrorCtx(ctx, err,
				zap.String("token", string(key)),
				zap.String("trigger", trigger))
		}
	})

	return true
}

// FullSweep refreshes every burn-eligible registry token in batches
func (r *refresher) FullSweep(ctx context.Context) *domain.SweepReport {
	tokens := r.registry.BurnEligible()
	targets := make([]*registry.Token, len(tokens))
	for i := range tokens {
		targets[i] = &tokens[i]
	}
	return r.sweep(ctx, "full", targets, domain.IntervalMedium, TriggerSweepFull)
}

// ActiveSweep refreshes the tokens users are actively viewing
func (r *refresher) ActiveSweep(ctx context.Context) *domain.SweepReport {
	active, err := r.tracker.ListActive(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("sweep", "active"))
		return &domain.SweepReport{
			RunID:     ulid.MustNewDefault(r.clock.Now()).String(),
			Kind:      "active",
			StartedAt: r.clock.Now(),
		}
	}

	var targets []*registry.Token
	for _, member := range active {
		token, err := r.registry.ResolveForChain(member.Chain, member.Address)
		if err != nil {
			// Stale or foreign entries in the active set are not sweep failures
			logger.Warn("Skipping unresolvable active token",
				zap.String("chain", string(member.Chain)),
				zap.String("address", member.Address),
				zap.Error(err))
			continue
		}
		if !token.BurnEligible {
			continue
		}
		targets = append(targets, token)
	}

	return r.sweep(ctx, "active", targets, domain.IntervalShort, TriggerSweepActive)
}

// sweep runs targets in fixed-size parallel batches, awaiting each batch and
// pausing between them so a sweep never floods the RPC provider
func (r *refresher) sweep(ctx context.Context, kind string, targets []*registry.Token, class domain.IntervalClass, trigger string) *domain.SweepReport {
	report := &domain.SweepReport{
		RunID:     ulid.MustNewDefault(r.clock.Now()).String(),
		Kind:      kind,
		StartedAt: r.clock.Now(),
	}

	batchSize := r.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 5
	}

	logger.InfoCtx(ctx, "Starting sweep",
		zap.String("run_id", report.RunID),
		zap.String("kind", kind),
		zap.Int("tokens", len(targets)),
		zap.Int("batch_size", batchSize))

	var mu sync.Mutex
	for start := 0; start < len(targets); start += batchSize {
		if ctx.Err() != nil {
			break
		}

		end := min(start+batchSize, len(targets))
		batch := targets[start:end]

		var wg sync.WaitGroup
		for _, token := range batch {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := r.RefreshToken(ctx, token, class, trigger)

				mu.Lock()
				defer mu.Unlock()
				report.Processed++
				if err == nil {
					report.Succeeded++
					return
				}
				if errors.Is(err, domain.ErrRefreshInFlight) {
					// Someone else is computing it; the cache will be fresh
					report.Succeeded++
					return
				}
				report.Failed++
				report.Failures = append(report.Failures, domain.SweepFailure{
					Token: string(token.Key()),
					Error: err.Error(),
				})
			}()
		}
		wg.Wait()

		if end < len(targets) && r.cfg.BatchDelay > 0 {
			if !r.sleep(ctx, r.cfg.BatchDelay) {
				break
			}
		}
	}

	report.Duration = r.clock.Since(report.StartedAt)

	logger.InfoCtx(ctx, "Sweep completed",
		zap.String("run_id", report.RunID),
		zap.String("kind", kind),
		zap.Int("processed", report.Processed),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration))

	r.recordSweep(ctx, report)
	return report
}

// sleep waits for the given duration unless the context is canceled first
func (r *refresher) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-r.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *refresher) startJobRun(ctx context.Context, key domain.TokenKey, trigger string) *schema.JobRun {
	if r.jobs == nil {
		return nil
	}

	run := &schema.JobRun{
		ID:        ulid.MustNewDefault(r.clock.Now()).String(),
		TokenKey:  string(key),
		Trigger:   trigger,
		State:     domain.JobRunning,
		StartedAt: r.clock.Now(),
	}
	if err := r.jobs.CreateJobRun(ctx, run); err != nil {
		logger.WarnCtx(ctx, "Failed to record job run", zap.Error(err))
		return nil
	}
	return run
}

func (r *refresher) finishJobRun(ctx context.Context, run *schema.JobRun, summary *domain.BurnSummary, jobErr error) {
	if r.jobs == nil || run == nil {
		return
	}

	now := r.clock.Now()
	run.FinishedAt = &now
	run.DurationMS = now.Sub(run.StartedAt).Milliseconds()

	if jobErr != nil {
		run.State = domain.JobFailed
		msg := jobErr.Error()
		run.Error = &msg
	} else {
		run.State = domain.JobCompleted
		if summary != nil {
			burn24h := summary.Burn24H
			run.Burn24H = &burn24h
		}
	}

	if err := r.jobs.FinishJobRun(ctx, run); err != nil {
		logger.WarnCtx(ctx, "Failed to finish job run", zap.Error(err))
	}
}

func (r *refresher) recordSweep(ctx context.Context, report *domain.SweepReport) {
	if r.jobs == nil {
		return
	}
	if err := r.jobs.CreateSweepRun(ctx, report); err != nil {
		logger.WarnCtx(ctx, "Failed to record sweep run", zap.Error(err))
	}
}

// Close drains the background pool
func (r *refresher) Close() {
	r.pool.StopAndWait()
}
