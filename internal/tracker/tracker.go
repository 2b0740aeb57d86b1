package tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/adapter"
	"github.com/tokentrack/burn-tracker/internal/domain"
	"github.com/tokentrack/burn-tracker/internal/logger"
)

// activeSetKey is the Redis sorted set holding recently viewed tokens,
// member = "{chain}:{addrLower}", score = last-seen unix seconds
const activeSetKey = "active:tokens"

// Tracker maintains the set of tokens users are actively viewing
//
//go:generate mockgen -source=tracker.go -destination=../mocks/tracker.go -package=mocks -mock_names=Tracker=MockTracker
type Tracker interface {
	// RecordView marks a token as viewed now. Fire-and-forget: failures are
	// logged and never surfaced to the request path.
	RecordView(ctx context.Context, chain domain.Chain, address string)

	// ListActive returns tokens viewed inside the activity window.
	// Expired members are filtered at read time, not eagerly pruned.
	ListActive(ctx context.Context) ([]domain.ActiveToken, error)
}

type tracker struct {
	redis  adapter.RedisClient
	clock  adapter.Clock
	window time.Duration
}

// NewTracker creates an active-token tracker over Redis
func NewTracker(rc adapter.RedisClient, clock adapter.Clock) Tracker {
	return &tracker{
		redis:  rc,
		clock:  clock,
		window: domain.ACTIVE_WINDOW,
	}
}

// RecordView marks a token as viewed now
func (t *tracker) RecordView(ctx context.Context, chain domain.Chain, address string) {
	key := domain.NewTokenKey(chain, address)
	now := t.clock.Now()

	if err := t.redis.ZAdd(ctx, activeSetKey, float64(now.Unix()), string(key)); err != nil {
		logger.WarnCtx(ctx, "Failed to record token view",
			zap.String("token", string(key)), zap.Error(err))
		return
	}

	// Backstop expiry: if nothing touches the set for a full activity window
	// the whole key disappears rather than lingering forever
	if err := t.redis.Expire(ctx, activeSetKey, t.window); err != nil {
		logger.WarnCtx(ctx, "Failed to refresh active set TTL", zap.Error(err))
	}
}

// ListActive returns tokens viewed inside the activity window
func (t *tracker) ListActive(ctx context.Context) ([]domain.ActiveToken, error) {
	now := t.clock.Now()
	min := float64(now.Add(-t.window).Unix())
	max := float64(now.Unix())

	members, err := t.redis.ZRangeByScoreWithScores(ctx, activeSetKey, min, max)
	if err != nil {
		return nil, err
	}

	active := make([]domain.ActiveToken, 0, len(members))
	for _, member := range members {
		chain, address, ok := domain.TokenKey(member.Member).Parse()
		if !ok {
			logger.WarnCtx(ctx, "Skipping malformed active set member",
				zap.String("member", member.Member))
			continue
		}
		active = append(active, domain.ActiveToken{
			Chain:    chain,
			Address:  address,
			LastSeen: t.clock.Unix(int64(member.Score), 0),
		})
	}
	return active, nil
}
