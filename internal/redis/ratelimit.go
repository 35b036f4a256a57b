package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/feedbackpulse/internal/metrics"
	goredis "github.com/redis/go-redis/v9"
)

// SubmissionLimiter implements fixed-window rate limiting for feedback
// submissions, keyed per user. A window of w seconds allows at most limit
// submissions; the counter key expires with the window.
type SubmissionLimiter struct {
	rdb    *goredis.Client
	clock  clockwork.Clock
	limit  int
	window time.Duration
}

// NewSubmissionLimiter creates a submission rate limiter.
// limit: maximum submissions per window
// window: window length
func NewSubmissionLimiter(rdb *goredis.Client, clock clockwork.Clock, limit int, window time.Duration) *SubmissionLimiter {
	return &SubmissionLimiter{
		rdb:    rdb,
		clock:  clock,
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the user may submit feedback right now.
//
// Redis errors fail open: a broken limiter must not block feedback, so the
// submission is allowed and the failure is counted in metrics.
func (l *SubmissionLimiter) Allow(ctx context.Context, userID uuid.UUID) bool {
	bucket := l.clock.Now().UnixMilli() / l.window.Milliseconds()
	key := fmt.Sprintf("rate_limit:submissions:%s:%d", userID, bucket)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("Rate limiter unavailable, allowing submission",
			"user_id", userID,
			"error", err,
		)
		metrics.RateLimiterFailOpenTotal.Inc()
		return true
	}

	if count == 1 {
		// First hit in this window owns the expiry. Keep the key slightly
		// longer than the window so late readers still see it.
		if err := l.rdb.Expire(ctx, key, l.window+time.Second).Err(); err != nil {
			slog.Warn("Failed to set rate limit key expiry", "key", key, "error", err)
		}
	}

	if count > int64(l.limit) {
		metrics.RateLimitRejectionsTotal.Inc()
		return false
	}
	return true
}
