package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

// CircuitBreakerHook implements redis.Hook to add circuit breaker protection
// to all Redis operations. When Redis fails repeatedly, the breaker opens and
// commands fail fast instead of piling up on a dead connection.
type CircuitBreakerHook struct {
	cb *gobreaker.CircuitBreaker
}

var _ goredis.Hook = (*CircuitBreakerHook)(nil)

// NewCircuitBreakerHook creates a circuit breaker hook. The breaker trips
// after 5 consecutive failures and probes again after 30 seconds.
func NewCircuitBreakerHook() *CircuitBreakerHook {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				"component", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &CircuitBreakerHook{cb: cb}
}

// DialHook wraps connection establishment with the circuit breaker.
func (h *CircuitBreakerHook) DialHook(next goredis.DialHook) goredis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		result, err := h.cb.Execute(func() (any, error) {
			return next(ctx, network, addr)
		})
		if err != nil {
			return nil, fmt.Errorf("circuit breaker dial failed: %w", err)
		}
		return result.(net.Conn), nil
	}
}

// ProcessHook wraps command execution with the circuit breaker.
// redis.Nil is a cache miss, not a failure, and does not count against
// the breaker.
func (h *CircuitBreakerHook) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		_, err := h.cb.Execute(func() (any, error) {
			if err := next(ctx, cmd); err != nil && !errors.Is(err, goredis.Nil) {
				return nil, err
			}
			return nil, nil
		})
		if err != nil && !errors.Is(err, goredis.Nil) {
			return fmt.Errorf("circuit breaker process failed: %w", err)
		}
		return cmd.Err()
	}
}

// ProcessPipelineHook wraps pipeline execution with the circuit breaker.
func (h *CircuitBreakerHook) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []goredis.Cmder) error {
		_, err := h.cb.Execute(func() (any, error) {
			return nil, next(ctx, cmds)
		})
		if err != nil {
			return fmt.Errorf("circuit breaker pipeline failed: %w", err)
		}
		return nil
	}
}

// State returns the current breaker state (for testing/monitoring).
func (h *CircuitBreakerHook) State() gobreaker.State {
	return h.cb.State()
}
