package redis

import (
	"context"
	"errors"
	"net"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreakerHook_StartsClosed(t *testing.T) {
	hook := NewCircuitBreakerHook()
	assert.Equal(t, gobreaker.StateClosed, hook.State())
}

func TestCircuitBreakerHook_ProcessSuccess(t *testing.T) {
	hook := NewCircuitBreakerHook()

	next := func(ctx context.Context, cmd goredis.Cmder) error {
		return nil
	}

	cmd := goredis.NewStringCmd(context.Background(), "get", "key")
	err := hook.ProcessHook(next)(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, gobreaker.StateClosed, hook.State())
}

func TestCircuitBreakerHook_NilIsNotAFailure(t *testing.T) {
	hook := NewCircuitBreakerHook()

	next := func(ctx context.Context, cmd goredis.Cmder) error {
		return goredis.Nil
	}

	// Repeated cache misses must not trip the breaker
	for i := 0; i < 10; i++ {
		cmd := goredis.NewStringCmd(context.Background(), "get", "missing")
		cmd.SetErr(goredis.Nil)
		err := hook.ProcessHook(next)(context.Background(), cmd)
		assert.ErrorIs(t, err, goredis.Nil)
	}

	assert.Equal(t, gobreaker.StateClosed, hook.State())
}

func TestCircuitBreakerHook_OpensAfterConsecutiveFailures(t *testing.T) {
	hook := NewCircuitBreakerHook()

	boom := errors.New("connection refused")
	next := func(ctx context.Context, cmd goredis.Cmder) error {
		return boom
	}

	for i := 0; i < 5; i++ {
		cmd := goredis.NewStringCmd(context.Background(), "get", "key")
		err := hook.ProcessHook(next)(context.Background(), cmd)
		assert.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, hook.State())

	// Open breaker fails fast without calling next
	called := false
	blocked := func(ctx context.Context, cmd goredis.Cmder) error {
		called = true
		return nil
	}
	cmd := goredis.NewStringCmd(context.Background(), "get", "key")
	err := hook.ProcessHook(blocked)(context.Background(), cmd)
	assert.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.False(t, called)
}

func TestCircuitBreakerHook_DialFailureCounts(t *testing.T) {
	hook := NewCircuitBreakerHook()

	next := func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	for i := 0; i < 5; i++ {
		_, err := hook.DialHook(next)(context.Background(), "tcp", "localhost:6379")
		assert.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, hook.State())
}

func TestCircuitBreakerHook_PipelineFailureCounts(t *testing.T) {
	hook := NewCircuitBreakerHook()

	next := func(ctx context.Context, cmds []goredis.Cmder) error {
		return errors.New("broken pipe")
	}

	for i := 0; i < 5; i++ {
		err := hook.ProcessPipelineHook(next)(context.Background(), nil)
		assert.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, hook.State())
}
