package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_AllowsBurst(t *testing.T) {
	limiter := NewIPRateLimiter(1, 5)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d within burst should be allowed", i+1)
	}

	assert.False(t, limiter.Allow("10.0.0.1"), "request over burst should be rejected")
}

func TestIPRateLimiter_PerIPIsolation(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// A different IP has its own bucket
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestIPRateLimiter_TracksActiveLimiters(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")
	limiter.Allow("10.0.0.3")

	assert.Equal(t, 3, limiter.ActiveLimiters())
}
