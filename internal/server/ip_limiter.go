package server

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	apperrors "github.com/pscheid92/feedbackpulse/internal/errors"
	"golang.org/x/time/rate"
)

// IPRateLimiter limits the rate of requests per client IP.
// Uses token bucket algorithm via golang.org/x/time/rate.
type IPRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rateLimiterEntry
	rate      rate.Limit
	burst     int
	cleanupAt time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a rate limiter with the specified requests per second and burst.
func NewIPRateLimiter(requestsPerSecond float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Limit(requestsPerSecond),
		burst:     burst,
		cleanupAt: time.Now().Add(5 * time.Minute),
	}
}

// Allow checks if a request from the given IP should be allowed.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Periodic cleanup of inactive limiters (every 5 minutes)
	if time.Now().After(l.cleanupAt) {
		l.cleanup()
		l.cleanupAt = time.Now().Add(5 * time.Minute)
	}

	entry, exists := l.limiters[ip]
	if !exists {
		entry = &rateLimiterEntry{
			limiter:  rate.NewLimiter(l.rate, l.burst),
			lastSeen: time.Now(),
		}
		l.limiters[ip] = entry
	}

	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// cleanup removes limiters that haven't been used in 10 minutes.
// Must be called with mu held.
func (l *IPRateLimiter) cleanup() {
	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// ActiveLimiters returns the number of active rate limiters.
func (l *IPRateLimiter) ActiveLimiters() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// throttle wraps a handler with the per-IP limiter. Used on the auth
// endpoints to slow down credential stuffing.
func (s *Server) throttle(limiter *IPRateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return apperrors.TooManyRequestsError("too many requests, slow down")
			}
			return next(c)
		}
	}
}
