// Package redis provides the Redis client used for submission rate limiting.
// All operations go through a circuit breaker hook so that Redis outages
// degrade the limiter instead of taking feedback submission down with it.
package redis
