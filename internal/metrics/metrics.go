// Package metrics defines the Prometheus collectors shared across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feedback pipeline metrics
var (
	// FeedbackSubmissionsTotal tracks accepted feedback submissions by predicted sentiment
	FeedbackSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total accepted feedback submissions by predicted sentiment",
		},
		[]string{"sentiment"},
	)

	// ClassificationDuration tracks sentiment classification latency in seconds
	ClassificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_classification_duration_seconds",
			Help:    "Sentiment classification duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
	)

	// SummaryRequestsTotal tracks sentiment summary computations
	SummaryRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_summary_requests_total",
			Help: "Total sentiment summary computations",
		},
	)
)

// Database metrics
var (
	// DBQueryDuration tracks database query latency in seconds by query type
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks database errors by query type
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database errors by query type",
		},
		[]string{"query"},
	)
)

// Rate limiting metrics
var (
	// RateLimitRejectionsTotal tracks feedback submissions rejected by the rate limiter
	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total feedback submissions rejected by the rate limiter",
		},
	)

	// RateLimiterFailOpenTotal tracks rate-limit checks that failed open because Redis was unavailable
	RateLimiterFailOpenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limiter_fail_open_total",
			Help: "Total rate-limit checks that failed open due to Redis errors",
		},
	)
)
