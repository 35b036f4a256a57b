package database

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pscheid92/feedbackpulse/internal/metrics"
)

// MetricsTracer implements pgx.QueryTracer to collect database metrics
type MetricsTracer struct{}

var _ pgx.QueryTracer = (*MetricsTracer)(nil)

type queryContextKey struct{}

type queryContext struct {
	startTime time.Time
	queryName string
}

// TraceQueryStart is called at the start of a query
func (t *MetricsTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	qctx := queryContext{
		startTime: time.Now(),
		queryName: extractQueryName(data.SQL),
	}
	return context.WithValue(ctx, queryContextKey{}, qctx)
}

// TraceQueryEnd is called at the end of a query
func (t *MetricsTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	qctx, ok := ctx.Value(queryContextKey{}).(queryContext)
	if !ok {
		return
	}

	metrics.DBQueryDuration.WithLabelValues(qctx.queryName).Observe(time.Since(qctx.startTime).Seconds())

	if data.Err != nil {
		metrics.DBErrorsTotal.WithLabelValues(qctx.queryName).Inc()
	}
}

// extractQueryName extracts a simplified query name from SQL for metric labels.
// Grouping by the leading keyword keeps label cardinality bounded.
func extractQueryName(sql string) string {
	sql = strings.TrimSpace(sql)
	if len(sql) == 0 {
		return "unknown"
	}

	for i, c := range sql {
		if c == ' ' || c == '\n' || c == '\t' {
			if i > 0 {
				return sql[:i]
			}
			break
		}
	}

	if len(sql) > 20 {
		return sql[:20]
	}
	return sql
}
