// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shukran_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shukran_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// EntriesCreated counts gratitude entries created.
	EntriesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shukran_entries_created_total",
		Help: "Total number of gratitude entries created",
	})

	// DailyLimitRejections counts writes rejected by the one-entry-per-day rule.
	DailyLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shukran_daily_limit_rejections_total",
		Help: "Total number of entry creations rejected by the daily limit",
	})

	// ShareToggles counts share and unshare transitions.
	ShareToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shukran_share_toggles_total",
		Help: "Total number of share state transitions",
	}, []string{"direction"})

	// LikeToggles counts like and unlike transitions on public entries.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shukran_like_toggles_total",
		Help: "Total number of like state transitions",
	}, []string{"direction"})

	// OrphansReconciled counts public entries removed by the reconciliation sweep.
	OrphansReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shukran_orphans_reconciled_total",
		Help: "Total number of orphaned public entries deleted by reconciliation",
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
