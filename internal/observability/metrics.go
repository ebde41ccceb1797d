// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CollabTransitions counts collaboration request status transitions by
	// outcome ("committed", "conflict", "forbidden", "error").
	CollabTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_collab_transitions_total",
		Help: "Total collaboration request transition attempts by target status and outcome",
	}, []string{"to_status", "outcome"})

	// AuditRecords counts committed audit records by entity and action.
	AuditRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_audit_records_total",
		Help: "Total audit records written by entity and action",
	}, []string{"entity", "action"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillswap_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
