package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records attempt/success/failure counters and a duration
// histogram per service operation. Each module declares its own small Metrics
// interface; this type satisfies all of them.
type OperationMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewOperationMetrics registers operation metrics for one module subsystem.
// A nil registry yields metrics that are never collected, which is what tests
// want.
func NewOperationMetrics(registry *prometheus.Registry, subsystem string) *OperationMetrics {
	m := &OperationMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golftrip",
			Subsystem: subsystem,
			Name:      "operation_attempts_total",
			Help:      "Number of attempted service operations.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golftrip",
			Subsystem: subsystem,
			Name:      "operation_successes_total",
			Help:      "Number of successful service operations.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golftrip",
			Subsystem: subsystem,
			Name:      "operation_failures_total",
			Help:      "Number of failed service operations.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "golftrip",
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Duration of service operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	if registry != nil {
		registry.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	}

	return m
}

func (m *OperationMetrics) RecordOperationAttempt(ctx context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *OperationMetrics) RecordOperationSuccess(ctx context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *OperationMetrics) RecordOperationFailure(ctx context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *OperationMetrics) RecordOperationDuration(ctx context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}
