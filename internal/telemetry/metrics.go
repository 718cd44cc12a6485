package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// SyncMetricsMeterName is the name used for the sync controller meter
	SyncMetricsMeterName = "github.com/hopebridge/contentsync/sync"
)

// SyncMetrics holds the OpenTelemetry instruments of the sync controller
type SyncMetrics struct {
	attemptDuration  metric.Float64Histogram
	stateTransitions metric.Int64Counter
	secondaryLoads   metric.Int64Counter
}

// NewSyncMetrics creates a new SyncMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	attemptDuration, err := meter.Float64Histogram(
		"contentsync_attempt_duration_seconds",
		metric.WithDescription("Duration of primary content fetch attempts in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15),
	)
	if err != nil {
		return nil, err
	}

	stateTransitions, err := meter.Int64Counter(
		"contentsync_state_transitions_total",
		metric.WithDescription("Number of connection state transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	secondaryLoads, err := meter.Int64Counter(
		"contentsync_secondary_loads_total",
		metric.WithDescription("Number of secondary collection loads"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		attemptDuration:  attemptDuration,
		stateTransitions: stateTransitions,
		secondaryLoads:   secondaryLoads,
	}, nil
}

// RecordAttempt records the duration and outcome of a fetch attempt
func (m *SyncMetrics) RecordAttempt(ctx context.Context, trigger, outcome string, duration time.Duration) {
	if m == nil || m.attemptDuration == nil {
		return
	}

	m.attemptDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.String("outcome", outcome),
	))
}

// RecordTransition counts a connection state transition
func (m *SyncMetrics) RecordTransition(ctx context.Context, from, to string) {
	if m == nil || m.stateTransitions == nil {
		return
	}

	m.stateTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

// RecordSecondaryLoad counts a secondary collection load
func (m *SyncMetrics) RecordSecondaryLoad(ctx context.Context, collection string, success bool) {
	if m == nil || m.secondaryLoads == nil {
		return
	}

	m.secondaryLoads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collection", collection),
		attribute.Bool("success", success),
	))
}
