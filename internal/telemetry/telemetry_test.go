package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*Config{nil, {Enabled: false}, {
		Enabled: true,
		Tracing: &TracingConfig{Enabled: false},
		Metrics: &MetricsConfig{Enabled: false},
	}} {
		tel, err := New(context.Background(), WithTelemetryConfig(cfg))
		require.NoError(t, err)

		_, noopTracer := tel.TracerProvider().(tracenoop.TracerProvider)
		assert.True(t, noopTracer)
		_, noopMeter := tel.MeterProvider().(noop.MeterProvider)
		assert.True(t, noopMeter)
		assert.Nil(t, tel.MetricsHandler())
		assert.NoError(t, tel.Shutdown(context.Background()))
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled: true,
		Tracing: &TracingConfig{Enabled: true, Sampling: 2},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid telemetry configuration")
}

func TestNew_TracingEnabled(t *testing.T) {
	t.Parallel()

	tel, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled:  true,
		Insecure: true,
		Tracing:  &TracingConfig{Enabled: true, Sampling: 0.5},
	}))
	require.NoError(t, err)
	defer func() { _ = tel.Shutdown(context.Background()) }()

	_, sdkTracer := tel.TracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, sdkTracer)
	_, noopMeter := tel.MeterProvider().(noop.MeterProvider)
	assert.True(t, noopMeter, "metrics stay disabled")
	assert.Nil(t, tel.MetricsHandler())
}

func TestNew_PrometheusOnly(t *testing.T) {
	t.Parallel()

	tel, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled: true,
		Metrics: &MetricsConfig{Enabled: true, Prometheus: true, DisableOTLP: true},
	}))
	require.NoError(t, err)
	defer func() { _ = tel.Shutdown(context.Background()) }()

	_, sdkMeter := tel.MeterProvider().(*sdkmetric.MeterProvider)
	require.True(t, sdkMeter)
	require.NotNil(t, tel.MetricsHandler())

	metrics, err := NewSyncMetrics(tel.MeterProvider())
	require.NoError(t, err)
	metrics.RecordTransition(context.Background(), "initial", "connected")

	rec := httptest.NewRecorder()
	tel.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "contentsync_state_transitions_total")
}
