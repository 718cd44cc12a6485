// Package telemetry provides OpenTelemetry instrumentation for contentsync.
// It supports configurable tracing and metrics with OTLP exporters and an optional
// Prometheus scrape endpoint.
package telemetry

import (
	"errors"
	"fmt"

	"github.com/hopebridge/contentsync/internal/versions"
)

const (
	// DefaultServiceName is the default service name for telemetry
	DefaultServiceName = "contentsync"

	// DefaultEndpoint is the default OTLP endpoint for telemetry
	DefaultEndpoint = "localhost:4318"

	// DefaultSampling is the default trace sampling rate (5%)
	DefaultSampling = 0.05

	// DefaultSyncSampling is the default sampling rate of controller spans
	DefaultSyncSampling = 1.0
)

// Config represents the root telemetry configuration
type Config struct {
	// Enabled controls whether telemetry is enabled globally
	Enabled bool `yaml:"enabled"`

	// ServiceName defaults to "contentsync"
	ServiceName string `yaml:"serviceName,omitempty"`

	// ServiceVersion defaults to the application version
	ServiceVersion string `yaml:"serviceVersion,omitempty"`

	// Environment is reported as deployment.environment, e.g. "staging"
	Environment string `yaml:"environment,omitempty"`

	// ResourceAttributes are added to every span and metric, e.g. {"app.channel": "beta"}
	ResourceAttributes map[string]string `yaml:"resourceAttributes,omitempty"`

	// Endpoint is the OTLP collector endpoint ("host:port")
	Endpoint string `yaml:"endpoint,omitempty"`

	// Insecure allows HTTP connections instead of HTTPS
	Insecure bool `yaml:"insecure,omitempty"`

	Tracing *TracingConfig `yaml:"tracing,omitempty"`
	Metrics *MetricsConfig `yaml:"metrics,omitempty"`
}

// TracingConfig defines tracing-specific configuration
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Sampling is the trace sampling rate (0.0 to 1.0) of observer API requests
	Sampling float64 `yaml:"sampling,omitempty"`

	// SyncSampling is the sampling rate of root spans started by the sync controller
	// (attempts, refreshes, secondary loads). Nil means DefaultSyncSampling.
	SyncSampling *float64 `yaml:"syncSampling,omitempty"`
}

// MetricsConfig defines metrics-specific configuration
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`

	// Prometheus additionally exposes metrics for scraping on the observer's /metrics route
	Prometheus bool `yaml:"prometheus,omitempty"`

	// DisableOTLP turns off the OTLP push exporter, useful with Prometheus only
	DisableOTLP bool `yaml:"disableOtlp,omitempty"`
}

// GetServiceName returns the service name, using default if not specified
func (c *Config) GetServiceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// GetServiceVersion returns the service version, using the build version if not specified
func (c *Config) GetServiceVersion() string {
	if c.ServiceVersion == "" {
		return versions.Version
	}
	return c.ServiceVersion
}

// GetEndpoint returns the endpoint, using default if not specified
func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

// GetSampling returns the sampling ratio. 0 means unset and yields DefaultSampling.
func (c *TracingConfig) GetSampling() float64 {
	if c.Sampling == 0.0 {
		return DefaultSampling
	}
	return c.Sampling
}

// GetSyncSampling returns the sampling ratio of controller spans
func (c *TracingConfig) GetSyncSampling() float64 {
	if c.SyncSampling == nil {
		return DefaultSyncSampling
	}
	return *c.SyncSampling
}

// Validate validates the telemetry configuration
func (c *Config) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	var errs []error

	for k := range c.ResourceAttributes {
		if k == "" {
			errs = append(errs, errors.New("resourceAttributes: empty attribute name"))
			break
		}
	}

	if c.Tracing != nil {
		if err := c.Tracing.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tracing: %w", err))
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Validate validates the tracing configuration
func (c *TracingConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	if c.Sampling < 0 || c.Sampling > 1.0 {
		return fmt.Errorf("sampling must be between 0.0 and 1.0, got %f", c.Sampling)
	}
	if s := c.GetSyncSampling(); s < 0 || s > 1.0 {
		return fmt.Errorf("syncSampling must be between 0.0 and 1.0, got %f", s)
	}
	return nil
}

// Validate validates the metrics configuration
func (c *MetricsConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	if c.DisableOTLP && !c.Prometheus {
		return errors.New("at least one exporter is required: enable prometheus or OTLP")
	}
	return nil
}
