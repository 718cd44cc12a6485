// Package config provides configuration loading and management for contentsync.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/hopebridge/contentsync/internal/telemetry"
)

const (
	// EnvPrefix is the prefix of environment variables read by the CLI
	EnvPrefix = "CONTENTSYNC"

	// DefaultDataDir holds the document cache, the image cache and the status file
	DefaultDataDir = "~/.contentsync"

	// DefaultObserverAddress is the listen address of the observer API
	DefaultObserverAddress = "127.0.0.1:8080"

	// DefaultRequestTimeout bounds a single HTTP request to the content server
	DefaultRequestTimeout = 30 * time.Second

	// DefaultProbeInterval is how often the network path is probed
	DefaultProbeInterval = 5 * time.Second

	// DefaultProbeTimeout bounds a single reachability probe
	DefaultProbeTimeout = 2 * time.Second

	// DefaultGracePeriod is how long the first attempt may take before reporting offline
	DefaultGracePeriod = 5 * time.Second

	// DefaultFetchTimeout bounds a primary content fetch
	DefaultFetchTimeout = 10 * time.Second

	// DefaultImageMaxRetries is the number of tries for a single image download
	DefaultImageMaxRetries = 3

	// DefaultImageRetryInterval is the initial backoff between image download tries
	DefaultImageRetryInterval = 500 * time.Millisecond
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		expanded, err := homedir.Expand(path)
		if err != nil {
			return fmt.Errorf("failed to expand path: %w", err)
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(expanded)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) && !filepath.IsLocal(realPath) {
			return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Source SourceConfig `yaml:"source"`

	// DataDir defaults to ~/.contentsync
	DataDir string `yaml:"dataDir,omitempty"`

	Observer     *ObserverConfig     `yaml:"observer,omitempty"`
	Reachability *ReachabilityConfig `yaml:"reachability,omitempty"`
	Sync         *SyncConfig         `yaml:"sync,omitempty"`
	Images       *ImageCacheConfig   `yaml:"images,omitempty"`
	Telemetry    *telemetry.Config   `yaml:"telemetry,omitempty"`
}

// SourceConfig defines the content server
type SourceConfig struct {
	// Endpoint is the base URL of the document API, e.g. "https://content.example.org/api"
	Endpoint string `yaml:"endpoint"`

	// RequestTimeout bounds a single HTTP request (e.g. "30s")
	RequestTimeout string `yaml:"requestTimeout,omitempty"`
}

// ObserverConfig defines the observer API listener
type ObserverConfig struct {
	Address string `yaml:"address,omitempty"`
}

// ReachabilityConfig defines how the network path is detected
type ReachabilityConfig struct {
	// Target is the "host:port" probed over TCP. Defaults to the source endpoint's host.
	Target string `yaml:"target,omitempty"`

	Interval string `yaml:"interval,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`

	// Offline disables probing and reports no network path
	Offline bool `yaml:"offline,omitempty"`
}

// SyncConfig defines the controller timings
type SyncConfig struct {
	GracePeriod  string `yaml:"gracePeriod,omitempty"`
	FetchTimeout string `yaml:"fetchTimeout,omitempty"`
}

// ImageCacheConfig defines the on-disk image cache
type ImageCacheConfig struct {
	Enabled       bool   `yaml:"enabled"`
	MaxRetries    uint   `yaml:"maxRetries,omitempty"`
	RetryInterval string `yaml:"retryInterval,omitempty"`
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validateSource(&c.Source); err != nil {
		return err
	}

	if r := c.Reachability; r != nil {
		if err := validateDuration("reachability.interval", r.Interval); err != nil {
			return err
		}
		if err := validateDuration("reachability.timeout", r.Timeout); err != nil {
			return err
		}
		if r.Target != "" {
			if _, _, err := net.SplitHostPort(r.Target); err != nil {
				return fmt.Errorf("reachability.target must be host:port: %w", err)
			}
		}
	}

	if s := c.Sync; s != nil {
		if err := validateDuration("sync.gracePeriod", s.GracePeriod); err != nil {
			return err
		}
		if err := validateDuration("sync.fetchTimeout", s.FetchTimeout); err != nil {
			return err
		}
	}

	if i := c.Images; i != nil {
		if err := validateDuration("images.retryInterval", i.RetryInterval); err != nil {
			return err
		}
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}

func validateSource(src *SourceConfig) error {
	if src.Endpoint == "" {
		return fmt.Errorf("source.endpoint is required")
	}

	u, err := url.Parse(src.Endpoint)
	if err != nil {
		return fmt.Errorf("source.endpoint is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source.endpoint must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("source.endpoint must include a host")
	}

	return validateDuration("source.requestTimeout", src.RequestTimeout)
}

// validateDuration accepts an empty value (meaning the default) or a positive duration
func validateDuration(field, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s must be a valid duration (e.g., '5s', '1m'): %w", field, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %s", field, value)
	}
	return nil
}

func durationOr(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// GetDataDir returns the data directory with "~" expanded
func (c *Config) GetDataDir() (string, error) {
	dir := c.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return filepath.Clean(expanded), nil
}

// GetRequestTimeout returns the HTTP request timeout
func (c *Config) GetRequestTimeout() time.Duration {
	return durationOr(c.Source.RequestTimeout, DefaultRequestTimeout)
}

// GetObserverAddress returns the observer API listen address
func (c *Config) GetObserverAddress() string {
	if c.Observer == nil || c.Observer.Address == "" {
		return DefaultObserverAddress
	}
	return c.Observer.Address
}

// IsOffline reports whether reachability probing is disabled
func (c *Config) IsOffline() bool {
	return c.Reachability != nil && c.Reachability.Offline
}

// GetProbeTarget returns the TCP target probed for reachability, derived from the source
// endpoint when not configured.
func (c *Config) GetProbeTarget() string {
	if c.Reachability != nil && c.Reachability.Target != "" {
		return c.Reachability.Target
	}

	u, err := url.Parse(c.Source.Endpoint)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Port() != "" {
		return u.Host
	}
	port := "443"
	if u.Scheme == "http" {
		port = "80"
	}
	return net.JoinHostPort(u.Hostname(), port)
}

// GetProbeInterval returns the reachability probe interval
func (c *Config) GetProbeInterval() time.Duration {
	if c.Reachability == nil {
		return DefaultProbeInterval
	}
	return durationOr(c.Reachability.Interval, DefaultProbeInterval)
}

// GetProbeTimeout returns the reachability probe dial timeout
func (c *Config) GetProbeTimeout() time.Duration {
	if c.Reachability == nil {
		return DefaultProbeTimeout
	}
	return durationOr(c.Reachability.Timeout, DefaultProbeTimeout)
}

// GetGracePeriod returns the initial attempt grace period
func (c *Config) GetGracePeriod() time.Duration {
	if c.Sync == nil {
		return DefaultGracePeriod
	}
	return durationOr(c.Sync.GracePeriod, DefaultGracePeriod)
}

// GetFetchTimeout returns the primary fetch timeout
func (c *Config) GetFetchTimeout() time.Duration {
	if c.Sync == nil {
		return DefaultFetchTimeout
	}
	return durationOr(c.Sync.FetchTimeout, DefaultFetchTimeout)
}

// ImagesEnabled reports whether images referenced by secondary content are cached
func (c *Config) ImagesEnabled() bool {
	return c.Images != nil && c.Images.Enabled
}

// GetImageMaxRetries returns the number of tries per image download
func (c *Config) GetImageMaxRetries() uint {
	if c.Images == nil || c.Images.MaxRetries == 0 {
		return DefaultImageMaxRetries
	}
	return c.Images.MaxRetries
}

// GetImageRetryInterval returns the initial backoff between image download tries
func (c *Config) GetImageRetryInterval() time.Duration {
	if c.Images == nil {
		return DefaultImageRetryInterval
	}
	return durationOr(c.Images.RetryInterval, DefaultImageRetryInterval)
}
