package app

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/cache"
	"github.com/hopebridge/contentsync/internal/config"
	"github.com/hopebridge/contentsync/internal/events"
	"github.com/hopebridge/contentsync/internal/httpclient"
	"github.com/hopebridge/contentsync/internal/imagecache"
	"github.com/hopebridge/contentsync/internal/observer"
	"github.com/hopebridge/contentsync/internal/reachability"
	"github.com/hopebridge/contentsync/internal/remote"
	"github.com/hopebridge/contentsync/internal/status"
	"github.com/hopebridge/contentsync/internal/sync"
	"github.com/hopebridge/contentsync/internal/telemetry"
)

const (
	// CacheFileName is the SQLite document cache inside the data directory
	CacheFileName = "content.db"
	// ImagesDirName is the image cache directory inside the data directory
	ImagesDirName = "images"

	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 45 * time.Second // a retry or refresh may take the full fetch timeout
	defaultIdleTimeout  = 60 * time.Second
)

// ContentSyncAppOptions is a function that configures the app builder
type ContentSyncAppOptions func(*appConfig) error

// appConfig supports dependency injection for testing while providing production defaults
type appConfig struct {
	config *config.Config
	logger *zap.SugaredLogger

	// Optional component overrides (primarily for testing)
	source  remote.Source
	monitor reachability.Monitor

	// HTTP server options
	address      string
	middlewares  []func(http.Handler) http.Handler
	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration

	dataDir   string
	telemetry *telemetry.Telemetry
}

func baseConfig(opts ...ContentSyncAppOptions) (*appConfig, error) {
	cfg := &appConfig{
		logger:       zap.NewNop().Sugar(),
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
		idleTimeout:  defaultIdleTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.address == "" {
		cfg.address = cfg.config.GetObserverAddress()
	}
	if cfg.dataDir == "" {
		dir, err := cfg.config.GetDataDir()
		if err != nil {
			return nil, err
		}
		cfg.dataDir = dir
	}

	return cfg, nil
}

// NewContentSyncApp builds every component from the configuration. The returned app owns the
// document cache and must be stopped with Stop.
func NewContentSyncApp(ctx context.Context, opts ...ContentSyncAppOptions) (*ContentSyncApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}
	logger := cfg.logger

	if err := os.MkdirAll(cfg.dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := cache.NewSQLiteStore(
		filepath.Join(cfg.dataDir, CacheFileName),
		cache.WithLogger(logger.Named("cache")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open document cache: %w", err)
	}

	// Ensure cleanup happens on error
	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			_ = store.Close()
		}
	}()

	client := httpclient.NewDefaultClient(cfg.config.GetRequestTimeout())

	components, err := buildSyncComponents(ctx, cfg, store, client)
	if err != nil {
		return nil, fmt.Errorf("failed to build sync components: %w", err)
	}

	httpServer, err := buildHTTPServer(cfg, components)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)
	cleanupNeeded = false

	return &ContentSyncApp{
		config:     cfg.config,
		components: components,
		httpServer: httpServer,
		logger:     logger,
		ctx:        appCtx,
		cancelFunc: cancel,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		cfg.config = c
		return nil
	}
}

// WithLogger sets the logger passed to every component
func WithLogger(logger *zap.SugaredLogger) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		if logger != nil {
			cfg.logger = logger
		}
		return nil
	}
}

// WithAddress sets the observer API listen address
func WithAddress(addr string) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares replaces the default HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithDataDirectory overrides the configured data directory
func WithDataDirectory(dir string) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		cfg.dataDir = dir
		return nil
	}
}

// WithSource allows injecting a custom remote source (for testing)
func WithSource(s remote.Source) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		cfg.source = s
		return nil
	}
}

// WithMonitor allows injecting a custom reachability monitor (for testing)
func WithMonitor(m reachability.Monitor) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		cfg.monitor = m
		return nil
	}
}

// WithTelemetry enables metrics and tracing from tel
func WithTelemetry(tel *telemetry.Telemetry) ContentSyncAppOptions {
	return func(cfg *appConfig) error {
		cfg.telemetry = tel
		return nil
	}
}

// buildSyncComponents builds the remote source, the reachability monitor and the controller
func buildSyncComponents(
	ctx context.Context,
	b *appConfig,
	store *cache.SQLiteStore,
	client httpclient.Client,
) (*AppComponents, error) {
	logger := b.logger
	logger.Info("Initializing sync components")

	components := &AppComponents{
		Store:       store,
		Source:      b.source,
		Monitor:     b.monitor,
		Broadcaster: events.NewBroadcaster(),
	}

	if components.Source == nil {
		source, err := remote.NewHTTPSource(client, b.config.Source.Endpoint,
			remote.WithDocumentStore(store),
			remote.WithLogger(logger.Named("remote")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create remote source: %w", err)
		}
		components.Source = source
	}

	if components.Monitor == nil {
		if b.config.IsOffline() {
			logger.Info("Offline mode, network probing disabled")
			components.Monitor = reachability.NewManualMonitor(reachability.StatusUnsatisfied)
		} else {
			prober := reachability.NewProbeMonitor(b.config.GetProbeTarget(),
				reachability.WithInterval(b.config.GetProbeInterval()),
				reachability.WithDialTimeout(b.config.GetProbeTimeout()),
				reachability.WithLogger(logger.Named("reachability")),
			)
			// the controller reads the current status at construction
			prober.Probe(ctx)
			components.Monitor = prober
			components.Prober = prober
		}
	}

	if b.config.ImagesEnabled() {
		images := imagecache.New(filepath.Join(b.dataDir, ImagesDirName), client,
			imagecache.WithRetry(b.config.GetImageMaxRetries(), b.config.GetImageRetryInterval()),
			imagecache.WithLogger(logger.Named("images")),
		)
		components.Prefetcher = imagecache.NewPrefetcher(images, logger.Named("images"))
		logger.Info("Image prefetching enabled")
	}

	ctrlOpts := []sync.Option{
		sync.WithLogger(logger.Named("sync")),
		sync.WithGracePeriod(b.config.GetGracePeriod()),
		sync.WithFetchTimeout(b.config.GetFetchTimeout()),
		sync.WithStatusPersistence(status.NewFileStatusPersistence(b.dataDir)),
		sync.WithBroadcaster(components.Broadcaster),
	}

	if b.telemetry != nil {
		syncMetrics, err := telemetry.NewSyncMetrics(b.telemetry.MeterProvider())
		if err != nil {
			return nil, fmt.Errorf("failed to create sync metrics: %w", err)
		}
		ctrlOpts = append(ctrlOpts,
			sync.WithSyncMetrics(syncMetrics),
			sync.WithTracer(b.telemetry.Tracer(sync.TracerName)),
		)
	}

	components.Controller = sync.New(store, components.Source, components.Monitor, ctrlOpts...)
	logger.Info("Sync components initialized successfully")

	return components, nil
}

// buildHTTPServer builds the observer API server with router and middleware
func buildHTTPServer(b *appConfig, components *AppComponents) (*http.Server, error) {
	logger := b.logger

	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			observer.LoggingMiddleware(logger.Named("http")),
		}
	}

	serverOpts := []observer.ServerOption{
		observer.WithContactSink(components.Source),
		observer.WithLogger(logger.Named("observer")),
	}

	if b.telemetry != nil {
		httpMetrics, err := telemetry.NewHTTPMetrics(b.telemetry.MeterProvider())
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
		}
		// metrics and tracing wrap every request, including failed ones
		b.middlewares = append([]func(http.Handler) http.Handler{
			httpMetrics.Middleware,
			telemetry.TracingMiddleware(b.telemetry.TracerProvider()),
		}, b.middlewares...)

		if h := b.telemetry.MetricsHandler(); h != nil {
			serverOpts = append(serverOpts, observer.WithMetricsHandler(h))
		}
	}
	serverOpts = append(serverOpts, observer.WithMiddlewares(b.middlewares...))

	router := observer.NewServer(components.Controller, serverOpts...)

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	logger.Infow("HTTP server configured", "address", b.address)
	return server, nil
}
