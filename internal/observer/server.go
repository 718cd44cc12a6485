// Package observer exposes the sync controller to UI clients over HTTP.
package observer

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ServerOption configures the observer API server
type ServerOption func(*serverConfig)

type serverConfig struct {
	middlewares    []func(http.Handler) http.Handler
	contact        ContactSink
	metricsHandler http.Handler
	logger         *zap.SugaredLogger
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithContactSink enables POST /v1/contact
func WithContactSink(sink ContactSink) ServerOption {
	return func(cfg *serverConfig) {
		cfg.contact = sink
	}
}

// WithMetricsHandler mounts h at /metrics
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metricsHandler = h
	}
}

// WithLogger sets the logger used by handlers
func WithLogger(logger *zap.SugaredLogger) ServerOption {
	return func(cfg *serverConfig) {
		cfg.logger = logger
	}
}

// NewServer creates the router serving ctrl
func NewServer(ctrl Controller, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	h := &handlers{ctrl: ctrl, contact: cfg.contact, logger: cfg.logger}

	r.Get("/health", healthHandler)
	r.Get("/readiness", h.readiness)
	r.Get("/version", versionHandler)
	if cfg.metricsHandler != nil {
		r.Handle("/metrics", cfg.metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", h.getState)
		r.Get("/content", h.getContent)
		r.Post("/retry", h.retry)
		r.Post("/refresh", h.refresh)
		r.Post("/foreground", h.foreground)
		if cfg.contact != nil {
			r.Post("/contact", h.submitContact)
		}
	})

	return r
}

// LoggingMiddleware logs HTTP requests at debug level
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debugw("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
