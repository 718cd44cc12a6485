// Package app wires the content sync controller, its collaborators and the observer API into a
// runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	gosync "sync"
	"time"

	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/config"
	"github.com/hopebridge/contentsync/internal/sync"
)

const prefetchBuffer = 4

// ContentSyncApp encapsulates all components needed to run the content sync process
// It provides lifecycle management and graceful shutdown capabilities
type ContentSyncApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server
	logger     *zap.SugaredLogger

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         gosync.WaitGroup
	stopOnce   gosync.Once
}

// Start launches the background components and the initial load, then serves the observer API.
// It blocks until the HTTP server stops or encounters an error.
func (app *ContentSyncApp) Start() error {
	app.startBackground()

	app.logger.Infof("Server listening on %s", app.httpServer.Addr)
	if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

func (app *ContentSyncApp) startBackground() {
	c := app.components

	if c.Prober != nil {
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			c.Prober.Run(app.ctx)
		}()
	}

	if c.Prefetcher != nil {
		ch, unsubscribe := c.Broadcaster.Subscribe(prefetchBuffer)
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			defer unsubscribe()
			c.Prefetcher.Run(app.ctx, ch)
		}()
	}

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		c.Controller.InitializeApp(app.ctx)
	}()
}

// Stop gracefully stops the application with the given timeout.
// The HTTP server drains first, then the controller and background loops stop and the cache
// is closed.
func (app *ContentSyncApp) Stop(timeout time.Duration) error {
	var err error
	app.stopOnce.Do(func() {
		err = app.stop(timeout)
	})
	return err
}

func (app *ContentSyncApp) stop(timeout time.Duration) error {
	app.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server forced to shutdown: %w", err))
	}

	if app.cancelFunc != nil {
		app.cancelFunc()
	}
	app.components.Controller.Close()
	app.wg.Wait()
	app.components.Broadcaster.Close()

	if err := app.components.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close document cache: %w", err))
	}

	app.logger.Info("Server shutdown complete")
	return errors.Join(errs...)
}

// GetConfig returns the application configuration
func (app *ContentSyncApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server (useful for testing to get the actual port)
func (app *ContentSyncApp) GetHTTPServer() *http.Server {
	return app.httpServer
}

// GetController returns the sync controller
func (app *ContentSyncApp) GetController() *sync.Controller {
	return app.components.Controller
}
