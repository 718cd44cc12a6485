package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	contentapp "github.com/hopebridge/contentsync/internal/app"
	"github.com/hopebridge/contentsync/internal/config"
	"github.com/hopebridge/contentsync/internal/telemetry"
)

const (
	defaultGracefulTimeout = 30 * time.Second
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sync controller and the observer API",
		Long: `Run loads cached content, connects to the content server and serves the connection
state on the observer API until interrupted.

Settings come from a configuration file (--config) or, without one, from flags:
--endpoint is then required.`,
		RunE: runSync,
	}

	cmd.Flags().String("config", "", "Path to configuration file (YAML format)")
	cmd.Flags().String("endpoint", "", "Content server endpoint")
	cmd.Flags().String("address", "", "Observer API listen address")
	cmd.Flags().String("data-dir", "", "Directory holding the caches and the status file")
	cmd.Flags().Bool("offline", false, "Start without a network path")

	for _, name := range []string{"config", "endpoint", "address", "data-dir", "offline"} {
		if err := viper.BindPFlag("run."+name, cmd.Flags().Lookup(name)); err != nil {
			zap.S().Fatalf("Failed to bind %s flag: %v", name, err)
		}
	}

	return cmd
}

// loadRunConfig loads the configuration file when given and applies the flag overrides
func loadRunConfig() (*config.Config, error) {
	var cfg *config.Config

	if path := viper.GetString("run.config"); path != "" {
		loaded, err := config.LoadConfig(config.WithConfigPath(path))
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
	}

	if endpoint := viper.GetString("run.endpoint"); endpoint != "" {
		cfg.Source.Endpoint = endpoint
	}
	if addr := viper.GetString("run.address"); addr != "" {
		if cfg.Observer == nil {
			cfg.Observer = &config.ObserverConfig{}
		}
		cfg.Observer.Address = addr
	}
	if dir := viper.GetString("run.data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if viper.GetBool("run.offline") {
		if cfg.Reachability == nil {
			cfg.Reachability = &config.ReachabilityConfig{}
		}
		cfg.Reachability.Offline = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runSync(_ *cobra.Command, _ []string) error {
	logger := zap.S()

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	logger.Infow("Loaded configuration", "endpoint", cfg.Source.Endpoint, "offline", cfg.IsOffline())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("Failed to shutdown telemetry", "error", err)
		}
	}()

	syncApp, err := contentapp.NewContentSyncApp(ctx,
		contentapp.WithConfig(cfg),
		contentapp.WithLogger(logger),
		contentapp.WithTelemetry(tel),
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- syncApp.Start()
	}()

	var startErr error
	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case startErr = <-errChan:
	}

	if err := syncApp.Stop(defaultGracefulTimeout); err != nil {
		logger.Errorw("Shutdown failed", "error", err)
		return errors.Join(startErr, err)
	}
	return startErr
}
