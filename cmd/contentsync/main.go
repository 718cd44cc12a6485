// Package main is the entry point for contentsync.
package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hopebridge/contentsync/cmd/contentsync/app"
	"github.com/hopebridge/contentsync/internal/config"
)

// getLogLevel parses the CONTENTSYNC_LOG_LEVEL environment variable and returns the corresponding level.
// Falls back to LOG_LEVEL. Defaults to info if neither is set or if the value is invalid.
func getLogLevel() zapcore.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	if levelStr == "" {
		return zapcore.InfoLevel
	}

	level, err := zapcore.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		zap.S().Warnw("Invalid LOG_LEVEL, using INFO", "value", levelStr)
		return zapcore.InfoLevel
	}
	return level
}

func main() {
	level := zap.NewAtomicLevelAt(getLogLevel())

	// Logs go to stderr to keep stdout clean for commands that output data
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := app.NewRootCmd(level).Execute(); err != nil {
		os.Exit(1)
	}
}
