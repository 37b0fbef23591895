// Package logging builds the zap loggers used by syntaxsample.
// Logging is controlled by debug_mode in the config file: when false and the
// command is not verbose, every category gets a no-op logger and nothing is
// written. Per-category toggles under logging.categories silence individual
// categories in debug mode.
// Log output always goes to stderr so stdout carries only program output.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"syntaxsample/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, flag resolution
	CategoryConfig Category = "config" // Config loading
	CategorySample Category = "sample" // Fixture operations
)

// Logger hands out per-category zap loggers gated by the logging config.
type Logger struct {
	base *zap.Logger
	cfg  config.LoggingConfig
}

// New builds a Logger from cfg. verbose forces debug level and turns debug
// mode on; category toggles still apply.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	if verbose {
		cfg.DebugMode = true
	}
	if !cfg.DebugMode {
		return &Logger{base: zap.NewNop(), cfg: cfg}, nil
	}

	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	base, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{base: base, cfg: cfg}, nil
}

// For returns the logger for category c, named after it. Disabled
// categories get a no-op logger.
func (l *Logger) For(c Category) *zap.Logger {
	if l == nil || l.base == nil || !l.cfg.IsCategoryEnabled(string(c)) {
		return zap.NewNop()
	}
	return l.base.Named(string(c))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil || l.base == nil {
		return nil
	}
	return l.base.Sync()
}
