// Package logging builds the zap logger used by the binaries and adapts it to
// the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/fireplan/internal/calculation"
	"github.com/rgehrsitz/fireplan/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger from the logging settings. levelOverride, when
// set, wins over the configured level.
func New(settings config.LoggingSettings, levelOverride string) (*zap.Logger, error) {
	level := settings.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = "info"
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	switch settings.Format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", settings.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if settings.OutputFile != "" {
		if dir := filepath.Dir(settings.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		cfg.OutputPaths = []string{settings.OutputFile}
		cfg.ErrorOutputPaths = []string{settings.OutputFile}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// EngineLogger adapts a sugared zap logger to calculation.Logger
type EngineLogger struct {
	sugar *zap.SugaredLogger
}

var _ calculation.Logger = (*EngineLogger)(nil)

// NewEngineLogger wraps logger; the engine's entries carry component=engine
func NewEngineLogger(logger *zap.Logger) *EngineLogger {
	return &EngineLogger{sugar: logger.Sugar().With("component", "engine")}
}

func (l *EngineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *EngineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *EngineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *EngineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
