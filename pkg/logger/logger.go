// Package logger provides a structured logging facility using zap logger.
// It offers context-aware logging capabilities, environment-specific configuration,
// and helper functions for different log levels.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment configures a verbose, human-readable console logger.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment configures a JSON logger at info level.
	ProductionEnvironment = "production"
)

// defaultLogger is used when no logger is found in context. It discards
// everything until Setup is called.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the default logger for the given environment. A non-empty
// level ("debug", "info", "warn", "error") overrides the environment default.
func Setup(environment string, level string) error {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return fmt.Errorf("could not parse log level: %w", err)
		}
		cfg.Level = lvl
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defaultLogger = l

	return nil
}

type key struct{}

// Get retrieves a logger from the provided context.
// If no logger is found in the context, it returns the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger creates a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields creates a new context with a logger that includes the specified fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug checks if the logger in the context is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

// Sync flushes the default logger, ignoring errors.
func Sync() {
	_ = defaultLogger.Sync()
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
