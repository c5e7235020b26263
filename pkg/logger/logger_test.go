package logger_test

import (
	"context"
	"gmao/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantErr     bool
		wantDebug   bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment},
		{name: "explicit level overrides environment", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "invalid level", environment: logger.ProductionEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGetAndWithLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	require.Equal(t, customLogger, logger.Get(ctxWithLogger), "Should return logger from context")
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("sensor_id", "abc"))
	logger.Info(ctx, "sensor returned")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "sensor returned", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["sensor_id"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
