package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.With(String("volume", "door")).Debug("centroid off viewport",
		Int("index", 3),
		Bool("in_range", true),
		Uint64("checksum", 42),
		Error(errors.New("boom")),
		Any("point", []int{1, 2}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "centroid off viewport", entry.Message)
	require.Equal(t, zapcore.DebugLevel, entry.Level)

	fields := entry.ContextMap()
	require.Equal(t, "door", fields["volume"])
	require.EqualValues(t, 3, fields["index"])
	require.Equal(t, true, fields["in_range"])
	require.EqualValues(t, 42, fields["checksum"])
	require.Equal(t, "boom", fields["error"])
}

func TestLoggerEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	require.False(t, logger.Enabled(LevelDebug))
	require.True(t, logger.Enabled(LevelWarn))

	logger.Debug("dropped")
	logger.Info("kept")
	logger.Warn("kept")
	logger.Error("kept")
	require.Equal(t, 3, logs.Len())
}

func TestNop(t *testing.T) {
	logger := Nop()
	require.False(t, logger.Enabled(LevelError))
	logger.Error("nothing happens")
	require.NoError(t, logger.Sync())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.name))
		})
	}
}
