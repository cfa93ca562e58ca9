package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/utakatalp/football-statistics/internal/log"
)

func TestToSlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, log.ToSlogLevel(log.Debug))
	require.Equal(t, slog.LevelInfo, log.ToSlogLevel(log.Info))
	require.Equal(t, slog.LevelWarn, log.ToSlogLevel(log.Warn))
	require.Equal(t, slog.LevelError, log.ToSlogLevel(log.Error))
	require.Equal(t, slog.LevelError, log.ToSlogLevel("bogus"))
}

func TestNewLoggerFanout(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := log.NewLogger(log.Warn, &primary, &extra)

	logger.Info("dropped")
	logger.Warn("Skipping message", slog.String("error", "malformed message"))

	require.NotContains(t, primary.String(), "dropped")
	require.Contains(t, primary.String(), "Skipping message")
	require.Contains(t, extra.String(), "Skipping message")
}
