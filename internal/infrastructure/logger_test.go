package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laborcli/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = WithTraceID(ctx, "trace-123")
	assert.Equal(t, "trace-123", GetTraceID(ctx))
}

func TestEnsureTraceID(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	first := GetTraceID(ctx)
	assert.NotEmpty(t, first)

	// An existing trace ID is preserved
	assert.Equal(t, first, GetTraceID(EnsureTraceID(ctx)))
}

func TestGenerateTraceIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateTraceID(), GenerateTraceID())
}

func TestInitializeLoggerWritesJSONToFile(t *testing.T) {
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)

	logPath := filepath.Join(t.TempDir(), "app.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)

	ctx := WithTraceID(context.Background(), "trace-xyz")
	logger.InfoContext(ctx, "hello", slog.String("k", "v"))
	require.NoError(t, CloseLogFile())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, "trace-xyz", entry["trace_id"], "trace id injected from context")
}

func TestInitializeLoggerIsIdempotent(t *testing.T) {
	ResetLoggerForTesting()
	t.Cleanup(ResetLoggerForTesting)

	cfg := config.LoggingConfig{Level: "info", Output: "console"}
	first, err := InitializeLogger(cfg)
	require.NoError(t, err)

	second, err := InitializeLogger(cfg)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestWithComponent(t *testing.T) {
	logger := slog.Default()
	assert.NotNil(t, WithComponent(logger, "test"))
}
