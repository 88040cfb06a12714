package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureHandler(t *testing.T) {
	logger, handler := NewTestLogger(t)

	logger.Info("import succeeded", slog.Int("records", 45))
	logger.Warn("skipping invalid row")
	logger.Error("import failed")

	assert.Len(t, handler.Records(), 3)
	assert.True(t, handler.ContainsMessage("import succeeded"))
	assert.False(t, handler.ContainsMessage("never logged"))
	assert.Equal(t, 1, handler.CountAtLevel(slog.LevelError))

	records := handler.Records()
	assert.Equal(t, int64(45), records[0].Attrs["records"])

	AssertLogContains(t, handler, slog.LevelWarn, "skipping")
}
