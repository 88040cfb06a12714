// Package testutil provides test helpers shared across packages: a
// log-capturing slog handler and fixture builders for labor records.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogRecord is one captured log entry
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is a slog.Handler that buffers records so tests can assert
// on what was logged.
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewCaptureHandler creates an empty capture handler
func NewCaptureHandler() *CaptureHandler {
	return &CaptureHandler{}
}

// NewTestLogger returns a logger wired to a fresh capture handler
func NewTestLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	t.Helper()
	handler := NewCaptureHandler()
	return slog.New(handler), handler
}

// Handle implements slog.Handler
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// Enabled implements slog.Handler; tests capture every level
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

// WithAttrs implements slog.Handler. Attrs added via With are dropped;
// assertions target per-call attributes.
func (h *CaptureHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

// WithGroup implements slog.Handler
func (h *CaptureHandler) WithGroup(_ string) slog.Handler { return h }

// Records returns a copy of the captured records
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// ContainsMessage reports whether any record's message contains substr
func (h *CaptureHandler) ContainsMessage(substr string) bool {
	for _, r := range h.Records() {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

// CountAtLevel returns the number of records at the given level
func (h *CaptureHandler) CountAtLevel(level slog.Level) int {
	n := 0
	for _, r := range h.Records() {
		if r.Level == level {
			n++
		}
	}
	return n
}

// AssertLogContains fails the test when no record at level contains message
func AssertLogContains(t *testing.T, handler *CaptureHandler, level slog.Level, message string) {
	t.Helper()
	for _, r := range handler.Records() {
		if r.Level == level && strings.Contains(r.Message, message) {
			return
		}
	}
	t.Errorf("expected log at %s containing %q, captured: %v", level, message, handler.Records())
}
