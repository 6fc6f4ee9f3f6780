package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogger captures structured logs for assertion in tests.
type TestLogger struct {
	mu      sync.RWMutex
	Entries []LogEntry
	Logger  *slog.Logger
	buffer  *bytes.Buffer
}

// LogEntry represents a captured log entry.
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// NewTestLogger creates a logger that captures every entry at debug and above.
func NewTestLogger(t *testing.T) *TestLogger {
	t.Helper()

	tl := &TestLogger{buffer: &bytes.Buffer{}}
	tl.Logger = slog.New(&captureHandler{
		testLogger: tl,
		handler:    slog.NewJSONHandler(tl.buffer, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
	return tl
}

// captureHandler records entries and forwards them to a JSON handler.
type captureHandler struct {
	testLogger *TestLogger
	handler    slog.Handler
	attrs      []slog.Attr
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := LogEntry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]any, len(h.attrs)+r.NumAttrs()),
	}
	for _, a := range h.attrs {
		entry.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value.Any()
		return true
	})

	h.testLogger.mu.Lock()
	h.testLogger.Entries = append(h.testLogger.Entries, entry)
	h.testLogger.mu.Unlock()

	return h.handler.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &captureHandler{
		testLogger: h.testLogger,
		handler:    h.handler.WithAttrs(attrs),
		attrs:      merged,
	}
}

// WithGroup is not used by tink's loggers; groups are flattened.
func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{
		testLogger: h.testLogger,
		handler:    h.handler.WithGroup(name),
		attrs:      h.attrs,
	}
}

// Find returns captured entries whose message contains msg.
func (l *TestLogger) Find(msg string) []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []LogEntry
	for _, e := range l.Entries {
		if strings.Contains(e.Message, msg) {
			out = append(out, e)
		}
	}
	return out
}

// Output returns the JSON lines written so far.
func (l *TestLogger) Output() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buffer.String()
}

// AssertLogged asserts that an entry with msg was logged carrying attr=value.
func (l *TestLogger) AssertLogged(t *testing.T, msg, attr string, value any) {
	t.Helper()

	entries := l.Find(msg)
	if len(entries) == 0 {
		t.Errorf("expected log message %q, got:\n%s", msg, l.Output())
		return
	}
	for _, e := range entries {
		if e.Attrs[attr] == value {
			return
		}
	}
	t.Errorf("log message %q has no %s=%v:\n%s", msg, attr, value, l.Output())
}

// AssertNotLogged asserts that no entry contains msg.
func (l *TestLogger) AssertNotLogged(t *testing.T, msg string) {
	t.Helper()
	if n := len(l.Find(msg)); n > 0 {
		t.Errorf("expected no log message %q, found %d", msg, n)
	}
}
