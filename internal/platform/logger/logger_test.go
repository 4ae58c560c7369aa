package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the process default logger after a test that
// calls Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level      string
		wantDebug  bool
		wantInfo   bool
		wantWarn   bool
		wantErrors bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarn: true, wantErrors: true},
		{level: "INFO", wantInfo: true, wantWarn: true, wantErrors: true},
		{level: "warn", wantWarn: true, wantErrors: true},
		{level: "error", wantErrors: true},
		{level: "nonsense", wantInfo: true, wantWarn: true, wantErrors: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreDefault(t)
			var buf bytes.Buffer

			l, err := Setup(LoggerConfig{Level: tt.level, Output: &buf})
			require.NoError(t, err)
			require.NotNil(t, l)

			ctx := context.Background()
			assert.Equal(t, tt.wantDebug, l.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, l.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.wantWarn, l.Enabled(ctx, slog.LevelWarn))
			assert.Equal(t, tt.wantErrors, l.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestSetupWritesJSONAndSetsDefault(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	_, err := Setup(LoggerConfig{Level: "info", Output: &buf})
	require.NoError(t, err)

	slog.Info("hello", "component", "test")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["component"])
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	custom := slog.New(slog.NewJSONHandler(&buf, nil)).With("trace_id", "abc")
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, custom, FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	FromContext(ctx).Info("scoped")
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, ok := ParseLevel(" Warning ")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	level, ok = ParseLevel("")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}
