package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogrusLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger("info", &buf)

	log.Info(context.Background(), "hello", map[string]interface{}{"component": "coffee-shop"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "hello", lines[0]["msg"])
	assert.Equal(t, "coffee-shop", lines[0]["component"])
}

func TestLogrusLogger_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger("info", &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	log.Warn(ctx, "careful", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-123", lines[0]["request_id"])
	assert.Equal(t, "warning", lines[0]["level"])
}

func TestLogrusLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger("warn", &buf)

	log.Debug(context.Background(), "debug", nil)
	log.Info(context.Background(), "info", nil)
	log.Error(context.Background(), "error", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["msg"])
}

func TestLogrusLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newLogrusLogger("chatty", &buf)

	log.Debug(context.Background(), "debug", nil)
	log.Info(context.Background(), "info", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["msg"])
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	ctx := WithRequestID(context.Background(), "abc")

	fields := map[string]interface{}{"k": "v"}
	rec.Info(ctx, "one", fields)
	rec.Error(context.Background(), "two", nil)
	fields["k"] = "changed"

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "v", entries[0].Fields["k"])
	assert.Equal(t, "abc", entries[0].RequestID)
	assert.Len(t, rec.Messages("two"), 1)
}
