package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("json", "info", &buf)

	log.Debug("hidden")
	log.Info("login succeeded", "user_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "login succeeded", entry["msg"])
	assert.EqualValues(t, 7, entry["user_id"])
}

func TestPrettyHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("pretty", "warn", &buf).With("component", "auth").WithGroup("req")

	log.Info("dropped")
	require.Zero(t, buf.Len())

	log.Warn("token rejected", "reason", "expired", slog.Group("client", "ip", "10.0.0.1"))

	line := buf.String()
	assert.Contains(t, line, "token rejected")
	assert.Contains(t, line, "component\033[0m=auth")
	assert.NotContains(t, line, "req.component")
	assert.Contains(t, line, "req.reason")
	assert.Contains(t, line, "req.client.ip")
	assert.Contains(t, line, "=expired")
}

func TestNew_StampsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New("json", "debug", &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	log.InfoContext(ctx, "expense registered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
