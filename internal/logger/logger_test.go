package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-chef/backend/config"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Env: config.Production, LogLevel: slog.LevelInfo})

	ctx := WithRequestID(context.Background(), "req-123")
	log.InfoContext(ctx, "recipe generated", "kind", "recipe")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "recipe generated", record["msg"])
	assert.Equal(t, "recipe", record["kind"])
	assert.Equal(t, "req-123", record["request_id"])
}

func TestNew_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Env: config.Development, LogLevel: slog.LevelDebug})

	log.Debug("starting", "port", "8080")

	assert.Contains(t, buf.String(), "msg=starting")
	assert.Contains(t, buf.String(), "port=8080")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Env: config.Development, LogLevel: slog.LevelWarn})

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextHandler_WithAttrsKeepsEnrichment(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Env: config.Production, LogLevel: slog.LevelInfo}).With("component", "api")

	log.InfoContext(WithRequestID(context.Background(), "abc"), "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "api", record["component"])
	assert.Equal(t, "abc", record["request_id"])
}

func TestRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
