package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDPropagation(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "info", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	id := NewRequestID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), id)
	assert.Equal(t, id, RequestIDFromContext(ctx))

	HTTPRequest(ctx, http.MethodGet, "/api/v1/tools", http.StatusOK, 12*time.Millisecond)

	var line map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, id, line["request_id"])
	assert.Equal(t, "/api/v1/tools", line["path"])
	assert.Equal(t, "INFO", line["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "warn", "text")
	t.Cleanup(func() { Initialize("info", "text") })

	Info("hidden")
	EnterMethod("svc.Op")
	Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "svc.Op")
	assert.Contains(t, out, "shown")
}

func TestFromContextWithoutID(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Same(t, Get(), FromContext(context.Background()))
}
