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

func TestHandlerStampsRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(requestIDHandler{slog.NewJSONHandler(&buf, nil)})

	ctx := WithRequestID(context.Background(), "req-123")
	l.InfoContext(ctx, "company.created", "id", 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-123", record["request_id"])
	assert.Equal(t, "company.created", record["msg"])
}

func TestHandlerWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(requestIDHandler{slog.NewJSONHandler(&buf, nil)})

	l.InfoContext(context.Background(), "startup")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	_, present := record["request_id"]
	assert.False(t, present)
}
