package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/logger"
)

func TestHandler_AddsContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "user-1")

	l.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "user-1", record["user_id"])

	// Records without the context values stay unadorned.
	buf.Reset()
	l.Info("plain")

	var plain map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &plain))
	require.NotContains(t, plain, "request_id")
}
