// Package logger wires a JSON slog handler that enriches every record with
// the request-scoped identifiers the HTTP middleware stores on the context.
package logger

import (
	"context"
	"log/slog"
	"os"
)

type requestIDKey struct{}

type userIDKey struct{}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		record.Add("request_id", id)
	}

	if id, ok := ctx.Value(userIDKey{}).(string); ok && id != "" {
		record.Add("user_id", id)
	}

	return h.Handler.Handle(ctx, record)
}

// New builds the process-wide logger and installs it as the slog default,
// so service code can log through the slog package functions directly.
func New() *slog.Logger {
	l := slog.New(&Handler{slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})})

	slog.SetDefault(l)

	return l
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}
