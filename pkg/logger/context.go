package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// traceIDField is the attribute key request trace ids are logged under.
const traceIDField = "traceID"

// With returns a context carrying a logger enriched with the given fields.
// Handlers pull it back out with From, so request-scoped attributes follow
// the call chain without plumbing a logger argument everywhere.
func With(ctx context.Context, fields ...any) context.Context {
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, loggerKey, l)
}

// WithTraceID attaches a request trace id to the context logger.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return With(ctx, traceIDField, traceID)
}

// From returns the context logger, falling back to the process-wide one
// when the context carries none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
