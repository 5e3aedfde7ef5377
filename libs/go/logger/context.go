package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const correlationIDContextKey contextKey = "correlationID"

// WithCorrelationID adds a correlation ID to the context
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, correlationID)
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or ""
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns the global logger tagged with the request's correlation ID
func FromContext(ctx context.Context) *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		return Log.With(zap.String("correlation_id", id))
	}
	return Log
}
