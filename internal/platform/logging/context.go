package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Attribute keys added to request-scoped loggers.
const (
	RequestIDKey     = "request_id"
	CorrelationIDKey = "correlation_id"
	TraceIDKey       = "trace_id"
	ProfileKey       = "profile"
)

type ctxKey struct{}

var fallback atomic.Pointer[slog.Logger]

func init() {
	fallback.Store(slog.Default())
}

// Default returns the logger used when a context carries none.
func Default() *slog.Logger {
	return fallback.Load()
}

// SetDefault replaces the fallback logger and the slog package default.
func SetDefault(logger *slog.Logger) {
	fallback.Store(logger)
	slog.SetDefault(logger)
}

// FromContext returns the request-scoped logger, or Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	return Default()
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithAttrs derives a logger carrying attrs and stores it in ctx.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attrs...))
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return WithAttrs(ctx, slog.String(RequestIDKey, id))
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return WithAttrs(ctx, slog.String(CorrelationIDKey, id))
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return WithAttrs(ctx, slog.String(TraceIDKey, id))
}

// WithProfile tags every later entry with the preference profile so one
// user's favorites and schedule changes can be followed through the logs.
func WithProfile(ctx context.Context, profile string) context.Context {
	return WithAttrs(ctx, slog.String(ProfileKey, profile))
}
