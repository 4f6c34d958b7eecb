package middleware

import "context"

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
	ctxKeyProfile       contextKey = "profile"
)

// RequestIDFromContext returns the request ID stored in ctx, or "".
// Outbound clients use it to propagate the ID to quote providers.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyCorrelationID)
}

// ProfileFromContext returns the preference profile stored in ctx, or "".
func ProfileFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyProfile)
}

// ContextWithRequestID stores a request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// ContextWithProfile stores the preference profile in ctx.
func ContextWithProfile(ctx context.Context, profile string) context.Context {
	return context.WithValue(ctx, ctxKeyProfile, profile)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}

	if v, ok := ctx.Value(key).(string); ok {
		return v
	}

	return ""
}
