// Package middleware provides the gin middleware chain of the motivation API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request identifier.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID carries the identifier of a whole transaction
	// spanning several requests, e.g. a client refreshing its daily quote.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// RequestID extracts X-Request-ID or generates a UUID v4, echoes it in the
// response and attaches it to the request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, ContextKeyRequestID, func(ctx context.Context, id string) context.Context {
		return logging.WithRequestID(ContextWithRequestID(ctx, id), id)
	})
}

// CorrelationID does the same as RequestID for X-Correlation-ID, so that the
// ID is propagated to outbound provider calls.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, ContextKeyCorrelationID, func(ctx context.Context, id string) context.Context {
		return logging.WithCorrelationID(ContextWithCorrelationID(ctx, id), id)
	})
}

// GetRequestID returns the request ID or "" when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID or "" when the middleware did not run.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

func idMiddleware(header, key string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(key, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}
