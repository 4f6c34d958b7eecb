// Package dto holds the request and response shapes of the HTTP API and
// the mapping from domain errors to the error envelope.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g. "NOT_FOUND").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeForbidden     = "FORBIDDEN"
	ErrorCodeUnauthorized  = "UNAUTHORIZED"
	ErrorCodeUnavailable   = "SERVICE_UNAVAILABLE"
	ErrorCodeQuotaExceeded = "QUOTA_EXCEEDED"
	ErrorCodeInternal      = "INTERNAL_ERROR"
	ErrorCodeTimeout       = "TIMEOUT"
	ErrorCodeBadRequest    = "BAD_REQUEST"
)

// NewErrorResponse creates an error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace ID and returns the same response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeQuotaExceeded:
		return http.StatusInsufficientStorage
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps an error to a status code and envelope. Errors that
// are not domain errors become a generic 500 so internals do not leak.
func MapDomainError(err error) (int, *ErrorResponse) {
	var (
		validationErr *domain.ValidationError
		unavailErr    *domain.UnavailableError
	)

	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp

	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, "malformed request body or query")

	case errors.Is(err, ErrInvalidCursor):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, err.Error())

	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation, "request validation failed", ValidationErrors(err))

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsUnavailable(err):
		msg := "a dependency is temporarily unavailable"
		if errors.As(err, &unavailErr) {
			msg = unavailErr.Service + " is temporarily unavailable"
		}

		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, msg)

	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusInsufficientStorage, NewErrorResponse(ErrorCodeQuotaExceeded, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError writes the mapped error response. Internal errors are logged
// with their full text since the client only sees a generic message.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	if resp == nil {
		return
	}

	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithError is HandleError for middleware: it also stops the chain.
func AbortWithError(c *gin.Context, err error) {
	HandleError(c, err)
	c.Abort()
}

// AbortWithCode aborts with an adapter-level error code.
func AbortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the OpenTelemetry trace ID of the request, falling
// back to an explicit "trace_id" context value and then the request ID header.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if v, ok := c.Get("trace_id"); ok {
		s, _ := v.(string)
		return s
	}

	if c.Request != nil {
		return c.Request.Header.Get("X-Request-ID")
	}

	return ""
}
