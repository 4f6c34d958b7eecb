package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/clients"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// ErrorResponse is an error body returned by a provider. Providers disagree
// on the layout, so the nested, flat and status-message forms are all read.
type ErrorResponse struct {
	Error         ErrorDetail `json:"error"`
	Message       string      `json:"message,omitempty"`
	StatusMessage string      `json:"statusMessage,omitempty"`
}

// ErrorDetail is the nested form of an error body.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetMessage returns the first non-empty message of the supported layouts.
func (e *ErrorResponse) GetMessage() string {
	switch {
	case e.Error.Message != "":
		return e.Error.Message
	case e.Message != "":
		return e.Message
	default:
		return e.StatusMessage
	}
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty, not JSON, or carries no message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed exchange with a provider to a domain error.
// clientErr takes precedence; otherwise the status code of resp decides.
// A 2xx response maps to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil {
		message = errResp.GetMessage()
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, operation)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValidationError("", message)

	case http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)

	case http.StatusUnauthorized:
		return domain.NewForbiddenError(operation, "authentication required")

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")

	default:
		if status >= http.StatusInternalServerError {
			return domain.NewUnavailableError(serviceName, message)
		}

		return domain.NewValidationError("", message)
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
