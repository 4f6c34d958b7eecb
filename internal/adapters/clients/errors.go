// Package clients provides the instrumented HTTP client used to reach quote
// providers and notification webhooks.
package clients

import (
	"errors"
	"fmt"
)

// Client errors are infrastructure failures. Callers in the acl package
// translate them into domain errors.
var (
	// ErrCircuitOpen is returned while the circuit breaker blocks requests.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure after all attempts are used.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// StatusError is the failure recorded for a 5xx response.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}
