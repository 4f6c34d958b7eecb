// Package domain contains the quote and preference types and the errors
// that describe business-level failures.
// Domain errors are transport-agnostic; adapters map them to HTTP status codes.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates input failed a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the operation is not permitted in the current state.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrQuotaExceeded indicates a storage backend refused a value for its size.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ForbiddenError provides context for forbidden errors.
type ForbiddenError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// ProviderError records why a quote provider produced nothing usable.
type ProviderError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with the provider name.
func NewProviderError(provider string, err error) error {
	return &ProviderError{Provider: provider, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
