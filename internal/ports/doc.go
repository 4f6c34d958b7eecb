// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for anything that may block
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused
package ports
