// Package errors provides the error taxonomy for the faspi CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DetailError captures structured error information for user-facing diagnostics.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a configuration error with details.
func NewConfigurationError(message, hint string) error {
	return &DetailError{
		Type:    "invalid configuration",
		Message: message,
		Hint:    hint,
		Cause:   ErrConfiguration,
	}
}

// NewIOError creates an I/O error bound to a filesystem location.
func NewIOError(message, location string, cause error) error {
	return &DetailError{
		Type:     "write failed",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// WrapIO wraps a filesystem error with ErrIO.
func WrapIO(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrIO, err)
}

// WrapNetwork wraps a network error with ErrNetwork.
func WrapNetwork(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNetwork, err)
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
