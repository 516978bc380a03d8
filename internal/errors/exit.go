package errors

import "errors"

// Exit codes returned by the faspi binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified or I/O error occurred.
	ExitGeneralError = 1

	// ExitConfigurationError indicates an invalid name, kind or flag.
	ExitConfigurationError = 2

	// ExitCancelled indicates the user aborted an interactive prompt.
	ExitCancelled = 130
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError whose code is derived from err.
func NewExitError(err error) *ExitError {
	return &ExitError{Code: ExitCodeFromError(err), Err: err}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrConfiguration):
		return ExitConfigurationError
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigurationError:
		return "Configuration Error"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
