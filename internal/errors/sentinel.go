package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrConfiguration indicates an invalid name, kind, method or flag combination.
	// Configuration errors are raised before anything is written.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO indicates a filesystem failure while generating files.
	ErrIO = errors.New("i/o error")

	// ErrNetwork indicates a network failure. Only the update check produces it,
	// and it never escapes to the command layer.
	ErrNetwork = errors.New("network error")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled")
)
