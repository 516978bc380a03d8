// Package output provides terminal output utilities for the faspi CLI.
package output

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.Mutex
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, timestamps and caller reporting.
	Verbose bool

	// Timestamps controls whether timestamps are shown. Nil means false.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := cfg.Verbose
	if cfg.Timestamps != nil && !cfg.Verbose {
		timestamps = *cfg.Timestamps
	}

	mu.Lock()
	defer mu.Unlock()
	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogOutput redirects log output, returning the previous logger so callers
// can restore it.
func SetLogOutput(w io.Writer) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := logger
	logger = log.NewWithOptions(w, log.Options{
		Level:           prev.GetLevel(),
		ReportTimestamp: false,
	})
	return prev
}

// RestoreLogger reinstates a logger returned by SetLogOutput.
func RestoreLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetStdout redirects user-facing output and returns the previous writer.
func SetStdout(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := stdout
	stdout = w
	return prev
}

// SetStderr redirects diagnostics written by Details and by loggers built in
// SetupLogging. It returns the previous writer.
func SetStderr(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := stderr
	stderr = w
	return prev
}

// Logger returns the current logger.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger().Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	Print(msg + "\n")
}

// Details prints a multi-line diagnostic to stderr as-is.
func Details(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(stderr, msg)
}
