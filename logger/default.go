package logger

import (
	"sync"

	"github.com/philipp01105/testlog/core"
)

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

func init() {
	defaultRegistry = NewRegistry(ConfigFromEnv())
}

// DefaultRegistry returns the process-wide registry
func DefaultRegistry() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefaultRegistry replaces the process-wide registry. Loggers already
// handed out by the previous registry keep working.
func SetDefaultRegistry(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Get returns the named logger from the default registry
func Get(name string, dest Destination) (*Logger, error) {
	return DefaultRegistry().Get(name, dest)
}

// Default returns the root console logger of the default registry
func Default() *Logger {
	// The console destination cannot fail to open.
	l, _ := DefaultRegistry().Get(rootName, Console())
	return l
}

// Package-level convenience functions using the default logger

// Info logs an info message using the default logger
func Info(msg string, args ...interface{}) error {
	return Default().Info(msg, args...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, args ...interface{}) error {
	return Default().Warn(msg, args...)
}

// Error logs an error message using the default logger
func Error(msg string, args ...interface{}) error {
	return Default().Error(msg, args...)
}

// TestStart logs a test start message using the default logger
func TestStart(msg string, args ...interface{}) error {
	return Default().TestStart(msg, args...)
}

// TestEnd logs a test end message using the default logger
func TestEnd(msg string, args ...interface{}) error {
	return Default().TestEnd(msg, args...)
}

// TestPass logs a test pass message using the default logger
func TestPass(msg string, args ...interface{}) error {
	return Default().TestPass(msg, args...)
}

// TestFail logs an unexpected test failure using the default logger
func TestFail(msg string, args ...interface{}) error {
	return Default().TestFail(msg, args...)
}

// TestKnownFail logs an expected test failure using the default logger
func TestKnownFail(msg string, args ...interface{}) error {
	return Default().TestKnownFail(msg, args...)
}

// ProcessCrash logs a process crash message using the default logger
func ProcessCrash(msg string, args ...interface{}) error {
	return Default().ProcessCrash(msg, args...)
}

// With creates a new logger with additional keyword arguments
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
