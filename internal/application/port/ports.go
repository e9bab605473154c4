// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define the interfaces that the application layer requires from external
// services like logging.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
//
// SOLID Principles applied:
//   - Interface Segregation: small, focused interfaces
//   - Dependency Inversion: Application depends on abstractions
package port

import "context"

// Logger defines the interface for structured logging.
// The concrete implementation wraps zap; the application and interface
// layers depend only on this abstraction, and the domain core depends
// on nothing at all.
//
// Example usage:
//
//	logger.Info("BMI calculated", "bmi", result.Value, "category", result.Category)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// TipCatalog resolves category tip keys into guidance text. The core
// is agnostic to the wording (and to any future translation); the
// presentation layer supplies the catalog.
type TipCatalog interface {
	// Tip returns the guidance text for a category tip key.
	Tip(key string) string

	// Disclaimer returns the medical disclaimer shown with every result.
	Disclaimer() string
}

// NopLogger is a Logger that discards everything. Useful as a default
// and in tests that do not assert on log output.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(msg string, keysAndValues ...interface{}) {}

// Info implements Logger.
func (NopLogger) Info(msg string, keysAndValues ...interface{}) {}

// Warn implements Logger.
func (NopLogger) Warn(msg string, keysAndValues ...interface{}) {}

// Error implements Logger.
func (NopLogger) Error(msg string, keysAndValues ...interface{}) {}

// With implements Logger.
func (n NopLogger) With(keysAndValues ...interface{}) Logger { return n }

// WithContext implements Logger.
func (n NopLogger) WithContext(ctx context.Context) Logger { return n }
