// Package logger provides structured logging functionality for the application.
//
// It configures Go's standard library log/slog package for structured JSON
// logging with a configurable level, and carries request-scoped loggers
// through context.Context.
package logger
