// Package logger provides structured logging for berth.
//
// It wraps the standard library log/slog to provide structured JSON
// logging with a process-wide dynamically adjustable level and
// request-ID propagation through context.
package logger
