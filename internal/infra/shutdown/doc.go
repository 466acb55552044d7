// Package shutdown provides graceful shutdown for berth.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Cleanup hook registration, run in reverse order
//
// The socket file unlink runs as the final hook so the socket path is
// released on every clean exit.
package shutdown
