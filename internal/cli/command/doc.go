// Package command provides CLI command definitions for berth-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command and global flags
//   - status.go: Query the server status endpoint
//   - increment.go: Increment the shared counter
//   - ping.go: Probe the server socket for liveness
//
// Commands follow a consistent pattern of parsing flags, calling the
// server over its unix socket, and formatting output.
package command
