// Package main provides the entry point for berth-cli.
//
// The CLI tool provides command-line access to a berth-server over its
// unix socket:
//
//   - status: show the server status summary
//   - increment: bump the shared counter
//   - ping: check that a server is listening
//
// Usage:
//
//	berth-cli [command] [flags]
//	berth-cli --socket /tmp/hello-harbor.sock status
//	berth-cli increment --times 3 -o json
//
// The socket path comes from --socket or the HARBOR_SOCKET /
// BERTH_SOCKET environment variables.
package main
