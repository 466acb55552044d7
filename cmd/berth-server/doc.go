// Package main provides the entry point for berth-server.
//
// berth-server binds a Unix domain socket and serves:
//
//   - GET /: an HTML page showing host information and the counter
//   - GET/POST /api/increment: increment the shared counter
//   - GET /api/status: JSON status summary
//   - GET /api/healthz: liveness probe
//   - GET /metrics: Prometheus exposition
//
// Usage:
//
//	berth-server [--config file.yaml] [--socket /tmp/hello-harbor.sock]
//
// The socket path defaults to $HARBOR_SOCKET when set. Configuration
// may also come from a YAML file and BERTH_-prefixed environment
// variables.
package main
