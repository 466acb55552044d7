// Package connection provides the HTTP-over-unix-socket client used
// by berth-cli to talk to a running berth-server.
package connection
