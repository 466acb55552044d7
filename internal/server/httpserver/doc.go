// Package httpserver provides the HTTP server for berth.
//
// It serves plain HTTP/1.1 over the Unix domain socket bound by
// internal/server/socket. There is no TCP listening mode: the server
// only ever consumes a listener handed to it, which is the point of
// the whole system.
package httpserver
