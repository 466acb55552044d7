// Package domain defines the core domain models for berth.
//
// Domain models are pure value objects without IO dependencies or
// framework coupling. This package contains the structured error
// taxonomy shared by the socket manager and the HTTP handlers:
//
//   - Bind errors: socket path occupied, already bound, bind failure
//   - Request errors: route not found, handler failure
//
// Bind errors are fatal to startup; request errors are recovered
// per-request and mapped to HTTP status codes.
package domain
