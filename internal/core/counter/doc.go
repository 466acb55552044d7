// Package counter provides the process-lifetime request counter.
//
// The counter is the only shared mutable state in berth. It is created
// once at startup and injected into the HTTP handler; there is no
// package-level counter instance. The value is volatile: it resets to
// zero on process restart and is never persisted.
package counter
