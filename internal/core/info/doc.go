// Package info provides point-in-time server information snapshots.
//
// A snapshot carries hostname, current time, Go runtime version, and
// the serving socket path. Snapshots are computed fresh on every call
// and never cached; they require no synchronization.
package info
