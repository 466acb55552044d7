// Package socket manages the Unix domain socket lifecycle for berth.
//
// It owns the bind path from creation to release:
//
//   - Stale socket files from a crashed previous run are removed
//     before binding, so restarts need no manual cleanup.
//   - A path held by a live listener refuses to bind, leaving the
//     running instance untouched.
//   - On close the socket file is unlinked exactly once, so no stale
//     file lingers for the next start.
//
// The stale-file cleanup is deliberately not safe for running two
// instances against the same path at the same time; the dial probe
// narrows the window but does not close it.
package socket
