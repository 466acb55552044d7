// Package info provides point-in-time server information snapshots.
package info

import (
	"os"
	"runtime"
	"time"
)

// Info is a read-only snapshot of server state at one instant.
type Info struct {
	Hostname   string
	Time       time.Time
	GoVersion  string
	PID        int
	SocketPath string
}

// Snapshot computes a fresh Info for the given socket path.
func Snapshot(socketPath string) Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Info{
		Hostname:   hostname,
		Time:       time.Now(),
		GoVersion:  runtime.Version(),
		PID:        os.Getpid(),
		SocketPath: socketPath,
	}
}

// Timestamp returns the snapshot time in RFC 3339 format.
func (i Info) Timestamp() string {
	return i.Time.Format(time.RFC3339)
}
