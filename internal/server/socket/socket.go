// Package socket manages the Unix domain socket lifecycle for berth.
package socket

import (
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/harborui/berth/internal/core/domain"
)

// DefaultDialTimeout bounds the liveness probe against an existing
// socket file before binding.
const DefaultDialTimeout = 500 * time.Millisecond

// Options configures Listen.
type Options struct {
	// Mode is applied to the socket file after bind. Zero leaves the
	// umask-derived mode in place.
	Mode os.FileMode

	// DialTimeout bounds the pre-bind liveness probe.
	// Defaults to DefaultDialTimeout.
	DialTimeout time.Duration

	// Logger for bind-time diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Listener is a bound Unix domain socket that owns its filesystem path.
type Listener struct {
	net.Listener

	path      string
	logger    *slog.Logger
	closeOnce sync.Once
	closeErr  error
}

// Listen binds a Unix domain socket at path.
//
// If a file already exists at path it is probed: a live socket refuses
// the bind with domain.ErrSocketInUse, a non-socket file refuses with
// domain.ErrPathOccupied, and a stale socket left by an unclean
// shutdown is unlinked so the bind can proceed.
func Listen(path string, opts Options) (*Listener, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := clearStale(path, opts, log); err != nil {
		return nil, err
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, domain.ErrBindFailed.WithDetails(path).WithCause(err)
	}

	if opts.Mode != 0 {
		if err := os.Chmod(path, opts.Mode); err != nil {
			ln.Close()
			os.Remove(path)
			return nil, domain.ErrBindFailed.WithDetails(path).WithCause(err)
		}
	}

	log.Info("unix socket bound", "path", path)

	return &Listener{
		Listener: ln,
		path:     path,
		logger:   log,
	}, nil
}

// clearStale handles a pre-existing file at the bind path.
func clearStale(path string, opts Options, log *slog.Logger) error {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return domain.ErrBindFailed.WithDetails(path).WithCause(err)
	}

	if fi.Mode()&os.ModeSocket == 0 {
		return domain.ErrPathOccupied.WithDetails(path)
	}

	timeout := opts.DialTimeout
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}

	// A connectable socket means another instance is serving; leave it
	// alone. Anything else at this path is a leftover from an unclean
	// shutdown.
	if conn, err := net.DialTimeout("unix", path, timeout); err == nil {
		conn.Close()
		return domain.ErrSocketInUse.WithDetails(path)
	}

	log.Warn("removing stale socket file from previous run", "path", path)
	if err := os.Remove(path); err != nil {
		return domain.ErrBindFailed.WithDetails(path).WithCause(err)
	}

	return nil
}

// Path returns the filesystem path the listener is bound to.
func (l *Listener) Path() string {
	return l.path
}

// Close closes the listener and releases the socket path. It is safe
// to call more than once; the unlink happens exactly once.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.Listener.Close()

		// net's unix listener unlinks on close when it created the
		// file; remove again in case that was disabled or racing.
		if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
			if l.closeErr == nil {
				l.closeErr = err
			}
		}

		l.logger.Info("unix socket released", "path", l.path)
	})
	return l.closeErr
}
