// Package socket manages the Unix domain socket lifecycle for berth.
package socket

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher warns when the socket file disappears while the listener is
// still serving. Losing the file makes the server unreachable without
// killing it, which is otherwise silent.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger
	done    chan struct{}
}

// NewWatcher creates a watcher for the given socket path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	// Watch the directory, not the file: removal events for the file
	// itself stop arriving once its watch is gone.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher: fw,
		path:    path,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Start watches for removal of the socket file. It blocks until Stop
// is called; use StartAsync to run it in the background.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.logger.Warn("socket file removed while serving; clients can no longer connect",
					"path", w.path,
					"op", event.Op.String(),
				)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("socket watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// StartAsync starts watching in a goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
