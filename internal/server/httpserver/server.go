// Package httpserver provides the HTTP server for berth.
package httpserver

import (
	"context"
	"net"
	"net/http"

	"github.com/harborui/berth/internal/server/config"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

// New creates a new HTTP server for the given handler.
func New(handler http.Handler, cfg config.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		handler: handler,
	}
}

// Serve accepts connections on the given listener until Shutdown.
// Each accepted connection is handled in its own goroutine; a failing
// request never takes down the accept loop.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server, draining in-flight
// requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
