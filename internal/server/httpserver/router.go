// Package httpserver provides the HTTP server for berth.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/harborui/berth/internal/core/counter"
	"github.com/harborui/berth/internal/server/httpserver/handler"
	"github.com/harborui/berth/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Counter is the shared request counter, owned by main.
	Counter *counter.Counter

	// Metrics is the Prometheus registry; its exposition handler is
	// mounted at /metrics.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger *slog.Logger

	// SocketPath is reported on the index page and in status responses.
	SocketPath string

	// RateLimit is the global request limit per second (0 = disabled).
	RateLimit int
}

// NewRouter creates the HTTP handler with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	h := handler.New(cfg.Counter, cfg.Metrics, log, cfg.SocketPath)

	// Order: Recover outermost so even middleware panics become 500s,
	// then RequestID so everything downstream can log it.
	middlewares := []Middleware{
		Recover(log),
		RequestID(),
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	middlewares = append(middlewares, RequestLog(log))
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit))
	}

	return Chain(h, middlewares...)
}
