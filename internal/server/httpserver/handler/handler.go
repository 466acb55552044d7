// Package handler provides HTTP request handlers for berth.
package handler

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/harborui/berth/internal/core/counter"
	"github.com/harborui/berth/internal/core/domain"
	"github.com/harborui/berth/internal/telemetry/metric"
)

// Handler is the main HTTP handler that routes requests.
type Handler struct {
	counter    *counter.Counter
	metrics    *metric.Registry
	logger     *slog.Logger
	socketPath string
	indexTmpl  *template.Template
	mux        *http.ServeMux
}

// New creates a new Handler around the injected counter state.
func New(c *counter.Counter, metrics *metric.Registry, logger *slog.Logger, socketPath string) *Handler {
	h := &Handler{
		counter:    c,
		metrics:    metrics,
		logger:     logger,
		socketPath: socketPath,
		indexTmpl:  template.Must(template.New("index").Parse(indexHTML)),
		mux:        http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /{$}", h.handleIndex)

	h.mux.HandleFunc("GET /api/increment", h.handleIncrement)
	h.mux.HandleFunc("POST /api/increment", h.handleIncrement)
	h.mux.HandleFunc("GET /api/status", h.handleStatus)
	h.mux.HandleFunc("GET /api/healthz", h.handleHealthz)

	if h.metrics != nil {
		h.mux.Handle("GET /metrics", h.metrics.Handler())
	}

	// Everything else is a 404; the ServeMux itself answers 405 for
	// defined routes hit with the wrong method.
	h.mux.HandleFunc("/", h.handleNotFound)
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response for the given domain error.
func (h *Handler) writeError(w http.ResponseWriter, err *domain.DomainError) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", err.Code)
	w.WriteHeader(domain.ErrorCodeToHTTPStatus(err.Code))
	json.NewEncoder(w).Encode(ErrorResponse{
		Code:    err.Code,
		Message: err.Message,
	})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, domain.ErrRouteNotFound)
}
