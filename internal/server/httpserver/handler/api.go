// Package handler provides HTTP request handlers for berth.
package handler

import (
	"net/http"

	"github.com/harborui/berth/internal/core/info"
)

// handleIncrement handles GET and POST /api/increment.
//
// The increment is a single atomic add: it either happens completely
// or not at all, regardless of what happens to the connection while
// the response is being written.
func (h *Handler) handleIncrement(w http.ResponseWriter, r *http.Request) {
	count := h.counter.Increment()
	if h.metrics != nil {
		h.metrics.IncrementsTotal.Inc()
	}

	h.writeJSON(w, http.StatusOK, IncrementResponse{Count: count})
}

// handleStatus handles GET /api/status.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := info.Snapshot(h.socketPath)

	h.writeJSON(w, http.StatusOK, StatusResponse{
		Status:    "ok",
		Counter:   h.counter.Value(),
		Hostname:  snap.Hostname,
		Timestamp: snap.Timestamp(),
	})
}

// handleHealthz handles GET /api/healthz. The host polls this while
// waiting for the backend to come up.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
