// Package handler provides HTTP request handlers for berth.
package handler

// IncrementResponse is the response body for /api/increment.
type IncrementResponse struct {
	Count int64 `json:"count"`
}

// StatusResponse is the response body for GET /api/status.
type StatusResponse struct {
	Status    string `json:"status"`
	Counter   int64  `json:"counter"`
	Hostname  string `json:"hostname"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the response body for GET /api/healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of JSON error replies.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
