// Package handler provides HTTP request handlers for berth.
//
// This package implements the route surface the desktop host proxies
// browser traffic to:
//
//   - GET  /            HTML page with server info and the counter
//   - GET|POST /api/increment  atomic counter increment
//   - GET  /api/status  health, counter, hostname, timestamp
//   - GET  /api/healthz liveness probe for the host's readiness poll
//   - GET  /metrics     Prometheus exposition
//
// Undefined paths get a JSON 404; defined paths with the wrong method
// get a 405. Either way the counter is untouched.
package handler
