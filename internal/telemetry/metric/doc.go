// Package metric provides Prometheus metrics for berth.
//
// Metrics include:
//
//   - Request counts and latency histograms per route
//   - The live request counter value
//   - Increment operation totals
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
