// Package monitoring provides Prometheus metrics for the probability
// service: HTTP request counters and latencies, per-tool call metrics,
// WebSocket streaming gauges, and uptime.
//
// Metrics are registered through an injectable prometheus.Registerer so
// tests can use isolated registries. The exposition endpoint is served by
// promhttp in the server package.
package monitoring
