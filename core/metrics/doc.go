// Package metrics records per-run Prometheus metrics and pushes them to a
// Pushgateway at the end of the run.
package metrics
