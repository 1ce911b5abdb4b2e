package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "starforge"
	// Subsystem for scheduler metrics
	subsystem = "scheduler"
)

// Registry is the global Prometheus registry for all metrics.
// Nil until InitRegistry is called; collectors are nil-safe so the
// scheduler runs unchanged with metrics disabled.
var Registry *prometheus.Registry

// InitRegistry initializes the Prometheus registry.
// Should be called once at application startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Handler returns the HTTP handler serving the /metrics endpoint
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ListenAndServe starts the metrics HTTP server on the given port
func ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
