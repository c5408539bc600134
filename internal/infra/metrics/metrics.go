// Package metrics exposes Prometheus instrumentation for the routing engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"intercity/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector on a private Prometheus registry
type Registry struct {
	QueriesTotal           *prometheus.CounterVec
	QueryDuration          *prometheus.HistogramVec
	ConnectionChangesTotal *prometheus.CounterVec
	LoadsTotal             *prometheus.CounterVec
	CitiesTotal            prometheus.Gauge
	ConnectionsTotal       prometheus.Gauge
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all collectors registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initQueryMetrics()
	r.initNetworkMetrics()
	r.initHTTPMetrics()

	return r
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "intercity_route_queries_total",
			Help: "Total number of route queries by dimension and outcome",
		},
		[]string{"dimension", "outcome"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intercity_route_query_duration_seconds",
			Help:    "Route query duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"dimension"},
	)
}

func (r *Registry) initNetworkMetrics() {
	r.ConnectionChangesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "intercity_connection_changes_total",
			Help: "Total number of connection additions and removals",
		},
		[]string{"operation", "mode"},
	)

	r.LoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "intercity_network_loads_total",
			Help: "Total number of network data loads by status",
		},
		[]string{"status"},
	)

	r.CitiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "intercity_cities",
			Help: "Number of registered cities",
		},
	)

	r.ConnectionsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "intercity_connections",
			Help: "Number of mode-specific connections in the network",
		},
	)
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "intercity_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intercity_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

// ObserveHTTPRequest records one served HTTP request. Route is the matched
// route template, not the raw path.
func (r *Registry) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery records one route query
func (r *Registry) ObserveQuery(dim entity.Dimension, outcome string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(dim.String(), outcome).Inc()
	r.QueryDuration.WithLabelValues(dim.String()).Observe(duration.Seconds())
}

// ObserveConnectionChange records an add or remove of a connection
func (r *Registry) ObserveConnectionChange(operation string, mode entity.Mode) {
	r.ConnectionChangesTotal.WithLabelValues(operation, mode.Slug()).Inc()
}

// ObserveLoad records a network data load attempt
func (r *Registry) ObserveLoad(status string) {
	r.LoadsTotal.WithLabelValues(status).Inc()
}

// SetNetworkSize updates the city and connection gauges
func (r *Registry) SetNetworkSize(cities, connections int) {
	r.CitiesTotal.Set(float64(cities))
	r.ConnectionsTotal.Set(float64(connections))
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
