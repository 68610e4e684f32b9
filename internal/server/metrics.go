package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Requests counts handled requests by method, route and status.
	Requests *prometheus.CounterVec
	// RenderDuration observes how long each render target takes.
	RenderDuration *prometheus.HistogramVec
	// Capabilities is the number of capabilities in the last render.
	Capabilities prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capsection_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),

		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "capsection_render_duration_seconds",
				Help:    "Duration of section renders in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
			},
			[]string{"target"},
		),

		Capabilities: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "capsection_capabilities",
				Help: "Number of capabilities in the most recent render",
			},
		),
	}

	m.registry.MustRegister(
		m.Requests,
		m.RenderDuration,
		m.Capabilities,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
