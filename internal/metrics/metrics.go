package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Aerodrome
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	AirportsCreatedTotal prometheus.Counter
	AirportsDeletedTotal prometheus.Counter
	BulkLoadRecords      prometheus.CounterVec
	BulkLoadDuration     prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aerodrome_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "aerodrome_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		AirportsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aerodrome_airports_created_total",
				Help: "Total airport records created through the API",
			},
		),
		AirportsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aerodrome_airports_deleted_total",
				Help: "Total airport records deleted through the API",
			},
		),
		BulkLoadRecords: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aerodrome_bulk_load_records_total",
				Help: "Records processed by bulk loads, by outcome",
			},
			[]string{"outcome"},
		),
		BulkLoadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aerodrome_bulk_load_duration_seconds",
				Help:    "Bulk load execution time in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
		),
	}
}
