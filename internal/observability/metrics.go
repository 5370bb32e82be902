package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the paper check service.
// Metrics are organized by subsystem: validation runs, author matching,
// reference lookups, and the HTTP surface.
type Metrics struct {
	// ValidationsTotal counts validation runs by outcome (pass, fail).
	ValidationsTotal *prometheus.CounterVec

	// ValidationDuration observes end-to-end validation run duration in seconds.
	ValidationDuration prometheus.Histogram

	// PaperLookupMisses counts validation requests whose paper code had no
	// entry in the reference registry.
	PaperLookupMisses prometheus.Counter

	// AuthorsReconciled counts reconciled author rows by result
	// (exact, loose, unmatched).
	AuthorsReconciled *prometheus.CounterVec

	// AuthorsPerValidation observes the report size per validation run.
	AuthorsPerValidation prometheus.Histogram

	// HTTPRequestsTotal counts HTTP requests by method, route, and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP request duration in seconds by route.
	HTTPRequestDuration *prometheus.HistogramVec

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered on
// reg. The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Total number of validation runs by outcome",
		}, []string{"outcome"}),
		ValidationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Duration of validation runs in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		PaperLookupMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paper_lookup_misses_total",
			Help:      "Total number of paper codes with no reference entry",
		}),
		AuthorsReconciled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authors_reconciled_total",
			Help:      "Total number of reconciled author rows by result",
		}, []string{"result"}),
		AuthorsPerValidation: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "authors_per_validation",
			Help:      "Number of author report rows per validation run",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"route"}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
	}
}

// RecordValidation records a completed validation run.
func (m *Metrics) RecordValidation(ok bool, durationSeconds float64) {
	outcome := "fail"
	if ok {
		outcome = "pass"
	}
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
	m.ValidationDuration.Observe(durationSeconds)
}

// RecordLookupMiss records a paper code with no reference entry.
func (m *Metrics) RecordLookupMiss() {
	m.PaperLookupMisses.Inc()
}

// RecordAuthorRows records the per-row results of one author report.
func (m *Metrics) RecordAuthorRows(exact, loose, unmatched int) {
	m.AuthorsReconciled.WithLabelValues("exact").Add(float64(exact))
	m.AuthorsReconciled.WithLabelValues("loose").Add(float64(loose))
	m.AuthorsReconciled.WithLabelValues("unmatched").Add(float64(unmatched))
	m.AuthorsPerValidation.Observe(float64(exact + loose + unmatched))
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(durationSeconds)
}

// RecordRateLimited records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimited() {
	m.RateLimitedTotal.Inc()
}
