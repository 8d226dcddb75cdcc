package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the round detection service.
type Metrics struct {
	registry                *prometheus.Registry
	requestsTotal           prometheus.Counter
	readingsRegisteredTotal prometheus.Counter
	matchesEndedTotal       prometheus.Counter
	activeMatches           prometheus.Gauge
	errorsTotal             prometheus.Counter
}

// New creates and registers Prometheus metrics for the service.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rounds_requests_total",
		Help: "Total number of HTTP requests received",
	})
	readingsRegisteredTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rounds_readings_registered_total",
		Help: "Total number of timer readings successfully registered",
	})
	matchesEndedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rounds_matches_ended_total",
		Help: "Total number of matches ended",
	})
	activeMatches := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rounds_active_matches",
		Help: "Number of matches that are not ended",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rounds_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		requestsTotal,
		readingsRegisteredTotal,
		matchesEndedTotal,
		activeMatches,
		errorsTotal,
	)

	return &Metrics{
		registry:                registry,
		requestsTotal:           requestsTotal,
		readingsRegisteredTotal: readingsRegisteredTotal,
		matchesEndedTotal:       matchesEndedTotal,
		activeMatches:           activeMatches,
		errorsTotal:             errorsTotal,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// AddReadingsRegistered adds n to the readings registered counter.
func (m *Metrics) AddReadingsRegistered(n int) {
	m.readingsRegisteredTotal.Add(float64(n))
}

// IncMatchesEnded increments the matches ended counter.
func (m *Metrics) IncMatchesEnded() {
	m.matchesEndedTotal.Inc()
}

// SetActiveMatches sets the active matches gauge.
func (m *Metrics) SetActiveMatches(n int) {
	m.activeMatches.Set(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values (e.g. active matches).
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
