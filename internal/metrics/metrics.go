package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	Registry         *prometheus.Registry
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	Transitions      *prometheus.CounterVec
	Submissions      *prometheus.CounterVec
	Backlog          *prometheus.GaugeVec
}

// New registers every collector on a fresh registry so tests and multiple
// servers in one process do not collide.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "case_transitions_total",
				Help:      "Case decisions by target status and outcome",
			},
			[]string{"to", "outcome"}, // outcome: ok, conflict, invalid
		),
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "case_submissions_total",
				Help:      "Submitted cases by risk tier",
			},
			[]string{"tier"},
		),
		Backlog: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "backlog",
				Help:      "Items waiting for an administrator decision",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.RequestsInFlight,
		m.Transitions,
		m.Submissions,
		m.Backlog,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordTransition counts a decision attempt.
func (m *Metrics) RecordTransition(to, outcome string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(to, outcome).Inc()
}

// RecordSubmission counts a submitted case by its tier label.
func (m *Metrics) RecordSubmission(tier string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(tier).Inc()
}

// SetBacklog publishes a queue size.
func (m *Metrics) SetBacklog(kind string, n int) {
	if m == nil {
		return
	}
	m.Backlog.WithLabelValues(kind).Set(float64(n))
}
