// Package metrics exposes Prometheus counters for the design workflow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	submissions    *prometheus.CounterVec
	statusChecks   *prometheus.CounterVec
	designRequests *prometheus.CounterVec
	estimatedPrice prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woodcraft",
			Name:      "generation_submissions_total",
			Help:      "Generation task submissions by outcome.",
		}, []string{"outcome"}),
		statusChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woodcraft",
			Name:      "generation_status_checks_total",
			Help:      "Generation task status checks by reported status.",
		}, []string{"status"}),
		designRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woodcraft",
			Name:      "design_requests_total",
			Help:      "Design requests by outcome.",
		}, []string{"outcome"}),
		estimatedPrice: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "woodcraft",
			Name:      "design_estimated_price",
			Help:      "Estimated price of accepted design requests.",
			Buckets:   []float64{250, 500, 1000, 2500, 5000, 10000, 25000},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.submissions,
		m.statusChecks,
		m.designRequests,
		m.estimatedPrice,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SubmissionOutcome(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) StatusCheck(status string) {
	if m == nil {
		return
	}
	m.statusChecks.WithLabelValues(status).Inc()
}

func (m *Metrics) DesignRequest(outcome string, estimatedPrice float64) {
	if m == nil {
		return
	}
	m.designRequests.WithLabelValues(outcome).Inc()
	if outcome == "accepted" {
		m.estimatedPrice.Observe(estimatedPrice)
	}
}
