package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "locksmith"

// Metrics holds the service collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	accountingRequests *prometheus.CounterVec
	accountingLatency  *prometheus.HistogramVec
	tokenRefreshes     *prometheus.CounterVec
	jobsRecorded       *prometheus.CounterVec
	vinLookups         *prometheus.CounterVec
	loginAttempts      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in
// tests to keep them isolated from the default registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		accountingRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "accounting",
				Name:      "requests_total",
				Help:      "Outbound accounting API requests by operation and status code",
			},
			[]string{"operation", "status"},
		),
		accountingLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "accounting",
				Name:      "request_duration_seconds",
				Help:      "Outbound accounting API latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		tokenRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "accounting",
				Name:      "token_refresh_total",
				Help:      "Access token refresh attempts by outcome",
			},
			[]string{"outcome"},
		),
		jobsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "recorded_total",
				Help:      "Jobs submitted by outcome",
			},
			[]string{"outcome"},
		),
		vinLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "vehicles",
				Name:      "vin_lookup_total",
				Help:      "VIN decode lookups by source",
			},
			[]string{"source"},
		),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Operator login attempts by outcome",
			},
			[]string{"outcome"},
		),
		gatherer: reg,
	}
	reg.MustRegister(
		m.accountingRequests,
		m.accountingLatency,
		m.tokenRefreshes,
		m.jobsRecorded,
		m.vinLookups,
		m.loginAttempts,
	)
	return m
}

func (m *Metrics) ObserveAccountingRequest(operation string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.accountingRequests.WithLabelValues(operation, label).Inc()
	m.accountingLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) IncTokenRefresh(outcome string) {
	if m == nil {
		return
	}
	m.tokenRefreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncJob(outcome string) {
	if m == nil {
		return
	}
	m.jobsRecorded.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncVINLookup(source string) {
	if m == nil {
		return
	}
	m.vinLookups.WithLabelValues(source).Inc()
}

func (m *Metrics) IncLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
