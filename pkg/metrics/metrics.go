package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "talentflow"

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	Submissions      *prometheus.CounterVec
	CacheLookups     *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "assessment",
				Name:      "submissions_total",
				Help:      "Assessment submissions by outcome",
			},
			[]string{"outcome"}, // accepted or rejected
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Assessment cache lookups by result",
			},
			[]string{"result"}, // hit, miss or error
		),
	}
}

func (m *Metrics) SubmissionAccepted() { m.Submissions.WithLabelValues("accepted").Inc() }
func (m *Metrics) SubmissionRejected() { m.Submissions.WithLabelValues("rejected").Inc() }
func (m *Metrics) CacheHit()           { m.CacheLookups.WithLabelValues("hit").Inc() }
func (m *Metrics) CacheMiss()          { m.CacheLookups.WithLabelValues("miss").Inc() }
func (m *Metrics) CacheError()         { m.CacheLookups.WithLabelValues("error").Inc() }
