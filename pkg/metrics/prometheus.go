package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	alertsCreated prometheus.Counter
	votes         *prometheus.CounterVec
	currentRate   prometheus.Gauge
	latency       *prometheus.HistogramVec
	publishErrors *prometheus.CounterVec
}

// New registers the recorder's collectors on the default registry.
func New() *Recorder {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the recorder's collectors on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		alertsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Name: "yendong_alerts_created_total",
				Help: "Total number of rate alerts created",
			},
		),
		votes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yendong_votes_total",
				Help: "Total number of poll votes by label",
			},
			[]string{"vote"},
		),
		currentRate: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "yendong_current_rate",
				Help: "Last reported JPY to VND rate",
			},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "yendong_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		publishErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yendong_event_publish_errors_total",
				Help: "Events that could not be published",
			},
			[]string{"type"},
		),
	}
}

func (r *Recorder) RecordAlertCreated() {
	r.alertsCreated.Inc()
}

func (r *Recorder) RecordVote(label string) {
	r.votes.WithLabelValues(label).Inc()
}

func (r *Recorder) RecordCurrentRate(rate float64) {
	r.currentRate.Set(rate)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordPublishError(eventType string) {
	r.publishErrors.WithLabelValues(eventType).Inc()
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordAlertCreated() {}
func (Nop) RecordVote(string) {}
func (Nop) RecordCurrentRate(float64) {}
func (Nop) RecordLatency(string, float64) {}
func (Nop) RecordPublishError(string) {}
