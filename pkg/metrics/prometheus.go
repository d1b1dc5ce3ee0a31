package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain service.Metrics using Prometheus.
type Recorder struct {
	scoresComputed *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastScore      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scoresComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardpulse_scores_computed_total",
				Help: "Total number of scores computed by kind",
			},
			[]string{"kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardpulse_provider_errors_total",
				Help: "Total number of provider failures degraded to neutral",
			},
			[]string{"provider"},
		),
		lastScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cardpulse_last_score",
				Help: "Last computed score for a card by kind",
			},
			[]string{"card", "kind"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cardpulse_operation_duration_seconds",
				Help:    "Duration of scoring operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScore records a computed score for a card.
func (r *Recorder) RecordScore(kind, card string, value float64) {
	r.scoresComputed.WithLabelValues(kind).Inc()
	r.lastScore.WithLabelValues(card, kind).Set(value)
}

// RecordProviderError records a provider failure.
func (r *Recorder) RecordProviderError(provider string) {
	r.errorsTotal.WithLabelValues(provider).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
