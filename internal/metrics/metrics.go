package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PollerMetrics holds Prometheus metrics for the rate poller.
type PollerMetrics struct {
	FetchesTotal      prometheus.CounterVec
	FetchDuration     prometheus.HistogramVec
	LastFetchUnixTime prometheus.Gauge
}

// NewPollerMetrics creates and registers the poller metrics.
func NewPollerMetrics() *PollerMetrics {
	return &PollerMetrics{
		FetchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_fetches_total",
				Help: "Total number of upstream rate fetch attempts",
			},
			[]string{"pair", "outcome"},
		),

		FetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_fetch_duration_seconds",
				Help:    "Duration of upstream rate fetches in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"outcome"},
		),

		LastFetchUnixTime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_last_fetch_unix_time",
				Help: "Unix timestamp of the last successful rate fetch",
			},
		),
	}
}

// RecordFetch records one fetch attempt.
func (m *PollerMetrics) RecordFetch(pair, outcome string, durationSeconds float64) {
	m.FetchesTotal.WithLabelValues(pair, outcome).Inc()
	m.FetchDuration.WithLabelValues(outcome).Observe(durationSeconds)
}

// RecordLastFetch records the time of the last successful fetch.
func (m *PollerMetrics) RecordLastFetch(t time.Time) {
	m.LastFetchUnixTime.Set(float64(t.Unix()))
}
