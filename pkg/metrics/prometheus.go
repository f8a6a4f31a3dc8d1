package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records pipeline and provider metrics via Prometheus.
type Recorder struct {
	providerRequests *prometheus.CounterVec
	provenanceTotal  *prometheus.CounterVec
	stageLatency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		providerRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocksignal_provider_requests_total",
				Help: "Total number of outbound provider attempts",
			},
			[]string{"provider", "outcome"},
		),
		provenanceTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocksignal_insight_provenance_total",
				Help: "Completed insights by summary provenance",
			},
			[]string{"provenance"},
		),
		stageLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stocksignal_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// RecordProviderRequest records one provider attempt and its outcome.
func (r *Recorder) RecordProviderRequest(provider, outcome string) {
	r.providerRequests.WithLabelValues(provider, outcome).Inc()
}

// RecordProvenance records which source supplied a completed insight.
func (r *Recorder) RecordProvenance(provenance string) {
	r.provenanceTotal.WithLabelValues(provenance).Inc()
}

// RecordStageLatency records a pipeline stage duration in seconds.
func (r *Recorder) RecordStageLatency(stage string, seconds float64) {
	r.stageLatency.WithLabelValues(stage).Observe(seconds)
}
