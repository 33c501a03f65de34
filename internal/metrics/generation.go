// Package metrics holds the Prometheus collectors for the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Narrative generation Prometheus metrics.
var (
	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sommelier",
			Name:      "generation_requests_total",
			Help:      "Total number of generation requests to the provider",
		},
		[]string{"provider", "model", "kind", "status"},
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sommelier",
			Name:      "generation_request_duration_seconds",
			Help:      "Generation request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		},
		[]string{"provider", "model", "kind"},
	)

	GenerationTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sommelier",
			Name:      "generation_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	GenerationRetriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sommelier",
			Name:      "generation_retries_total",
			Help:      "Total retried generation attempts",
		},
		[]string{"provider", "model"},
	)

	GenerationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sommelier",
			Name:      "generation_errors_total",
			Help:      "Total generation errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	NarrativeCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sommelier",
			Name:      "narrative_cache_total",
			Help:      "Narrative cache hits and misses",
		},
		[]string{"kind", "result"}, // kind: "profile"/"comparison", result: "hit"/"miss"
	)
)

var genMetricsRegistered bool

// RegisterGenerationMetrics registers the generation metrics. Must be called once from main.
func RegisterGenerationMetrics() {
	if genMetricsRegistered {
		return
	}
	prometheus.MustRegister(GenerationRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(GenerationTokensTotal)
	prometheus.MustRegister(GenerationRetriesTotal)
	prometheus.MustRegister(GenerationErrorsTotal)
	prometheus.MustRegister(NarrativeCacheTotal)
	genMetricsRegistered = true
}
