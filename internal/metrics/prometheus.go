package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Recommendation metrics
	RecommendationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"status"}, // status: success|invalid_input|error
	)

	RecommendationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fintrack_recommendation_duration_seconds",
			Help:    "End-to-end recommendation duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// External provider metrics
	ProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_provider_calls_total",
			Help: "Total number of external provider calls",
		},
		[]string{"provider", "call", "status"}, // provider: quotes|funds, status: success|error
	)

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fintrack_provider_latency_seconds",
			Help:    "External provider call latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		},
		[]string{"provider", "call"},
	)

	// Fund catalog metrics
	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fintrack_fund_catalog_size",
			Help: "Number of schemes in the cached fund catalog",
		},
	)

	FundEntriesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_fund_entries_skipped_total",
			Help: "Catalog entries skipped during matching",
		},
		[]string{"reason"}, // reason: variant|nav_fetch|nav_invalid|duplicate
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(RecommendationRequests)
	prometheus.MustRegister(RecommendationDuration)
	prometheus.MustRegister(ProviderCalls)
	prometheus.MustRegister(ProviderLatency)
	prometheus.MustRegister(CatalogSize)
	prometheus.MustRegister(FundEntriesSkipped)
}

// Handler returns HTTP handler for metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
