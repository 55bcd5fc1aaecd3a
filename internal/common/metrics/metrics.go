// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_summary_requests_total",
			Help: "Total number of summary-form requests by outcome",
		},
		[]string{"outcome"},
	)

	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "listing_summary_request_duration_seconds",
			Help: "Duration of summary-form request handling in seconds",
		},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_summary_upstream_requests_total",
			Help: "Total number of marketplace API calls by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_summary_generation_requests_total",
			Help: "Total number of text-generation calls by variant and status",
		},
		[]string{"variant", "status"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "listing_summary_generation_duration_seconds",
			Help: "Duration of text-generation calls in seconds",
		},
		[]string{"variant"},
	)
)
