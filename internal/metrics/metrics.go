package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by method, path and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payright_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "path", "status"})

	// InferenceDuration tracks wall time of completion engine calls.
	InferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "payright_inference_duration_seconds",
		Help:    "Duration of completion engine calls.",
		Buckets: prometheus.DefBuckets,
	})

	// CandidatesDropped counts subscription candidates discarded during
	// normalization because they failed validation.
	CandidatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payright_candidates_dropped_total",
		Help: "Malformed subscription candidates dropped during normalization.",
	})
)
