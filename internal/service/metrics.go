package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diet_recipe_upstream_requests_total",
			Help: "Total number of completion requests sent upstream",
		},
		[]string{"diet_type", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diet_recipe_upstream_request_duration_seconds",
			Help:    "Upstream completion latency in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		},
		[]string{"diet_type"},
	)
)
