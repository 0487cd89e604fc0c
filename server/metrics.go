package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label.
const (
	outcomeFound    = "found"
	outcomeNoRoute  = "no_route"
	outcomeRejected = "rejected"
	outcomeLimit    = "limit"
	outcomeAborted  = "aborted"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_searches_total",
		Help: "Route searches by transport and outcome",
	}, []string{"transport", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Grid construction plus search time",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	}, []string{"transport"})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_cells",
		Help:    "Cells settled per completed search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 11), // 1 to ~1M
	})
)
