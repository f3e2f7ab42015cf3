package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts handled requests.
	// Labels: route, method, status
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rivercrossing",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests handled",
	}, []string{"route", "method", "status"})

	// requestLatency measures handler latency.
	// Labels: route
	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rivercrossing",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"route"})

	// rateLimited counts rejected requests.
	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rivercrossing",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Total requests rejected by the rate limiter",
	})

	// solveOutcomes counts solve results.
	// Labels: outcome (solved, unsolvable, invalid, exhausted, error), cached
	solveOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rivercrossing",
		Subsystem: "solver",
		Name:      "outcomes_total",
		Help:      "Solve requests by outcome",
	}, []string{"outcome", "cached"})
)
