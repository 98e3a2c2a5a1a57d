package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RailRequests The total number of rail adapter calls by result (counter)
	RailRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Name:      "rail_requests_total",
			Help:      "The total number of rail adapter calls",
		},
		[]string{"rail", "operation", "result"},
	)

	// RailRequestDuration The time spent waiting on rail adapters (summary with quantiles 0.5, 0.9, and 0.99)
	RailRequestDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "payment",
			Name:       "rail_request_duration_seconds",
			Help:       "The time spent waiting on rail adapters",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"rail", "operation"},
	)

	// EventsPublished The total number of session events published (counter)
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Name:      "events_published_total",
			Help:      "The total number of payment session events published",
		},
		[]string{"type", "severity"},
	)
)
