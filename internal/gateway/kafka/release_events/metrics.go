package release_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReleaseEventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "release_events_published_total",
			Help: "Total number of release events sent to Kafka",
		},
		[]string{"type", "result"},
	)

	PublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "release_events_publish_duration_seconds",
			Help:    "Duration of release event publishing including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"type"},
	)
)
