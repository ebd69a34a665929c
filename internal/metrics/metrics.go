package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AdDecisions counts slot lookups by outcome: served, blank, not_found
	// or error.
	AdDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adframe_ad_decisions_total",
			Help: "Total number of ad decisions by outcome",
		},
		[]string{"outcome"},
	)

	// TrackedEvents counts impression and click recordings by result:
	// recorded, duplicate or failed.
	TrackedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adframe_tracked_events_total",
			Help: "Total number of tracking calls by event kind and result",
		},
		[]string{"kind", "result"},
	)

	TasksDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adframe_tasks_dropped_total",
			Help: "Total number of background tasks dropped because the queue was full",
		},
		[]string{"task"},
	)

	TaskQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "adframe_task_queue_depth",
			Help: "Current number of queued background tasks",
		},
	)

	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adframe_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(AdDecisions)
	prometheus.MustRegister(TrackedEvents)
	prometheus.MustRegister(TasksDropped)
	prometheus.MustRegister(TaskQueueDepth)
	prometheus.MustRegister(ResponseTime)
}
