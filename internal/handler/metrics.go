package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	callbacksHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharmacy",
			Subsystem: "payments",
			Name:      "callbacks_handled_total",
			Help:      "Total number of applied payment callbacks by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	callbacksFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy",
			Subsystem: "kafka_consumer",
			Name:      "callbacks_failed_total",
			Help:      "Total number of failed callback processing attempts",
		},
	)

	callbacksDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy",
			Subsystem: "kafka_consumer",
			Name:      "callbacks_dlq_total",
			Help:      "Total number of callbacks written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pharmacy",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	callbackProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pharmacy",
			Subsystem: "kafka_consumer",
			Name:      "callback_processing_duration_seconds",
			Help:      "Histogram of callback processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharmacy",
			Subsystem: "checkout",
			Name:      "requests_total",
			Help:      "Total number of checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pharmacy",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pharmacy",
			Subsystem: "checkout",
			Name:      "in_progress",
			Help:      "Number of checkouts currently being processed",
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		callbacksHandled,
		callbacksFailed,
		callbacksDLQ,
		commitErrors,
		callbackProcessingDuration,

		checkoutsTotal,
		checkoutDuration,
		checkoutsInProgress,
	)
}
