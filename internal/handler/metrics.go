package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of paid orders placed from the checkout topic",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout processing attempts",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "checkout_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "furniture_resale",
			Subsystem: "checkout_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "furniture_resale",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkout messages currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order lookups by result",
		},
		[]string{"result"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "furniture_resale",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order lookup durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "furniture_resale",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress order lookups",
		},
	)

	ordersExported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "http",
			Name:      "orders_exported_total",
			Help:      "Total number of order rows written to XLSX exports",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutProcessingDuration,
		checkoutsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
		ordersExported,
	)
}
