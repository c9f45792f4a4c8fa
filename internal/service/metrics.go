package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of placed orders",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "status",
			Name:      "transitions_total",
			Help:      "Total number of committed status transitions",
		},
		[]string{"entity", "from", "to"},
	)

	notificationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "notifications",
			Name:      "failed_total",
			Help:      "Total number of notifications that could not be published",
		},
		[]string{"type"},
	)

	dashboardSegmentsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "furniture_resale",
			Subsystem: "analytics",
			Name:      "segments_failed_total",
			Help:      "Total number of dashboard segments that failed to load",
		},
		[]string{"segment"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		statusTransitions,
		notificationsFailed,
		dashboardSegmentsFailed,
	)
}
