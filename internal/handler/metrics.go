package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	placementTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "placement",
			Name:      "orders_total",
			Help:      "Total number of placement attempts by result",
		},
		[]string{"result"},
	)

	placementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "placement",
			Name:      "duration_seconds",
			Help:      "Histogram of successful placement durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Total number of order status changes by target status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		placementTotal,
		placementDuration,
		statusChanges,
	)
}
