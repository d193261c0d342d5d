package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "sessions_created_total",
			Help:      "Total number of checkout sessions opened successfully",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "sessions_failed_total",
			Help:      "Total number of checkout session attempts that failed",
		},
	)

	callbacksReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "webhook",
			Name:      "callbacks_received_total",
			Help:      "Total number of payment callbacks received",
		},
	)

	callbacksRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "webhook",
			Name:      "callbacks_rejected_total",
			Help:      "Total number of callbacks that failed token verification or parsing",
		},
	)

	reconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile",
			Name:      "runs_total",
			Help:      "Total number of reconciliation runs by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	capturesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "payment",
			Name:      "captures_total",
			Help:      "Total number of capture attempts by result",
		},
		[]string{"result"},
	)

	refundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "payment",
			Name:      "refunds_total",
			Help:      "Total number of refund attempts by result",
		},
		[]string{"result"},
	)

	reconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile",
			Name:      "duration_seconds",
			Help:      "Histogram of reconciliation run durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsCreated,
		checkoutsFailed,
		callbacksReceived,
		callbacksRejected,
		reconciliationsTotal,
		capturesTotal,
		refundsTotal,
		reconcileDuration,
	)
}
