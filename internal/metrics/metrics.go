// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_orders_created_total",
			Help: "Orders placed, by service category and currency",
		},
		[]string{"category", "currency"},
	)

	OrdersStatusTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_orders_status_total",
			Help: "Order status transitions recorded by the poller",
		},
		[]string{"status"},
	)

	OrderChargeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_order_charge_amount_total",
			Help: "Total amount charged for orders, by currency",
		},
		[]string{"currency"},
	)

	FallbackRateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_pricing_fallback_rate_total",
			Help: "Quotes priced with the hard-coded fallback exchange rate",
		},
		[]string{"currency"},
	)

	ResellerErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_reseller_errors_total",
			Help: "Failed calls to the reseller panel API",
		},
		[]string{"action"},
	)

	ResellerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boostify_reseller_request_duration_seconds",
			Help:    "Latency of reseller panel API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	TopupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_topups_total",
			Help: "Wallet top-ups, by result",
		},
		[]string{"result"},
	)
)
