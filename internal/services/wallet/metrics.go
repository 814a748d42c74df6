package wallet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector records wallet operation outcomes.
type MetricsCollector interface {
	RecordOperationResult(operation, result string)
	RecordBalanceChange(userID uint, delta float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationResult(string, string) {}
func (n *NoopMetricsCollector) RecordBalanceChange(uint, float64)    {}

var (
	walletOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_wallet_operations_total",
			Help: "Wallet credit/debit operations by result",
		},
		[]string{"operation", "result"},
	)

	walletBalanceDelta = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boostify_wallet_balance_delta_total",
			Help: "Sum of absolute wallet balance changes",
		},
		[]string{"direction"},
	)
)

// PrometheusCollector exports wallet metrics to the process registry.
type PrometheusCollector struct{}

func (p *PrometheusCollector) RecordOperationResult(operation, result string) {
	walletOperationsTotal.WithLabelValues(operation, result).Inc()
}

func (p *PrometheusCollector) RecordBalanceChange(_ uint, delta float64) {
	direction := "credit"
	if delta < 0 {
		direction = "debit"
		delta = -delta
	}
	walletBalanceDelta.WithLabelValues(direction).Add(delta)
}
