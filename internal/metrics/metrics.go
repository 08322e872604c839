package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_processed_total",
		Help: "Payments processed by the coordinator, labeled by payment status.",
	}, []string{"status"})

	OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Order status transition attempts, labeled by outcome (shipped, noop, error).",
	}, []string{"outcome"})
)
