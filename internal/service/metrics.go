package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of created orders.",
	})

	ordersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of cancelled orders.",
	})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions by target status.",
	}, []string{"status"})
)
