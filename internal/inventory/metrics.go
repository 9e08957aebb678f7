package inventory

import (
	"errors"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reservationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "inventory",
	Name:      "reservation_failures_total",
	Help:      "Total number of rejected stock reservations.",
}, []string{"reason"})

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product_not_found"
	default:
		return "error"
	}
}
