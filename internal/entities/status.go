package entities

import (
	"fmt"
	"slices"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
}

const (
	ActionPay     = "pay"
	ActionCancel  = "cancel"
	ActionDeliver = "deliver"
)

// Переходы, доступные администратору. Только вперёд, Cancelled - конечный статус.
var adminTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled},
	StatusProcessing: {StatusProcessing, StatusShipped, StatusDelivered},
	StatusShipped:    {StatusShipped, StatusDelivered},
	StatusDelivered:  {StatusDelivered},
	StatusCancelled:  {},
}

// Статус после оплаты. Оплата не откатывает уже отправленный заказ назад.
var paymentTransitions = map[Status]Status{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusProcessing,
	StatusShipped:    StatusShipped,
	StatusDelivered:  StatusDelivered,
}

func (s Status) CanTransition(to Status) bool {
	return slices.Contains(adminTransitions[s], to)
}

func (s Status) CanCancel() bool {
	return s == StatusPending
}

// Cancel переводит заказ в Cancelled. Возврат остатков на склад - забота вызывающего.
func (o *Order) Cancel(now time.Time) error {
	if !o.Status.CanCancel() {
		return &InvalidStateError{Status: o.Status, Action: ActionCancel}
	}
	o.Status = StatusCancelled
	o.UpdatedAt = now
	return nil
}

func (o *Order) MarkPaid(result PaymentResult, now time.Time) error {
	next, ok := paymentTransitions[o.Status]
	if !ok {
		return &InvalidStateError{Status: o.Status, Action: ActionPay}
	}
	o.setPaid(now)
	o.PaymentResult = &result
	o.Status = next
	o.UpdatedAt = now
	return nil
}

func (o *Order) MarkDelivered(now time.Time) error {
	if !o.Status.CanTransition(StatusDelivered) {
		return &InvalidStateError{Status: o.Status, Action: ActionDeliver}
	}
	o.setDelivered(now)
	o.Status = StatusDelivered
	o.UpdatedAt = now
	return nil
}

// Apply применяет административное изменение статуса. Отмена сюда не входит,
// её нужно проводить через Cancel вместе с возвратом остатков.
func (o *Order) Apply(upd StatusUpdate, now time.Time) error {
	if upd.Status != "" {
		if upd.Status == StatusCancelled || !o.Status.CanTransition(upd.Status) {
			return &InvalidStateError{Status: o.Status, Action: "move to " + string(upd.Status)}
		}

		switch upd.Status {
		case StatusProcessing:
			o.setPaid(now)
		case StatusShipped:
			if upd.Carrier != "" {
				o.Carrier = upd.Carrier
			}
			if upd.TrackingNumber != "" {
				o.TrackingNumber = upd.TrackingNumber
			}
		case StatusDelivered:
			o.setDelivered(now)
		}
		o.Status = upd.Status
	}

	if upd.Notes != nil {
		o.Notes = *upd.Notes
	}
	o.UpdatedAt = now
	return nil
}

func (o *Order) setPaid(now time.Time) {
	if o.IsPaid && o.PaidAt != nil {
		return
	}
	o.IsPaid = true
	o.PaidAt = &now
}

func (o *Order) setDelivered(now time.Time) {
	if o.IsDelivered && o.DeliveredAt != nil {
		return
	}
	o.IsDelivered = true
	o.DeliveredAt = &now
}
