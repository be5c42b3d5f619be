package shared

import (
	"encoding/json"
	"time"

	"gin-order-service/internal/domain/order"

	"github.com/google/uuid"
)

// TopicOrders is the logical outbox topic for order lifecycle events.
const TopicOrders = "orders"

const (
	EventOrderPlaced       = "order.placed"
	EventOrderCancelled    = "order.cancelled"
	EventOrderRefunded     = "order.refunded"
	EventOrderStatusChange = "order.status_changed"
	EventPaymentSucceeded  = "payment.succeeded"
	EventPaymentFailed     = "payment.failed"
)

type OutboxEvent struct {
	Topic       string
	Type        string
	AggregateID uuid.UUID
	Payload     []byte
	RunAt       time.Time
}

// OutboxMessage is a queued event claimed by the relay.
type OutboxMessage struct {
	ID          uuid.UUID
	Topic       string
	Type        string
	AggregateID uuid.UUID
	Payload     []byte
	Attempts    int
	CreatedAt   time.Time
}

type OrderEventPayload struct {
	OrderID       uuid.UUID `json:"orderId"`
	UserID        uuid.UUID `json:"userId"`
	TimeslotID    uuid.UUID `json:"timeslotId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
	Total         string    `json:"total"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewOrderEvent(eventType string, o *order.Order, reason string, now time.Time) (OutboxEvent, error) {
	payload, err := json.Marshal(OrderEventPayload{
		OrderID:       o.ID(),
		UserID:        o.UserID(),
		TimeslotID:    o.TimeslotID(),
		Status:        o.Status().String(),
		PaymentStatus: o.Payment().Status.String(),
		PaymentMethod: o.Payment().Method.Kind().String(),
		Total:         o.Amounts().Total.StringFixed(2),
		Reason:        reason,
		OccurredAt:    now,
	})
	if err != nil {
		return OutboxEvent{}, err
	}
	return OutboxEvent{
		Topic:       TopicOrders,
		Type:        eventType,
		AggregateID: o.ID(),
		Payload:     payload,
		RunAt:       now,
	}, nil
}
