package models

import "time"

const (
	EventTypePaymentProcessed   = "payment.processed"
	EventTypeOrderStatusChanged = "order.status.changed"
)

type PaymentEvent struct {
	Type      string        `json:"type"`
	PaymentID string        `json:"payment_id"`
	OrderID   string        `json:"order_id,omitempty"`
	Status    PaymentStatus `json:"status"`
	Amount    float64       `json:"amount"`
	Timestamp time.Time     `json:"timestamp"`
}

type OrderStatusEvent struct {
	Type           string      `json:"type"`
	OrderID        string      `json:"order_id"`
	Status         OrderStatus `json:"status"`
	PreviousStatus OrderStatus `json:"previous_status"`
	PaymentID      string      `json:"payment_id"`
	Timestamp      time.Time   `json:"timestamp"`
}
