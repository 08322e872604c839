package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment records one payment attempt against an order. OrderID is set once
// when the payment is processed and never reassigned; an empty OrderID means
// the payment is not linked to any order.
type Payment struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"order_id,omitempty"`
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	Amount          float64       `json:"amount"`
	ReferenceNumber string        `json:"reference_number"`
	PaymentDate     time.Time     `json:"payment_date"`
}

// PaymentDraft carries the caller-supplied payment fields. Identity, order
// linkage and the payment date are stamped by the coordinator.
type PaymentDraft struct {
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	Amount          float64       `json:"amount"`
	ReferenceNumber string        `json:"reference_number"`
}
