package model

import "time"

// Payment intent statuses.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
)

// Payment methods accepted at checkout.
const (
	MethodQR   = "qr"
	MethodCard = "card"
	MethodCash = "cash"
)

// PaymentIntent records one checkout. OrderID is a weak reference: the order
// may have been delivered and removed from the queue since.
type PaymentIntent struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	Method       string     `json:"method"`
	Status       string     `json:"status"` // PENDING, PAID
	TaxID        string     `json:"tax_id,omitempty"`
	BusinessName string     `json:"business_name,omitempty"`
	PayReference string     `json:"pay_reference,omitempty"`
	Voucher      string     `json:"voucher,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
