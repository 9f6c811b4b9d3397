// Package gateway talks to the payment gateway (Razorpay). The billing
// service depends on the Ledger interface so tests can fake the remote
// side, and so running without credentials degrades to mock mode.
package gateway

import "context"

// Order is the gateway's view of a created order.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Ledger creates remote orders and exposes the shared secret used for
// callback signature verification. The secret never leaves the billing
// service.
type Ledger interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (*Order, error)
	Secret() string
}
