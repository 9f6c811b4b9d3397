package models

import "time"

// Payment status values. Only successful verifications are persisted, so
// PaymentSuccess is the only value written today.
const PaymentSuccess = "success"

// Payment records one verified gateway payment. Records are append-only
// and never updated. Email references the paying User by value.
type Payment struct {
	OrderID   string    `bson:"orderId" json:"orderId"`
	PaymentID string    `bson:"paymentId" json:"paymentId"`
	Amount    int64     `bson:"amount" json:"amount"`
	Status    string    `bson:"status" json:"status"`
	Email     string    `bson:"email" json:"email"`
	Date      time.Time `bson:"date" json:"date"`
}
