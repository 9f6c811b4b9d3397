package models

import "time"

// PaymentStatus values for User.PaymentStatus.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
)

// User is the account document. Email is the sole identity key; there is
// no separate numeric ID. OTP and OTPExpires are pointers so an absent
// code is stored as an absent field, not a zero value.
type User struct {
	Email         string     `bson:"email" json:"email"`
	OTP           *string    `bson:"otp,omitempty" json:"-"`
	OTPExpires    *time.Time `bson:"otpExpires,omitempty" json:"-"`
	IsVerified    bool       `bson:"isVerified" json:"isVerified"`
	PaymentStatus string     `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}
