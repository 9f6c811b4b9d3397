// Package common defines shared constants and sentinel errors used across
// the Valentine Funs backend. Callers should use errors.Is to match these
// values; the HTTP layer maps them to status codes in one place.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorStorage  = errors.New("storage error")

	// Validation errors (missing/malformed request input).
	ErrorValidation = errors.New("validation error")

	// OTP flow errors.
	ErrorInvalidOTP = errors.New("invalid or expired otp")

	// Payment flow errors.
	ErrorSignatureMismatch = errors.New("signature mismatch")
	ErrorGateway           = errors.New("gateway error")
)
