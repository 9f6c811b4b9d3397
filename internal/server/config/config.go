// Package config handles server configuration: defaults, optional JSON
// overlay, .env/environment overlay, and command-line flags, applied in
// that order.
package config

import "time"

// Config holds runtime settings for the Valentine Funs server.
//
// DatabaseDSN may legitimately be empty or still carry template
// placeholders; storage selection treats that as "run on the in-memory
// store" rather than an error.
type Config struct {
	Addr         string
	DatabaseDSN  string
	DatabaseName string

	// SecretKey signs JWTs (HS256). When empty, OTP verification returns
	// the development placeholder token instead of a signed one.
	SecretKey     string
	TokenValidity time.Duration

	OTPValidity time.Duration

	// UnlockAmount is the fixed settlement price in minor currency units,
	// recorded on every verified payment regardless of the amount the
	// order was created for.
	UnlockAmount int64
	Currency     string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// LoadDefaults populates Config with development defaults. With no other
// configuration the server runs fully self-contained: in-memory storage,
// log-only OTP delivery, mock payment gateway.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.DatabaseName = "valentine_funs"
	c.SecretKey = ""
	c.TokenValidity = 24 * time.Hour
	c.OTPValidity = 10 * time.Minute
	c.UnlockAmount = 499
	c.Currency = "INR"
	c.SMTPPort = 587
}

// MailerConfigured reports whether SMTP delivery can be used. Without it
// OTP codes go to the operational log only.
func (c *Config) MailerConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.SMTPFrom != ""
}

// GatewayConfigured reports whether real Razorpay credentials are present.
// Without them order creation and payment verification run in mock mode.
func (c *Config) GatewayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including a .env file),
// and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
