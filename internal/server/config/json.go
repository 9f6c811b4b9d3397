package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON config file. Durations are
// given as integer minutes, matching the flag forms.
type JsonConfig struct {
	Addr              string `json:"addr"`
	DatabaseDSN       string `json:"database_dsn"`
	DatabaseName      string `json:"database_name"`
	SecretKey         string `json:"secret_key"`
	TokenValidityMin  int    `json:"token_validity_minutes"`
	OTPValidityMin    int    `json:"otp_validity_minutes"`
	UnlockAmount      int64  `json:"unlock_amount"`
	Currency          string `json:"currency"`
	RazorpayKeyID     string `json:"razorpay_key_id"`
	RazorpayKeySecret string `json:"razorpay_key_secret"`
	SMTPHost          string `json:"smtp_host"`
	SMTPPort          int    `json:"smtp_port"`
	SMTPUser          string `json:"smtp_user"`
	SMTPPass          string `json:"smtp_pass"`
	SMTPFrom          string `json:"smtp_from"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. Absent file path means nothing to load; an unreadable
// or invalid file panics, since running with half-applied configuration
// is worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DatabaseName != "" {
		config.DatabaseName = c.DatabaseName
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMin > 0 {
		config.TokenValidity = time.Duration(c.TokenValidityMin) * time.Minute
	}
	if c.OTPValidityMin > 0 {
		config.OTPValidity = time.Duration(c.OTPValidityMin) * time.Minute
	}
	if c.UnlockAmount > 0 {
		config.UnlockAmount = c.UnlockAmount
	}
	if c.Currency != "" {
		config.Currency = c.Currency
	}
	if c.RazorpayKeyID != "" {
		config.RazorpayKeyID = c.RazorpayKeyID
	}
	if c.RazorpayKeySecret != "" {
		config.RazorpayKeySecret = c.RazorpayKeySecret
	}
	if c.SMTPHost != "" {
		config.SMTPHost = c.SMTPHost
	}
	if c.SMTPPort > 0 {
		config.SMTPPort = c.SMTPPort
	}
	if c.SMTPUser != "" {
		config.SMTPUser = c.SMTPUser
	}
	if c.SMTPPass != "" {
		config.SMTPPass = c.SMTPPass
	}
	if c.SMTPFrom != "" {
		config.SMTPFrom = c.SMTPFrom
	}
}
