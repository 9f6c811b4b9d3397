package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded first; real environment variables
// win over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString(&config.Addr, "ADDR")
	setString(&config.DatabaseDSN, "MONGODB_URI")
	setString(&config.DatabaseName, "DB_NAME")
	setString(&config.SecretKey, "SECRET_KEY")

	if v, ok := lookupInt("OTP_MINUTES"); ok {
		config.OTPValidity = time.Duration(v) * time.Minute
	}
	if v, ok := lookupInt("UNLOCK_AMOUNT"); ok {
		config.UnlockAmount = int64(v)
	}
	setString(&config.Currency, "CURRENCY")

	setString(&config.RazorpayKeyID, "RAZORPAY_KEY_ID")
	setString(&config.RazorpayKeySecret, "RAZORPAY_KEY_SECRET")

	setString(&config.SMTPHost, "SMTP_HOST")
	if v, ok := lookupInt("SMTP_PORT"); ok {
		config.SMTPPort = v
	}
	setString(&config.SMTPUser, "SMTP_USER")
	setString(&config.SMTPPass, "SMTP_PASS")
	setString(&config.SMTPFrom, "SMTP_FROM")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func lookupInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
