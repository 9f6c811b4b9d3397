package config

import (
	"flag"
	"os"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   MongoDB DSN
//	-n string   database name
//	-s string   JWT HMAC secret key
//	-o int      OTP validity, minutes
//
// Args are filtered with flagx.FilterArgs first so the -c/-config flags
// handled by the JSON loader do not trip this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-s", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	otpValidity := fs.Int("o", int(config.OTPValidity.Minutes()), "otp validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.OTPValidity = time.Duration(*otpValidity) * time.Minute
}
