// Package logging defines the structured-logging interface used by the
// server. The only real implementation wraps log/slog; services depend on
// the interface so tests can inject a silent logger.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key-value pairs:
//
//	log.Info(ctx, "otp issued", "email", email, "expires", exp)
type Logger interface {
	// Debug logs development-level detail (e.g. OTP codes in log-only mode).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, such as falling back
	// to in-memory storage.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
