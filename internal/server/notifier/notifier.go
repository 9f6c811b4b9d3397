// Package notifier delivers OTP codes to users. The SMTP mailer is the
// real transport; when mail settings are absent a log-only fallback keeps
// development flows working without leaking the code into API responses.
package notifier

import "context"

// Notifier sends a login code to a recipient. The delivered result is
// false when the code was only written to the operational log, so the
// caller can phrase its response accordingly.
type Notifier interface {
	Deliver(ctx context.Context, to string, code string) (delivered bool, err error)
}
