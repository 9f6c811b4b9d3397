package notifier

import (
	"context"

	"github.com/rwi001/Valentine-Funs/internal/logging"
)

// LogNotifier writes the code to the log instead of sending mail. It is
// for development only; the code never reaches the client over the API.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("module", "notifier")}
}

func (n *LogNotifier) Deliver(ctx context.Context, to string, code string) (bool, error) {
	n.logger.Info(ctx, "email transport not configured, otp logged only", "to", to, "otp", code)
	return false, nil
}
