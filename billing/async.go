package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/serviceerror"

	"encore.dev/rlog"
)

const defaultSignalTimeout = 5 * time.Second

// runAsync is swapped for an inline runner in tests.
var runAsync = signalInBackground

// signalInBackground delivers a bill lifecycle signal off the request path.
// The bill change is already committed when it runs, so a failed signal is
// logged and dropped.
func signalInBackground(op string, billID uuid.UUID, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), signalTimeout())
		defer cancel()
		_ = deliverSignal(ctx, op, billID, fn)
	}()
}

// deliverSignal runs fn and logs the outcome. A lifecycle workflow that has
// already finished (paid bill, reminder sent) is not an error.
func deliverSignal(ctx context.Context, op string, billID uuid.UUID, fn func(ctx context.Context) error) error {
	err := fn(ctx)

	var notFound *serviceerror.NotFound
	switch {
	case err == nil:
		rlog.Debug("lifecycle signal delivered", "op", op, "bill_id", billID)
		return nil
	case errors.As(err, &notFound):
		rlog.Info("bill lifecycle already finished, signal dropped", "op", op, "bill_id", billID)
		return nil
	default:
		rlog.Error("lifecycle signal failed", "op", op, "bill_id", billID, "error", err)
		return err
	}
}

func signalTimeout() time.Duration {
	if cfg == nil {
		return defaultSignalTimeout
	}
	if secs := cfg.Temporal.SignalTimeoutSeconds(); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultSignalTimeout
}
