package bill

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
)

const (
	// maxNumberAttempts bounds the retries on bill number conflicts.
	maxNumberAttempts = 5
	// fallbackModulo keeps timestamp sequences within four digits.
	fallbackModulo = 10000
)

// billSequence is the first candidate sequence of a new bill.
type billSequence struct {
	start    int64
	fallback bool
}

// attempt returns the sequence to try after n conflicts. Timestamp fallbacks
// wrap around so the number keeps four digits.
func (s billSequence) attempt(n int64) int64 {
	if s.fallback {
		return (s.start + n) % fallbackModulo
	}
	return s.start + n
}

// FormatBillNumber renders <prefix>-<year>-<sequence padded to 4 digits>.
func FormatBillNumber(prefix string, year int, sequence int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, sequence)
}

// nextSequence proposes the next bill sequence as the bill count plus one.
// When counting fails it falls back to the last four digits of the current
// unix time in milliseconds; the unique constraint on the number still
// guards against duplicates.
func (b *business) nextSequence(ctx context.Context, now time.Time) billSequence {
	count, err := b.billRepo.CountBills(ctx)
	if err != nil {
		fallback := now.UnixMilli() % fallbackModulo
		rlog.Warn("failed to count bills, using timestamp bill number", "error", err, "sequence", fallback)
		return billSequence{start: fallback, fallback: true}
	}
	return billSequence{start: count + 1}
}
