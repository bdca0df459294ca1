package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// DefaultAttempts bounds how often a retryable counter failure is retried.
const DefaultAttempts = 3

// Counter is the store-side atomic increment the allocator relies on.
type Counter interface {
	Increment(ctx context.Context, year int, prefix string) (*models.Sequence, error)
}

// Allocator hands out certificate numbers. Each call commits its increment
// on its own, so a number is burned even if the issuance that requested it
// fails later: gaps are possible, duplicates are not.
type Allocator struct {
	counter  Counter
	prefix   string
	attempts int
	backoff  time.Duration
}

// NewAllocator returns an Allocator. prefix is stored on a year's counter
// when that counter is first created; attempts < 1 means DefaultAttempts.
func NewAllocator(counter Counter, prefix string, attempts int) *Allocator {
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	return &Allocator{counter: counter, prefix: prefix, attempts: attempts, backoff: 10 * time.Millisecond}
}

// Next returns the next number for year, e.g. "2024-000007".
func (a *Allocator) Next(ctx context.Context, year int) (string, error) {
	var lastErr error
	for i := 0; i < a.attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(a.backoff * time.Duration(i)):
			}
		}

		seq, err := a.counter.Increment(ctx, year, a.prefix)
		if err == nil {
			return Format(seq.Prefix, seq.Year, seq.LastNumber), nil
		}
		if !dbx.IsRetryable(err) {
			return "", fmt.Errorf("allocate number for %d: %w", year, err)
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: year %d after %d attempts: %v", common.ErrAllocationConflict, year, a.attempts, lastErr)
}

// Format renders a certificate number. The sequence is zero-padded to six
// digits; an empty prefix is omitted.
func Format(prefix string, year int, n int64) string {
	if prefix == "" {
		return fmt.Sprintf("%d-%06d", year, n)
	}
	return fmt.Sprintf("%s-%d-%06d", prefix, year, n)
}
