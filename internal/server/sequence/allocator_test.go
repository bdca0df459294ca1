package sequence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyCounter struct {
	failures int
	err      error
	calls    int
	last     int64
}

func (f *flakyCounter) Increment(ctx context.Context, year int, prefix string) (*models.Sequence, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	f.last++
	return &models.Sequence{Year: year, LastNumber: f.last, Prefix: prefix}, nil
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-000007", Format("", 2024, 7))
	assert.Equal(t, "CERT-2024-000007", Format("CERT", 2024, 7))
	assert.Equal(t, "2024-1234567", Format("", 2024, 1234567))
}

func TestNext_RetriesRetryableErrors(t *testing.T) {
	c := &flakyCounter{failures: 2, err: fmt.Errorf("busy: %w", dbx.ErrRetryable)}
	a := NewAllocator(c, "", 3)
	a.backoff = 0

	n, err := a.Next(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-000001", n)
	assert.Equal(t, 3, c.calls)
}

func TestNext_ExhaustedRetriesIsConflict(t *testing.T) {
	c := &flakyCounter{failures: 10, err: dbx.ErrRetryable}
	a := NewAllocator(c, "", 0)
	a.backoff = 0

	_, err := a.Next(context.Background(), 2024)
	assert.ErrorIs(t, err, common.ErrAllocationConflict)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, DefaultAttempts, c.calls)
}

func TestNext_NonRetryableFailsFast(t *testing.T) {
	c := &flakyCounter{failures: 1, err: errors.New("db down")}
	a := NewAllocator(c, "", 3)

	_, err := a.Next(context.Background(), 2024)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrAllocationConflict)
	assert.Equal(t, 1, c.calls)
}

func TestNext_ConcurrentCallersGetDistinctGaplessNumbers(t *testing.T) {
	const n = 200
	store := memory.NewStore()
	a := NewAllocator(memory.NewRepositoryManager(store).Sequences(nil), "", 3)

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		got = make(map[string]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := a.Next(context.Background(), 2024)
			assert.NoError(t, err)
			mu.Lock()
			got[num] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, got, n)
	for i := 1; i <= n; i++ {
		_, ok := got[Format("", 2024, int64(i))]
		assert.True(t, ok, "missing number %d", i)
	}

	other, err := a.Next(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-000001", other)
}
