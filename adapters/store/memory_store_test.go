package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashgate/hashgate/core"
)

func TestMemoryStore_PutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "0.0.1001", "challenge text", time.Minute))

	got, err := s.Get(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "challenge text", got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "0.0.1001")
	assert.ErrorIs(t, err, core.ErrChallengeNotFound)
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "0.0.1001", "first", time.Minute))
	require.NoError(t, s.Put(ctx, "0.0.1001", "second", time.Minute))

	got, err := s.Get(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestMemoryStore_LazyExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "0.0.1001", "challenge text", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	// An expired record reads the same as a missing one.
	_, err := s.Get(ctx, "0.0.1001")
	assert.ErrorIs(t, err, core.ErrChallengeNotFound)

	_, err = s.Take(ctx, "0.0.1001")
	assert.ErrorIs(t, err, core.ErrChallengeNotFound)
}

func TestMemoryStore_TakeConsumes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "0.0.1001", "challenge text", time.Minute))

	got, err := s.Take(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "challenge text", got)

	_, err = s.Get(ctx, "0.0.1001")
	assert.ErrorIs(t, err, core.ErrChallengeNotFound)
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "0.0.1001", "challenge text", time.Minute))
	require.NoError(t, s.Delete(ctx, "0.0.1001"))
	require.NoError(t, s.Delete(ctx, "0.0.1001"))

	_, err := s.Get(ctx, "0.0.1001")
	assert.ErrorIs(t, err, core.ErrChallengeNotFound)
}

func TestMemoryStore_ConcurrentTake(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "0.0.1001", "challenge text", time.Minute))

	const workers = 16

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Take(ctx, "0.0.1001"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one Take should succeed")
}
