package debounce

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Result[T]) Result[T] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
		return Result[T]{}
	}
}

func TestScheduler_LastQueryWins(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(20*time.Millisecond, func(_ context.Context, q string) (string, error) {
		runs.Add(1)
		return strings.ToUpper(q), nil
	})

	ctx := context.Background()
	first := s.Submit(ctx, "g")
	second := s.Submit(ctx, "gi")
	third := s.Submit(ctx, "git")

	r1 := receive(t, first)
	r2 := receive(t, second)
	r3 := receive(t, third)

	assert.True(t, r1.Superseded())
	assert.True(t, r2.Superseded())
	require.NoError(t, r3.Err)
	assert.Equal(t, "GIT", r3.Value)
	assert.Equal(t, "git", r3.Query)
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, uint64(3), s.Generation())
}

func TestScheduler_CancelsInFlightRun(t *testing.T) {
	started := make(chan struct{})
	var once sync.Once

	s := NewScheduler(time.Millisecond, func(ctx context.Context, q string) (string, error) {
		if q == "slow" {
			once.Do(func() { close(started) })
			<-ctx.Done()
			return "", ctx.Err()
		}
		return q, nil
	})

	ctx := context.Background()
	slow := s.Submit(ctx, "slow")
	<-started

	fast := s.Submit(ctx, "fast")

	rSlow := receive(t, slow)
	rFast := receive(t, fast)

	assert.True(t, rSlow.Superseded())
	require.NoError(t, rFast.Err)
	assert.Equal(t, "fast", rFast.Value)
}

func TestScheduler_SequentialSubmissionsAllDeliver(t *testing.T) {
	s := NewScheduler(time.Millisecond, func(_ context.Context, q string) (int, error) {
		return len(q), nil
	})

	for _, q := range []string{"a", "ab", "abc"} {
		r := receive(t, s.Submit(context.Background(), q))
		require.NoError(t, r.Err)
		assert.Equal(t, len(q), r.Value)
	}
}

func TestScheduler_Close(t *testing.T) {
	s := NewScheduler(time.Hour, func(_ context.Context, q string) (string, error) {
		return q, nil
	})

	pending := s.Submit(context.Background(), "never")
	s.Close()

	assert.True(t, receive(t, pending).Superseded())
	assert.True(t, receive(t, s.Submit(context.Background(), "late")).Superseded())
}

func TestNewScheduler_DefaultDelay(t *testing.T) {
	s := NewScheduler[string](0, nil)
	assert.Equal(t, DefaultDelay, s.delay)
}
