package queue

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesInOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	q := NewQueue(16, func(_ context.Context, item int) error {
		mu.Lock()
		got = append(got, item)
		n := len(got)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
		return nil
	}, discard())

	require.True(t, q.Enqueue(1))
	require.True(t, q.Enqueue(2))
	require.True(t, q.Enqueue(3))

	q.Start()
	defer q.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queue did not drain in time")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestQueueEnqueueFullReturnsFalse(t *testing.T) {
	t.Parallel()

	q := NewQueue(1, func(_ context.Context, _ int) error { return nil }, discard())

	assert.True(t, q.Enqueue(1))
	assert.False(t, q.Enqueue(2))
	assert.Equal(t, 1, q.Len())
}

func TestQueueStopWaitsForWorker(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	q := NewQueue(1, func(_ context.Context, _ int) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		return nil
	}, discard())

	require.True(t, q.Enqueue(1))
	q.Start()
	<-started
	q.Stop()
}
