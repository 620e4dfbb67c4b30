package queue

import (
	"context"
	"log/slog"
	"sync"
)

// Queue is a bounded in-memory work queue with a single worker goroutine.
// Items are processed strictly in arrival order, which matters for scan
// events: the reconciliation engine relies on insertion order to break
// timestamp ties.
type Queue[T any] struct {
	ch      chan T
	handler func(ctx context.Context, item T) error
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewQueue[T any](size int, handler func(ctx context.Context, item T) error, logger *slog.Logger) *Queue[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Queue[T]{
		ch:      make(chan T, size),
		handler: handler,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Enqueue adds an item without blocking. Returns false when the queue is
// full; the caller decides whether dropping is acceptable.
func (q *Queue[T]) Enqueue(item T) bool {
	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

// Start launches the worker. Must be called once.
func (q *Queue[T]) Start() {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-q.ctx.Done():
				return
			case item := <-q.ch:
				if err := q.handler(q.ctx, item); err != nil {
					q.logger.Error("queue item failed", "error", err)
				}
			}
		}
	}()
}

// Stop cancels the worker and waits for the in-flight item to finish.
// Items still buffered are discarded.
func (q *Queue[T]) Stop() {
	q.cancel()
	q.wg.Wait()
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}
