// Package queue defines the contract for enqueuing and consuming
// simulation trials. The in-memory implementation is a bounded channel.
package queue

import (
	"context"
	"sync"

	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity = 1024
)

// Trial is the payload type flowing through the queue.
type Trial = model.Trial

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a trial to the queue.
	// Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, t Trial) bool

	// Dequeue returns a channel that receives trials as they become
	// available. The channel is closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Trial

	// Len returns the current number of queued trials.
	Len(ctx context.Context) int

	// Close shuts the queue down; after closing, no new trials can be
	// enqueued and the dequeue channel drains then closes.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	trials   chan Trial
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.trials = make(chan Trial, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)

	return q
}

// Enqueue adds a trial to the queue.
func (q *InMemoryQueue) Enqueue(_ context.Context, t Trial) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordEnqueueError()
		return false
	}

	select {
	case q.trials <- t:
		metrics.UpdateQueueSize(len(q.trials))
		return true
	default:
		metrics.RecordEnqueueError()
		return false
	}
}

// Dequeue returns the receive channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Trial {
	return q.trials
}

// Len returns the current queue length.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.trials)
}

// Close shuts the queue down. Queued trials remain consumable until the
// channel drains.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.closed = true
	close(q.trials)
	return nil
}

// IsClosed reports whether Close has been called.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
