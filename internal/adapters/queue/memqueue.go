package queue

import (
	"fmt"
	"sync"

	"github.com/ghalamif/AegisRT/internal/ports"
)

// MemQueue is a bounded in-memory ring buffer that preserves FIFO ordering.
// Storage is allocated once at construction and never grows.
type MemQueue[T any] struct {
	mu       sync.Mutex
	notEmpty sync.Cond
	notFull  sync.Cond
	slots    []T
	head     int // next slot to read
	count    int
}

func NewMemQueue[T any](capacity int) (*MemQueue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("queue capacity must be > 0, got %d", capacity)
	}
	q := &MemQueue[T]{slots: make([]T, capacity)}
	q.notEmpty.L = &q.mu
	q.notFull.L = &q.mu
	return q, nil
}

// Send enqueues item, waiting as long as necessary for a free slot.
func (q *MemQueue[T]) Send(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.count == len(q.slots) {
		q.notFull.Wait()
	}
	q.pushLocked(item)
}

func (q *MemQueue[T]) TrySend(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count == len(q.slots) {
		return ports.ErrQueueFull
	}
	q.pushLocked(item)
	return nil
}

// Receive dequeues the oldest item, waiting as long as necessary for one.
func (q *MemQueue[T]) Receive() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.count == 0 {
		q.notEmpty.Wait()
	}
	return q.popLocked()
}

func (q *MemQueue[T]) TryReceive() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count == 0 {
		var zero T
		return zero, ports.ErrQueueEmpty
	}
	return q.popLocked(), nil
}

func (q *MemQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

func (q *MemQueue[T]) Cap() int { return len(q.slots) }

func (q *MemQueue[T]) pushLocked(item T) {
	q.slots[(q.head+q.count)%len(q.slots)] = item
	q.count++
	q.notEmpty.Signal()
}

func (q *MemQueue[T]) popLocked() T {
	var zero T
	item := q.slots[q.head]
	q.slots[q.head] = zero
	q.head = (q.head + 1) % len(q.slots)
	q.count--
	q.notFull.Signal()
	return item
}

var _ ports.Queue[int] = (*MemQueue[int])(nil)
