package ports

import "errors"

var (
	// ErrQueueFull is returned by TrySend when the queue holds Cap() items.
	ErrQueueFull = errors.New("queue full")
	// ErrQueueEmpty is returned by TryReceive when the queue holds no items.
	ErrQueueEmpty = errors.New("queue empty")
)

// Queue is a fixed-capacity FIFO channel between tasks. Send and Receive
// block indefinitely; there is no timeout or cancellation.
type Queue[T any] interface {
	Send(item T)
	TrySend(item T) error
	Receive() T
	TryReceive() (T, error)
	Len() int
	Cap() int
}
