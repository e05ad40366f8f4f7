package clock

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/ghalamif/AegisRT/internal/ports"
)

// Ticks is a tick counter with sleep-until support. It only advances when
// Advance is called, either by a test or by Drive.
type Ticks struct {
	mu       sync.Mutex
	now      uint64
	sleepers []sleeper
}

type sleeper struct {
	wake uint64
	ch   chan struct{}
}

func NewTicks() *Ticks {
	return &Ticks{}
}

func (t *Ticks) Now() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}

// Sleep blocks the caller until the counter has moved n ticks past its value
// at call time. Sleep(0) only yields.
func (t *Ticks) Sleep(n uint64) {
	if n == 0 {
		runtime.Gosched()
		return
	}
	t.mu.Lock()
	s := sleeper{wake: t.now + n, ch: make(chan struct{})}
	t.sleepers = append(t.sleepers, s)
	t.mu.Unlock()
	<-s.ch
}

// Advance moves the counter forward and releases every sleeper that is due.
// Released sleepers are no longer counted by Sleepers once Advance returns.
func (t *Ticks) Advance(n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now += n
	pending := t.sleepers[:0]
	for _, s := range t.sleepers {
		if t.now >= s.wake {
			close(s.ch)
			continue
		}
		pending = append(pending, s)
	}
	for i := len(pending); i < len(t.sleepers); i++ {
		t.sleepers[i] = sleeper{}
	}
	t.sleepers = pending
}

// Sleepers reports how many callers are waiting in Sleep.
func (t *Ticks) Sleepers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sleepers)
}

// Drive advances the counter by one every interval until ctx is done.
func (t *Ticks) Drive(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Advance(1)
		}
	}
}

var _ ports.Clock = (*Ticks)(nil)
