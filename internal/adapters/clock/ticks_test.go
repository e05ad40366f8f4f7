package clock

import (
	"context"
	"testing"
	"time"
)

func TestTicksSleepWakesAfterAdvance(t *testing.T) {
	ticks := NewTicks()

	done := make(chan uint64, 1)
	go func() {
		ticks.Sleep(3)
		done <- ticks.Now()
	}()

	waitForSleepers(t, ticks, 1)
	ticks.Advance(2)

	select {
	case <-done:
		t.Fatalf("sleeper woke before its deadline")
	case <-time.After(20 * time.Millisecond):
	}

	ticks.Advance(1)
	select {
	case now := <-done:
		if now != 3 {
			t.Fatalf("expected wake at tick 3, got %d", now)
		}
	case <-time.After(time.Second):
		t.Fatal("sleeper not woken at deadline")
	}
	if n := ticks.Sleepers(); n != 0 {
		t.Fatalf("expected no sleepers, got %d", n)
	}
}

func TestTicksSleepZeroReturns(t *testing.T) {
	ticks := NewTicks()
	ticks.Sleep(0)
	if ticks.Now() != 0 {
		t.Fatalf("expected tick 0, got %d", ticks.Now())
	}
}

func TestTicksDriveAdvances(t *testing.T) {
	ticks := NewTicks()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go ticks.Drive(ctx, time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for ticks.Now() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("drive did not advance, now=%d", ticks.Now())
		}
		time.Sleep(time.Millisecond)
	}
}

func waitForSleepers(t *testing.T, ticks *Ticks, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for ticks.Sleepers() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d sleepers, got %d", n, ticks.Sleepers())
		}
		time.Sleep(time.Millisecond)
	}
}
