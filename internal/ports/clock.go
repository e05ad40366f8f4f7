package ports

// Clock is the scheduler timebase, counted in ticks.
type Clock interface {
	// Now returns the monotonic tick count.
	Now() uint64
	// Sleep suspends the caller until n ticks have elapsed from now.
	Sleep(n uint64)
}
