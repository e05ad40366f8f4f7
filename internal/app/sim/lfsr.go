// Package sim synthesizes sensor and diagnostic values from a deterministic
// pseudo-random stream.
package sim

import "errors"

// DefaultSeed starts the maximal-length sequence used by the pipeline.
const DefaultSeed uint16 = 0xACE1

const tapMask uint16 = 0xB400

// ErrZeroSeed is returned for the all-zero state, which the LFSR never leaves.
var ErrZeroSeed = errors.New("lfsr seed must be non-zero")

// LFSR is a 16-bit Galois-form shift register with taps 16,14,13,11.
// Its state is never zero: construction rejects zero and the recurrence
// cannot reach zero from any non-zero state.
//
// An LFSR is not safe for concurrent use; each task owns its own.
type LFSR struct {
	state uint16
}

func NewLFSR(seed uint16) (*LFSR, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &LFSR{state: seed}, nil
}

// Next advances the register and returns the new state.
func (l *LFSR) Next() uint16 {
	lsb := l.state & 1
	l.state >>= 1
	if lsb != 0 {
		l.state ^= tapMask
	}
	return l.state
}

// State returns the current register value without advancing it.
func (l *LFSR) State() uint16 { return l.state }
