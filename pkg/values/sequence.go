// Package values holds the ordered, growable collection of parsed values a run works on.
package values

import (
	"math/big"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/arith/internal/sentinel"
)

// growthFactor is the multiplier applied to the capacity when an append finds the sequence full.
const growthFactor = 2

// Sequence is an ordered collection of values, in insertion order.
// Its backing storage starts at the initial capacity and doubles when full,
// so appends are amortized constant time.
type Sequence struct {
	vals []*big.Float
}

// NewSequence creates an empty sequence with the given initial capacity.
func NewSequence(initialCapacity int) (*Sequence, error) {
	if initialCapacity < 1 {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidCapacity, "got %d", initialCapacity)
	}

	return &Sequence{vals: make([]*big.Float, 0, initialCapacity)}, nil
}

// Append adds v at the end of the sequence.
func (s *Sequence) Append(v *big.Float) {
	if len(s.vals) == cap(s.vals) {
		grown := make([]*big.Float, len(s.vals), cap(s.vals)*growthFactor)
		copy(grown, s.vals)
		s.vals = grown
	}

	s.vals = append(s.vals, v)
}

// Len returns the number of values in the sequence.
func (s *Sequence) Len() int { return len(s.vals) }

// Cap returns the capacity of the backing storage.
func (s *Sequence) Cap() int { return cap(s.vals) }

// At returns the i-th value in insertion order.
func (s *Sequence) At(i int) *big.Float { return s.vals[i] }

// Values returns the values in insertion order. The slice aliases the sequence
// and must not be modified.
func (s *Sequence) Values() []*big.Float { return s.vals }

// Clone returns a copy of the ordering. Values themselves are shared, they are never mutated.
func (s *Sequence) Clone() []*big.Float {
	out := make([]*big.Float, len(s.vals))
	copy(out, s.vals)

	return out
}

// Compact shrinks the backing storage to the current length.
// An empty sequence keeps its storage.
func (s *Sequence) Compact() {
	if len(s.vals) == 0 || len(s.vals) == cap(s.vals) {
		return
	}

	compacted := make([]*big.Float, len(s.vals))
	copy(compacted, s.vals)
	s.vals = compacted
}

// Reset drops every value so the memory can be reclaimed.
func (s *Sequence) Reset() { s.vals = nil }
