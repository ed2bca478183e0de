// Package dice provides the uniform integer sources the build loop rolls.
package dice

import (
	"fmt"
	"math/rand/v2"
)

// Source draws uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed draws a random one, so
// repeated runs differ; any other seed reproduces the same rolls.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence is a Source that replays fixed values, cycling once exhausted.
// It exists so tests can drive the build loop deterministically.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence over values. It panics if values is empty.
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("dice: empty sequence")
	}
	return &Sequence{values: values}
}

// IntN returns the next value in the sequence. It panics if the value is
// outside [0, n), which indicates a broken test fixture.
func (s *Sequence) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("dice: sequence value %d out of range [0, %d)", v, n))
	}
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}
