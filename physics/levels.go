package physics

import (
	"math"
)

// Levels is an ascending set of single-particle energies. The first entry is
// the ground state.
type Levels []float64

// EvenlySpaced creates n levels 0, spacing, 2*spacing, ...
func EvenlySpaced(n int, spacing float64) Levels {
	levels := make(Levels, n)
	for i := range levels {
		levels[i] = float64(i) * spacing
	}

	return levels
}

// Validate checks that the set is non-empty, non-negative, finite and
// ascending.
func (l Levels) Validate() error {
	if len(l) == 0 {
		return ErrEmptyLevels
	}

	for i, e := range l {
		if e < 0 || math.IsNaN(e) || math.IsInf(e, 0) {
			return &LevelError{Index: i, Value: e, Err: ErrNegativeLevel}
		}

		if i > 0 && e < l[i-1] {
			return &LevelError{Index: i, Value: e, Err: ErrUnsortedLevels}
		}
	}

	return nil
}

// Min returns the ground-state energy. It panics on an empty set; call
// Validate first.
func (l Levels) Min() float64 {
	if len(l) == 0 {
		panic(ErrEmptyLevels)
	}

	return l[0]
}

// Len returns the number of levels.
func (l Levels) Len() int {
	return len(l)
}
