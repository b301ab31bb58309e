// Package sweep evaluates the boson models over a grid of temperatures.
//
// Every temperature is processed independently and in order. A sample whose
// chemical potential cannot be found is kept in the output with NaN values
// so that the remaining sweep is unaffected and plots show a gap.
package sweep

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}
