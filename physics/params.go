// Package physics provides the closed-form statistics of non-interacting
// bosons: Bose-Einstein occupations over a discrete level set, the
// derivatives needed for the condensate analysis, and the two-level models.
package physics

import (
	"log"
	"math"
)

// Params holds the physical constants used by every calculation. There are
// no package-level constants; callers pass Params explicitly.
type Params struct {
	// KB is the Boltzmann constant.
	KB float64

	// Epsilon is the energy of the excited state in the two-level models and
	// the energy unit elsewhere.
	Epsilon float64
}

// NaturalUnits returns Params with kB = 1 and epsilon = 1.
func NaturalUnits() Params {
	return Params{KB: 1, Epsilon: 1}
}

// Beta converts a temperature to the inverse temperature 1/(kB*T).
func (p Params) Beta(t float64) float64 {
	if p.KB == 0 {
		log.Panic("Boltzmann constant cannot be 0")
	}

	return 1 / (p.KB * t)
}

// Temperature converts an inverse temperature back to a temperature.
func (p Params) Temperature(beta float64) float64 {
	if p.KB == 0 {
		log.Panic("Boltzmann constant cannot be 0")
	}

	return 1 / (p.KB * beta)
}

// Validate checks that the constants are usable.
func (p Params) Validate() error {
	if !(p.KB > 0) || math.IsInf(p.KB, 0) {
		return &ParamError{Name: "kB", Value: p.KB}
	}

	if !(p.Epsilon > 0) || math.IsInf(p.Epsilon, 0) {
		return &ParamError{Name: "epsilon", Value: p.Epsilon}
	}

	return nil
}
