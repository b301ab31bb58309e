package sweep

import (
	"math"
)

// Sample holds the condensate quantities at one temperature.
type Sample struct {
	Step         int
	Temperature  float64
	Beta         float64
	Mu           float64
	N0           float64
	LogN0        float64
	DMuDBeta     float64
	DN0DBeta     float64
	DN0DT        float64
	SpecificHeat float64
	Attempts     int
	Solved       bool
}

func (s *Sample) markUnsolved() {
	nan := math.NaN()

	s.Mu = nan
	s.N0 = nan
	s.LogN0 = nan
	s.DMuDBeta = nan
	s.DN0DBeta = nan
	s.DN0DT = nan
	s.SpecificHeat = nan
	s.Solved = false
}

// Result is the output of a condensate sweep.
type Result struct {
	Samples  []Sample
	Failures int
}

// Series extracts one quantity from every sample, in temperature order.
func (r *Result) Series(field func(Sample) float64) []float64 {
	values := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = field(s)
	}

	return values
}

// Temperatures returns the temperature grid of the sweep.
func (r *Result) Temperatures() []float64 {
	return r.Series(func(s Sample) float64 { return s.Temperature })
}
