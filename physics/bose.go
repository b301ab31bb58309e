package physics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BoseEinstein returns the expected occupation 1/(exp(beta*(e-mu))-1) of a
// level with energy e. Overflow of the exponential gives 0.
func BoseEinstein(beta, e, mu float64) float64 {
	return 1 / math.Expm1(beta*(e-mu))
}

// OccupationSum returns the total expected particle count over all levels.
func OccupationSum(mu, beta float64, levels Levels) float64 {
	sum := 0.0
	for _, e := range levels {
		sum += BoseEinstein(beta, e, mu)
	}

	return sum
}

// Occupations returns the occupation profile, one entry per level.
func Occupations(mu, beta float64, levels Levels) []float64 {
	n := make([]float64, len(levels))
	for i, e := range levels {
		n[i] = BoseEinstein(beta, e, mu)
	}

	return n
}

// GroundStateOccupation returns the occupation of the ground level e0.
func GroundStateOccupation(mu, beta, e0 float64) float64 {
	return BoseEinstein(beta, e0, mu)
}

// fluctuationWeights returns n(1+n) for every level, which equals
// exp(x)/(exp(x)-1)^2 with x = beta*(e-mu).
func fluctuationWeights(mu, beta float64, levels Levels) []float64 {
	w := Occupations(mu, beta, levels)
	for i, n := range w {
		w[i] = n * (1 + n)
	}

	return w
}

// DMuDBeta returns dmu/dbeta at fixed particle count, obtained by implicitly
// differentiating sum_i n_i(mu, beta) = N:
//
//	dmu/dbeta = sum_i w_i (e_i - mu) / (beta * sum_i w_i),  w_i = n_i (1 + n_i)
func DMuDBeta(mu, beta float64, levels Levels) float64 {
	w := fluctuationWeights(mu, beta, levels)

	gaps := make([]float64, len(levels))
	copy(gaps, levels)
	floats.AddConst(-mu, gaps)

	return floats.Dot(w, gaps) / (beta * floats.Sum(w))
}

// DN0DBeta returns d<n0>/dbeta given dmu/dbeta.
func DN0DBeta(mu, beta, e0, dMuDBeta float64) float64 {
	n0 := GroundStateOccupation(mu, beta, e0)
	return -n0 * (1 + n0) * ((e0 - mu) - beta*dMuDBeta)
}

// DN0DT converts d<n0>/dbeta to d<n0>/dT. With kB = 1 this is
// -beta^2 * d<n0>/dbeta.
func (p Params) DN0DT(beta, dN0DBeta float64) float64 {
	return -p.KB * beta * beta * dN0DBeta
}

// SpecificHeat returns the proxy -T * d<n0>/dT.
func SpecificHeat(t, dN0DT float64) float64 {
	return -dN0DT * t
}
