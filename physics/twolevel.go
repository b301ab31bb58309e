package physics

import "math"

// ClassicalTwoLevel returns the ground and excited occupations of n
// distinguishable particles over a ground level at 0 and an excited level
// at eps.
func ClassicalTwoLevel(n, beta, eps float64) (ground, excited float64) {
	x := math.Exp(-beta * eps)
	excited = n * x / (1 + x)

	return n - excited, excited
}

// QuantumPartitionFunction returns Z = sum_{k=0..n} exp(-beta*k*eps), the
// canonical partition function of n bosons over the two levels.
func QuantumPartitionFunction(n, beta, eps float64) float64 {
	return math.Expm1(-beta*(n+1)*eps) / math.Expm1(-beta*eps)
}

// QuantumTwoLevel returns the ground and excited occupations of n
// indistinguishable bosons over a ground level at 0 and an excited level at
// eps.
func QuantumTwoLevel(n, beta, eps float64) (ground, excited float64) {
	x := math.Exp(-beta * eps)
	excited = n * x * math.Expm1(-beta*n*eps) / math.Expm1(-beta*(n+1)*eps)

	return n - excited, excited
}

// TwoLevelMeanCount is the grand-canonical mean particle count of the
// two-level model as a function of the chemical potential:
//
//	e^{b(eps-mu)} (1 + e^{b eps} - 2 e^{b mu})
//	------------------------------------------
//	  (e^{b(mu-eps)} - 1)^2 (e^{b mu} - 1)^2
func TwoLevelMeanCount(mu, beta, eps float64) float64 {
	num := math.Exp(beta*(eps-mu)) *
		(1 + math.Exp(beta*eps) - 2*math.Exp(beta*mu))

	d1 := math.Expm1(beta * (mu - eps))
	d2 := math.Expm1(beta * mu)

	return num / (d1 * d1 * d2 * d2)
}
