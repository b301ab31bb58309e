package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Two-level models", func() {
	const n = 100.0

	DescribeTable("occupations add up to the particle count",
		func(beta float64) {
			g, e := ClassicalTwoLevel(n, beta, 1)
			Expect(g + e).To(BeNumerically("~", n, 1e-9))

			g, e = QuantumTwoLevel(n, beta, 1)
			Expect(g + e).To(BeNumerically("~", n, 1e-9))
			Expect(e).To(BeNumerically(">=", 0))
		},
		Entry("cold", 10.0),
		Entry("unit", 1.0),
		Entry("hot", 0.2),
	)

	It("should split evenly at high temperature in the classical model", func() {
		g, e := ClassicalTwoLevel(n, 1e-9, 1)

		Expect(g).To(BeNumerically("~", n/2, 1e-6))
		Expect(e).To(BeNumerically("~", n/2, 1e-6))
	})

	It("should condense at low temperature", func() {
		g, _ := ClassicalTwoLevel(n, 10, 1)
		Expect(g).To(BeNumerically(">", 99.99))

		g, _ = QuantumTwoLevel(n, 10, 1)
		Expect(g).To(BeNumerically(">", 99.99))
	})

	It("should match the explicit partition sum", func() {
		beta, eps := 0.7, 1.0

		z := 0.0
		for k := 0; k <= 5; k++ {
			z += math.Exp(-beta * float64(k) * eps)
		}

		Expect(QuantumPartitionFunction(5, beta, eps)).
			To(BeNumerically("~", z, 1e-12))
	})

	It("should evaluate the grand two-level count", func() {
		mu, beta, eps := -0.5, 1.0, 1.0

		num := math.Exp(beta*(eps-mu)) *
			(1 + math.Exp(beta*eps) - 2*math.Exp(beta*mu))
		den := math.Pow(math.Exp(beta*(mu-eps))-1, 2) *
			math.Pow(math.Exp(beta*mu)-1, 2)

		Expect(TwoLevelMeanCount(mu, beta, eps)).
			To(BeNumerically("~", num/den, 1e-9*num/den))
	})
})
