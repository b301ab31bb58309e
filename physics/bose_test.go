package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bose-Einstein occupation", func() {
	It("should match the closed form", func() {
		Expect(BoseEinstein(1, 1, 0)).
			To(BeNumerically("~", 1/(math.E-1), 1e-12))
	})

	It("should be accurate close to the level", func() {
		n := BoseEinstein(1, 0, -1e-10)
		Expect(n).To(BeNumerically("~", 1e10, 1))
	})

	It("should vanish instead of overflowing", func() {
		Expect(BoseEinstein(10, 0, -1000)).To(BeZero())
	})

	It("should sum the occupation profile", func() {
		levels := EvenlySpaced(10, 0.5)
		profile := Occupations(-0.2, 2, levels)

		sum := 0.0
		for _, n := range profile {
			Expect(n).To(BeNumerically(">=", 0))
			sum += n
		}

		Expect(OccupationSum(-0.2, 2, levels)).
			To(BeNumerically("~", sum, 1e-12))
		Expect(GroundStateOccupation(-0.2, 2, levels.Min())).
			To(BeNumerically("==", profile[0]))
	})

	It("should differentiate n0 along a chemical potential path", func() {
		// mu(beta) = -0.5 - 0.1*beta
		muOf := func(beta float64) float64 { return -0.5 - 0.1*beta }
		n0Of := func(beta float64) float64 {
			return GroundStateOccupation(muOf(beta), beta, 0)
		}

		beta, h := 1.3, 1e-6
		numeric := (n0Of(beta+h) - n0Of(beta-h)) / (2 * h)
		analytic := DN0DBeta(muOf(beta), beta, 0, -0.1)

		Expect(analytic).To(BeNumerically("~", numeric, 1e-6*math.Abs(numeric)))
	})

	It("should convert derivatives to temperature", func() {
		p := NaturalUnits()

		Expect(p.DN0DT(2, 3)).To(BeNumerically("~", -12, 1e-12))
		Expect(SpecificHeat(0.5, -12)).To(BeNumerically("~", 6, 1e-12))
	})

	It("should give a non-negative dn0/dbeta for a fixed particle count", func() {
		levels := EvenlySpaced(20, 0.1)
		mu, beta := -0.01, 2.0

		dmu := DMuDBeta(mu, beta, levels)
		Expect(DN0DBeta(mu, beta, levels.Min(), dmu)).
			To(BeNumerically(">=", 0))
	})
})
