package rootfind

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Brent", func() {
	tol := Tolerance{X: 1e-14}

	It("should find the root of a quadratic", func() {
		res, err := Brent(func(x float64) float64 { return x*x - 2 },
			Bracket{Lo: 0, Hi: 2}, tol, 100)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", math.Sqrt2, 1e-12))
		Expect(res.Iterations).To(BeNumerically("<", 20))
	})

	It("should find the root of a cubic with a flat region", func() {
		res, err := Brent(func(x float64) float64 { return (x - 1) * (x - 1) * (x - 1) },
			Bracket{Lo: -3, Hi: 4}, tol, 200)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 1, 1e-4))
	})

	It("should return an exact endpoint root", func() {
		res, err := Brent(func(x float64) float64 { return x - 3 },
			Bracket{Lo: 1, Hi: 3}, tol, 100)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.Root).To(Equal(3.0))
	})

	It("should accept an infinite value at the singular end", func() {
		res, err := Brent(func(x float64) float64 { return 1/(1-x) - 5 },
			Bracket{Lo: 0, Hi: 1}, tol, 200)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 0.8, 1e-12))
	})

	It("should stop on a function value tolerance", func() {
		res, err := Brent(func(x float64) float64 { return x - 0.5 },
			Bracket{Lo: 0, Hi: 10}, Tolerance{F: 1}, 100)

		Expect(err).ToNot(HaveOccurred())
		Expect(math.Abs(res.Residual)).To(BeNumerically("<=", 1))
	})

	It("should report a missing sign change", func() {
		_, err := Brent(func(x float64) float64 { return x*x + 1 },
			Bracket{Lo: -1, Hi: 1}, tol, 100)

		Expect(err).To(MatchError(ErrNotBracketed))
	})

	It("should report NaN", func() {
		_, err := Brent(func(x float64) float64 { return math.Log(x) },
			Bracket{Lo: -1, Hi: 2}, tol, 100)

		Expect(err).To(MatchError(ErrNonFinite))
	})

	It("should reject an invalid bracket", func() {
		f := func(x float64) float64 { return x }

		_, err := Brent(f, Bracket{Lo: 1, Hi: -1}, tol, 100)
		Expect(err).To(MatchError(ErrInvalidBracket))

		_, err = Brent(f, Bracket{Lo: math.Inf(-1), Hi: 1}, tol, 100)
		Expect(err).To(MatchError(ErrInvalidBracket))
	})

	It("should give up after the iteration budget", func() {
		_, err := Brent(func(x float64) float64 { return math.Atan(x - 0.3) },
			Bracket{Lo: -1000, Hi: 1000}, Tolerance{}, 2)

		Expect(err).To(MatchError(ErrMaxIterations))
	})
})
