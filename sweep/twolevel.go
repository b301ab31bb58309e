package sweep

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/bosestat/physics"
	"github.com/sarchlab/bosestat/rootfind"
)

// OccupationCurve holds the ground and excited occupations of a two-level
// system over a temperature grid.
type OccupationCurve struct {
	Temperatures []float64
	Ground       []float64
	Excited      []float64
}

type twoLevelFunc func(n, beta, eps float64) (float64, float64)

func occupationCurve(
	f twoLevelFunc,
	p physics.Params,
	n float64,
	temps []float64,
) OccupationCurve {
	c := OccupationCurve{
		Temperatures: temps,
		Ground:       make([]float64, len(temps)),
		Excited:      make([]float64, len(temps)),
	}

	for i, t := range temps {
		c.Ground[i], c.Excited[i] = f(n, p.Beta(t), p.Epsilon)
	}

	return c
}

// ClassicalTwoLevel evaluates the classical two-level occupations.
func ClassicalTwoLevel(p physics.Params, n float64, temps []float64) OccupationCurve {
	return occupationCurve(physics.ClassicalTwoLevel, p, n, temps)
}

// QuantumTwoLevel evaluates the Bose two-level occupations.
func QuantumTwoLevel(p physics.Params, n float64, temps []float64) OccupationCurve {
	return occupationCurve(physics.QuantumTwoLevel, p, n, temps)
}

// GroundCurve holds the solved chemical potential and ground occupation of
// the grand two-level model.
type GroundCurve struct {
	Temperatures []float64
	Mu           []float64
	Ground       []float64
	Failures     int
}

// DefaultGrandBracket is the fixed search interval for the grand two-level
// chemical potential.
var DefaultGrandBracket = rootfind.Bracket{Lo: -5, Hi: -0.01}

// GrandTwoLevel solves the grand two-level model for mu at every temperature
// in a fixed bracket, without widening, and derives the ground occupation
// 1/(exp(-beta*mu) - 1). Temperatures where no root lies in the bracket are
// recorded as NaN.
func GrandTwoLevel(
	p physics.Params,
	n float64,
	temps []float64,
	bracket rootfind.Bracket,
	logger logrus.FieldLogger,
) GroundCurve {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	finder := rootfind.NewSolver(
		rootfind.WithTolerance(rootfind.Tolerance{X: 1e-18}),
		rootfind.WithRelativeTolerance(1e-12),
	)

	c := GroundCurve{
		Temperatures: temps,
		Mu:           make([]float64, len(temps)),
		Ground:       make([]float64, len(temps)),
	}

	for i, t := range temps {
		beta := p.Beta(t)
		count := func(mu float64) float64 {
			return physics.TwoLevelMeanCount(mu, beta, p.Epsilon)
		}

		res, err := finder.Solve(n, count, bracket)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"step":        i,
				"temperature": t,
			}).WithError(err).Warn("grand two-level root not found, recording NaN")

			c.Mu[i] = math.NaN()
			c.Ground[i] = math.NaN()
			c.Failures++

			continue
		}

		c.Mu[i] = res.Root
		c.Ground[i] = physics.GroundStateOccupation(res.Root, beta, 0)
	}

	return c
}
