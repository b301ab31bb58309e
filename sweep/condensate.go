package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/bosestat/chempot"
	"github.com/sarchlab/bosestat/physics"
	"github.com/sarchlab/bosestat/rootfind"
)

// ErrInvalidConfig indicates a sweep that cannot start.
var ErrInvalidConfig = errors.New("sweep: invalid configuration")

// Builder can be used to build a condensate Analysis.
type Builder struct {
	params       physics.Params
	n            float64
	levels       physics.Levels
	temperatures []float64
	solver       *chempot.Solver
	logger       logrus.FieldLogger
	recorders    []Recorder
}

// MakeBuilder creates a builder with natural units and the default solver.
func MakeBuilder() Builder {
	return Builder{
		params: physics.NaturalUnits(),
	}
}

// WithParams sets the physical constants.
func (b Builder) WithParams(p physics.Params) Builder {
	b.params = p
	return b
}

// WithParticleCount sets the total particle count N.
func (b Builder) WithParticleCount(n float64) Builder {
	b.n = n
	return b
}

// WithLevels sets the energy levels.
func (b Builder) WithLevels(levels physics.Levels) Builder {
	b.levels = levels
	return b
}

// WithTemperatures sets the temperature grid.
func (b Builder) WithTemperatures(temps []float64) Builder {
	b.temperatures = temps
	return b
}

// WithSolver sets the chemical-potential solver.
func (b Builder) WithSolver(s *chempot.Solver) Builder {
	b.solver = s
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(l logrus.FieldLogger) Builder {
	b.logger = l
	return b
}

// WithRecorder adds a recorder that receives every sample.
func (b Builder) WithRecorder(r Recorder) Builder {
	b.recorders = append(b.recorders, r)
	return b
}

func (b Builder) validate() error {
	err := b.params.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !(b.n > 0) || math.IsInf(b.n, 0) {
		return fmt.Errorf("%w: particle count %g", ErrInvalidConfig, b.n)
	}

	err = b.levels.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(b.temperatures) == 0 {
		return fmt.Errorf("%w: no temperatures", ErrInvalidConfig)
	}

	for i, t := range b.temperatures {
		if !(t > 0) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: temperature %d is %g",
				ErrInvalidConfig, i, t)
		}
	}

	return nil
}

// Build checks the configuration and creates the Analysis.
func (b Builder) Build() (*Analysis, error) {
	err := b.validate()
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		params:       b.params,
		n:            b.n,
		levels:       b.levels,
		temperatures: b.temperatures,
		solver:       b.solver,
		logger:       b.logger,
		recorders:    b.recorders,
	}

	if a.solver == nil {
		a.solver = chempot.NewSolver(chempot.DefaultConfig())
	}

	if a.logger == nil {
		a.logger = logrus.StandardLogger()
	}

	return a, nil
}

// Analysis sweeps the many-level Bose gas over temperature and derives the
// ground-state occupation, its temperature derivative and the specific-heat
// proxy from the solved chemical potential.
type Analysis struct {
	params       physics.Params
	n            float64
	levels       physics.Levels
	temperatures []float64
	solver       *chempot.Solver
	logger       logrus.FieldLogger
	recorders    []Recorder
}

// Run processes every temperature in order.
func (a *Analysis) Run() (*Result, error) {
	result := &Result{
		Samples: make([]Sample, 0, len(a.temperatures)),
	}

	a.logger.WithFields(logrus.Fields{
		"particles":    a.n,
		"levels":       a.levels.Len(),
		"temperatures": len(a.temperatures),
	}).Info("condensate sweep started")

	for i, t := range a.temperatures {
		s, err := a.sample(i, t)
		if err != nil {
			return result, err
		}

		if !s.Solved {
			result.Failures++
		}

		result.Samples = append(result.Samples, s)

		for _, r := range a.recorders {
			r.RecordSample(s)
		}
	}

	a.logger.WithFields(logrus.Fields{
		"samples":  len(result.Samples),
		"failures": result.Failures,
	}).Info("condensate sweep finished")

	return result, nil
}

func (a *Analysis) sample(i int, t float64) (Sample, error) {
	beta := a.params.Beta(t)
	s := Sample{Step: i, Temperature: t, Beta: beta}

	sol, err := a.solver.Solve(a.n, beta, a.levels)
	if err != nil {
		if !rootfind.IsRootNotFound(err) {
			return s, fmt.Errorf("sample %d (T=%g): %w", i, t, err)
		}

		a.logger.WithFields(logrus.Fields{
			"step":        i,
			"temperature": t,
			"beta":        beta,
		}).WithError(err).Warn("chemical potential not found, recording NaN")

		s.Attempts = sol.Attempts
		s.markUnsolved()

		return s, nil
	}

	e0 := a.levels.Min()

	s.Mu = sol.Mu
	s.Attempts = sol.Attempts
	s.Solved = true
	s.N0 = physics.GroundStateOccupation(sol.Mu, beta, e0)
	s.LogN0 = math.Log(s.N0)
	s.DMuDBeta = physics.DMuDBeta(sol.Mu, beta, a.levels)
	s.DN0DBeta = physics.DN0DBeta(sol.Mu, beta, e0, s.DMuDBeta)
	s.DN0DT = a.params.DN0DT(beta, s.DN0DBeta)
	s.SpecificHeat = physics.SpecificHeat(t, s.DN0DT)

	a.logger.WithFields(logrus.Fields{
		"step":        i,
		"temperature": t,
		"mu":          s.Mu,
		"n0":          s.N0,
		"attempts":    s.Attempts,
	}).Debug("sample solved")

	return s, nil
}
