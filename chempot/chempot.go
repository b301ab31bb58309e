// Package chempot solves for the chemical potential of an ideal Bose gas
// with a fixed particle count over a discrete level set.
//
// The chemical potential mu is the root of
//
//	sum_i 1/(exp(beta*(e_i - mu)) - 1) = N
//
// on (-inf, min(e)). The occupation sum grows without bound as mu approaches
// the ground level from below and vanishes as mu goes to -inf, so the root is
// searched in [hi - W, hi] with hi = min(e) - Guard. When that window does
// not bracket the root, the window is widened and the search retried.
package chempot

import (
	"errors"
	"fmt"
	"math"

	"github.com/sarchlab/bosestat/physics"
	"github.com/sarchlab/bosestat/rootfind"
)

// ErrInvalidInput indicates a particle count, inverse temperature or level
// set that cannot be solved for. Callers should treat it as fatal.
var ErrInvalidInput = errors.New("chempot: invalid input")

// Config holds the solver settings.
type Config struct {
	// Guard keeps the upper bracket end below the ground level, where the
	// occupation sum is singular.
	Guard float64 `mapstructure:"guard" yaml:"guard"`

	// Window is the initial bracket width.
	Window float64 `mapstructure:"window" yaml:"window"`

	// WidenFactor multiplies the window on each retry.
	WidenFactor float64 `mapstructure:"widen_factor" yaml:"widen_factor"`

	// MaxRetries is the number of widened attempts after the first one.
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries"`

	// RelTol is the accepted residual relative to N.
	RelTol float64 `mapstructure:"rel_tol" yaml:"rel_tol"`

	// XTol is the absolute tolerance on mu.
	XTol float64 `mapstructure:"x_tol" yaml:"x_tol"`

	// MaxIterations bounds each bracketed search.
	MaxIterations int `mapstructure:"max_iterations" yaml:"max_iterations"`
}

// DefaultConfig returns the stock settings:
// a 1e-10 guard, a window of 100 widened once to 1000.
func DefaultConfig() Config {
	return Config{
		Guard:         1e-10,
		Window:        100,
		WidenFactor:   10,
		MaxRetries:    1,
		RelTol:        1e-12,
		XTol:          1e-18,
		MaxIterations: 500,
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	switch {
	case !(c.Guard > 0):
		return fmt.Errorf("%w: guard must be positive, got %g", ErrInvalidInput, c.Guard)
	case !(c.Window > 0):
		return fmt.Errorf("%w: window must be positive, got %g", ErrInvalidInput, c.Window)
	case !(c.WidenFactor > 1):
		return fmt.Errorf("%w: widen factor must exceed 1, got %g", ErrInvalidInput, c.WidenFactor)
	case c.MaxRetries < 0:
		return fmt.Errorf("%w: max retries must not be negative, got %d", ErrInvalidInput, c.MaxRetries)
	case c.RelTol < 0 || c.XTol < 0:
		return fmt.Errorf("%w: tolerances must not be negative", ErrInvalidInput)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidInput, c.MaxIterations)
	}

	return nil
}

// Solution is a solved chemical potential.
type Solution struct {
	Mu         float64
	Residual   float64
	Attempts   int
	Iterations int
}

// Solver finds the chemical potential. It holds no state between calls.
type Solver struct {
	config Config
	finder *rootfind.Solver
}

// NewSolver creates a Solver. Extra options are passed to the underlying
// root finder, for example rootfind.WithOnRetry.
func NewSolver(config Config, opts ...rootfind.Option) *Solver {
	finderOpts := []rootfind.Option{
		rootfind.WithTolerance(rootfind.Tolerance{X: config.XTol}),
		rootfind.WithRelativeTolerance(config.RelTol),
		rootfind.WithMaxIterations(config.MaxIterations),
		rootfind.WithMaxRetries(config.MaxRetries),
		rootfind.WithWiden(rootfind.KeepUpper(config.WidenFactor)),
	}

	return &Solver{
		config: config,
		finder: rootfind.NewSolver(append(finderOpts, opts...)...),
	}
}

// Config returns the solver settings.
func (s *Solver) Config() Config {
	return s.config
}

// FindMu returns mu such that the total occupation equals n.
func (s *Solver) FindMu(n, beta float64, levels physics.Levels) (float64, error) {
	sol, err := s.Solve(n, beta, levels)
	if err != nil {
		return math.NaN(), err
	}

	return sol.Mu, nil
}

// Solve is FindMu with the solver diagnostics attached.
func (s *Solver) Solve(n, beta float64, levels physics.Levels) (Solution, error) {
	err := checkInput(n, beta, levels)
	if err != nil {
		return Solution{Mu: math.NaN()}, err
	}

	e0 := levels.Min()
	hi := e0 - s.config.Guard
	bracket := rootfind.Bracket{Lo: hi - s.config.Window, Hi: hi}

	occupation := func(mu float64) float64 {
		return physics.OccupationSum(mu, beta, levels)
	}

	res, err := s.finder.Solve(n, occupation, bracket)
	if err != nil {
		return Solution{Mu: math.NaN(), Attempts: res.Attempts}, err
	}

	return Solution{
		Mu:         res.Root,
		Residual:   res.Residual,
		Attempts:   res.Attempts,
		Iterations: res.Iterations,
	}, nil
}

func checkInput(n, beta float64, levels physics.Levels) error {
	if !(n > 0) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: particle count %g", ErrInvalidInput, n)
	}

	if !(beta > 0) || math.IsInf(beta, 0) {
		return fmt.Errorf("%w: inverse temperature %g", ErrInvalidInput, beta)
	}

	err := levels.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}
