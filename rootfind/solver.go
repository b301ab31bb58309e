package rootfind

import (
	"errors"
	"math"
)

// Config holds the solver settings.
type Config struct {
	// Tolerance is the absolute convergence tolerance.
	Tolerance Tolerance

	// RelativeF adds a residual tolerance proportional to the target:
	// the search also stops when |f(x) - target| <= RelativeF*|target|.
	RelativeF float64

	// MaxIterations bounds each bracketed search.
	MaxIterations int

	// MaxRetries is the number of times the bracket is widened after the
	// first attempt fails to bracket a root. Default: 0
	MaxRetries int

	// Widen produces the bracket for the next attempt.
	Widen WidenFunc

	// OnRetry is called before each retry.
	OnRetry func(attempt int, b Bracket, err error)
}

// DefaultConfig returns a Config with tolerances comparable to common
// numerical libraries and no retries.
func DefaultConfig() Config {
	return Config{
		Tolerance:     Tolerance{X: 2e-12},
		MaxIterations: 500,
		MaxRetries:    0,
		Widen:         KeepUpper(10),
	}
}

// Option is a functional option for configuring a Solver.
type Option func(*Config)

// WithTolerance sets the absolute tolerance.
func WithTolerance(t Tolerance) Option {
	return func(c *Config) {
		if t.X >= 0 && t.F >= 0 {
			c.Tolerance = t
		}
	}
}

// WithRelativeTolerance sets the residual tolerance relative to the target.
func WithRelativeTolerance(rel float64) Option {
	return func(c *Config) {
		if rel >= 0 {
			c.RelativeF = rel
		}
	}
}

// WithMaxIterations sets the iteration budget of each search.
func WithMaxIterations(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxIterations = n
		}
	}
}

// WithMaxRetries sets how many times the bracket may be widened.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.MaxRetries = n
		}
	}
}

// WithWiden sets the widening strategy.
func WithWiden(w WidenFunc) Option {
	return func(c *Config) {
		if w != nil {
			c.Widen = w
		}
	}
}

// WithOnRetry sets a callback invoked before each retry.
func WithOnRetry(fn func(attempt int, b Bracket, err error)) Option {
	return func(c *Config) {
		c.OnRetry = fn
	}
}

// Solver is a bracketed root finder wrapped in a widen-and-retry policy.
// It is stateless between calls.
type Solver struct {
	config Config
}

// NewSolver creates a Solver with the given options.
func NewSolver(opts ...Option) *Solver {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Solver{config: config}
}

// Config returns the solver settings.
func (s *Solver) Config() Config {
	return s.config
}

// Solve finds x in the bracket such that eval(x) = target. Only a missing
// sign change triggers a retry with a wider bracket; any other failure is
// returned at once. When a residual tolerance is set, a root whose residual
// exceeds it is a failure. All failures are reported as *RootNotFoundError.
func (s *Solver) Solve(target float64, eval Func, initial Bracket) (Result, error) {
	g := func(x float64) float64 { return eval(x) - target }

	tol := s.config.Tolerance
	tol.F = math.Max(tol.F, s.config.RelativeF*math.Abs(target))

	b := initial
	for attempt := 1; ; attempt++ {
		res, err := Brent(g, b, tol, s.config.MaxIterations)
		if err == nil && tol.F > 0 && !(math.Abs(res.Residual) <= tol.F) {
			err = ErrToleranceNotMet
		}

		if err == nil {
			res.Attempts = attempt
			return res, nil
		}

		if !errors.Is(err, ErrNotBracketed) || attempt > s.config.MaxRetries {
			return Result{Attempts: attempt, Bracket: b}, &RootNotFoundError{
				Target:   target,
				Bracket:  b,
				Attempts: attempt,
				Err:      err,
			}
		}

		if s.config.OnRetry != nil {
			s.config.OnRetry(attempt, b, err)
		}

		b = s.config.Widen(b, attempt)
	}
}
