package rootfind

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBracketed indicates that the function has the same sign at both
	// ends of the bracket.
	ErrNotBracketed = errors.New("rootfind: root not bracketed")

	// ErrNonFinite indicates that the function returned NaN.
	ErrNonFinite = errors.New("rootfind: function value is not a number")

	// ErrMaxIterations indicates that the iteration budget ran out before
	// the tolerance was met.
	ErrMaxIterations = errors.New("rootfind: maximum iterations exceeded")

	// ErrToleranceNotMet indicates that the bracket collapsed to floating
	// point resolution while the residual was still above the tolerance.
	ErrToleranceNotMet = errors.New("rootfind: residual tolerance not met")

	// ErrInvalidBracket indicates a bracket whose ends are not ordered or
	// not finite.
	ErrInvalidBracket = errors.New("rootfind: invalid bracket")
)

// RootNotFoundError is returned by Solver when no root could be located,
// after all retries.
type RootNotFoundError struct {
	Target   float64
	Bracket  Bracket
	Attempts int
	Err      error
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("root for target %g not found in [%g, %g] after %d attempt(s): %v",
		e.Target, e.Bracket.Lo, e.Bracket.Hi, e.Attempts, e.Err)
}

func (e *RootNotFoundError) Unwrap() error {
	return e.Err
}

// IsRootNotFound reports whether err is, or wraps, a RootNotFoundError.
func IsRootNotFound(err error) bool {
	var rnf *RootNotFoundError
	return errors.As(err, &rnf)
}
