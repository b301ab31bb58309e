package physics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLevels indicates a level set without any level.
	ErrEmptyLevels = errors.New("physics: empty energy level set")

	// ErrUnsortedLevels indicates a level set that is not ascending.
	ErrUnsortedLevels = errors.New("physics: energy levels not sorted ascending")

	// ErrNegativeLevel indicates a level below zero or a non-finite level.
	ErrNegativeLevel = errors.New("physics: energy level negative or not finite")

	// ErrInvalidParam indicates a physical constant outside its valid range.
	ErrInvalidParam = errors.New("physics: parameter out of valid range")
)

// ParamError reports the constant that failed validation.
type ParamError struct {
	Name  string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g", ErrInvalidParam, e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}

// LevelError reports which level broke the level-set invariant.
type LevelError struct {
	Index int
	Value float64
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("%s (level %d = %g)", e.Err, e.Index, e.Value)
}

func (e *LevelError) Unwrap() error {
	return e.Err
}
