// Package rootfind locates roots of scalar functions inside a bracket, with
// an optional policy that widens the bracket and retries when the initial
// one does not contain a sign change.
package rootfind

import (
	"math"
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Bracket is the closed interval [Lo, Hi].
type Bracket struct {
	Lo float64
	Hi float64
}

// Width returns Hi - Lo.
func (b Bracket) Width() float64 {
	return b.Hi - b.Lo
}

func (b Bracket) valid() bool {
	return !math.IsNaN(b.Lo) && !math.IsNaN(b.Hi) &&
		!math.IsInf(b.Lo, 0) && !math.IsInf(b.Hi, 0) &&
		b.Lo < b.Hi
}

// Tolerance controls convergence. The search stops when the bracket is
// narrower than X plus a few ulps of the estimate, or when |f| <= F.
type Tolerance struct {
	X float64
	F float64
}

// Result describes a located root.
type Result struct {
	Root       float64
	Residual   float64
	Iterations int
	Attempts   int
	Bracket    Bracket
}

const machineEpsilon = 2.220446049250313e-16

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Brent finds a root of f in b with the Brent-Dekker method. Infinite
// function values are accepted at bracket ends and force bisection steps;
// NaN stops the search with ErrNonFinite.
func Brent(f Func, b Bracket, tol Tolerance, maxIter int) (Result, error) {
	if !b.valid() {
		return Result{}, ErrInvalidBracket
	}

	a, x := b.Lo, b.Hi
	fa, fx := f(a), f(x)

	if math.IsNaN(fa) || math.IsNaN(fx) {
		return Result{}, ErrNonFinite
	}

	if fa == 0 {
		return Result{Root: a, Residual: 0, Bracket: b}, nil
	}

	if fx == 0 {
		return Result{Root: x, Residual: 0, Bracket: b}, nil
	}

	if sameSign(fa, fx) {
		return Result{}, ErrNotBracketed
	}

	c, fc := a, fa
	d := x - a
	e := d

	for iter := 1; iter <= maxIter; iter++ {
		if sameSign(fx, fc) {
			c, fc = a, fa
			d = x - a
			e = d
		}

		if math.Abs(fc) < math.Abs(fx) {
			a, x, c = x, c, x
			fa, fx, fc = fx, fc, fx
		}

		tol1 := 2*machineEpsilon*math.Abs(x) + 0.5*tol.X
		xm := 0.5 * (c - x)

		if math.Abs(xm) <= tol1 || fx == 0 || math.Abs(fx) <= tol.F {
			return Result{
				Root:       x,
				Residual:   fx,
				Iterations: iter,
				Bracket:    b,
			}, nil
		}

		interpolate := math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fx) &&
			finite(fa) && finite(fx) && finite(fc)

		if interpolate {
			var p, q float64

			s := fx / fa
			if a == c {
				// secant
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic
				q = fa / fc
				r := fx / fc
				p = s * (2*xm*q*(q-r) - (x-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}

			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)

			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = x, fx

		if math.Abs(d) > tol1 {
			x += d
		} else {
			x += math.Copysign(tol1, xm)
		}

		fx = f(x)
		if math.IsNaN(fx) {
			return Result{}, ErrNonFinite
		}
	}

	return Result{Root: x, Residual: fx, Iterations: maxIter, Bracket: b},
		ErrMaxIterations
}
