package vecmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint satisfied by every component type a vector can hold.
//
// All Scalar types provide equality, an additive identity (the zero value),
// negation, the four arithmetic operators and the multiplicative identity 1.
// Overflow, rounding and division by zero behave exactly as they do for T.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Sqrt returns the square root of x.
//
// Floating-point scalars get the correctly rounded root. Integer scalars get
// the floor of the exact root, and 0 for negative x.
func Sqrt[T Scalar](x T) T {
	if !isInteger[T]() {
		return T(math.Sqrt(float64(x)))
	}

	if x <= 0 {
		return 0
	}

	r := T(math.Sqrt(float64(x)))

	// float64(x) may round x up (or down) for 64-bit integers, leaving r off by one.
	for r > 0 && r > x/r {
		r--
	}

	for r+1 <= x/(r+1) {
		r++
	}

	return r
}

// Abs returns the absolute value of x.
// Unsigned values are returned unchanged.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

func isInteger[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}

// within reports whether |a-b| <= eps. A signed difference that overflows T
// is larger than any eps. NaN is never within.
func within[T Scalar](a, b, eps T) bool {
	if a < b {
		a, b = b, a
	}

	d := a - b
	if d < 0 {
		return false
	}

	return d <= eps
}
