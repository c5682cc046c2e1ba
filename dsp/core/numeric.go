package core

import (
	"cmp"
	"math"
)

const defaultEpsilon = 1e-12

// Signed is the set of signed integer sample kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point sample kinds.
type Float interface {
	~float32 | ~float64
}

// Sample is the set of numeric types the filters run on. Coefficients are
// always float64 regardless of the sample type.
type Sample interface {
	Signed | Float
}

// IsInteger reports whether T is an integer sample type.
func IsInteger[T Sample]() bool {
	half := 0.5
	return T(half) == 0
}

// Scale multiplies x by the floating-point coefficient c and converts the
// product back to T. Integer sample types truncate toward zero.
func Scale[T Sample](x T, c float64) T {
	return T(c * float64(x))
}

// Clamp limits value to the inclusive range [min, max].
func Clamp[T cmp.Ordered](value, min, max T) T {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampOrder limits a requested filter order to [0, capacity]. Requests
// above capacity degrade to capacity instead of failing; negative requests
// yield the inert order 0.
func ClampOrder(k, capacity int) int {
	if capacity < 0 {
		capacity = 0
	}

	return Clamp(k, 0, capacity)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
