package onepole

import (
	"math"
	"time"
)

// TimeConstant returns the RC time constant in seconds for cutoff fc (Hz).
func TimeConstant(fc float64) float64 {
	return 1 / (2 * math.Pi * fc)
}

// HighPassAlpha returns the high-pass coefficient tau/(tau+dt).
func HighPassAlpha(fc float64, dt time.Duration) float64 {
	tau := TimeConstant(fc)
	return tau / (tau + dt.Seconds())
}

// LowPassAlpha returns the low-pass coefficient dt/(tau+dt).
func LowPassAlpha(fc float64, dt time.Duration) float64 {
	tau := TimeConstant(fc)
	s := dt.Seconds()
	return s / (tau + s)
}
