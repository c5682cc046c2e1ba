// Package testutil holds signal generators, tolerance assertions and level
// measurements shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-rtfilter/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC[T core.Sample](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Quantize converts a float64 signal to sample type T, rounding to the
// nearest value for integer types.
func Quantize[T core.Sample](signal []float64) []T {
	integer := core.IsInteger[T]()

	out := make([]T, len(signal))
	for i, x := range signal {
		if integer {
			x = math.Round(x)
		}
		out[i] = T(x)
	}
	return out
}
