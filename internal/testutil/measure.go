package testutil

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// RMS returns the root-mean-square level of signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)

	var sum float64
	for _, v := range sq {
		sum += v
	}

	return math.Sqrt(sum / float64(len(signal)))
}

// ToneAmplitude estimates the peak amplitude of the component at freqHz in
// signal. The signal length must be a power of two. A periodic Hann window
// is applied before the transform and its coherent gain is compensated, so
// a tone that falls exactly on a bin reads back its true amplitude.
func ToneAmplitude(signal []float64, freqHz, sampleRate float64) (float64, error) {
	n := len(signal)
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return 0, fmt.Errorf("signal length must be a power of two >= 2: %d", n)
	}

	bin := int(math.Round(freqHz * float64(n) / sampleRate))
	if bin < 0 || bin > n/2 {
		return 0, fmt.Errorf("frequency %g Hz outside [0, fs/2]", freqHz)
	}

	weighted := make([]float64, n)
	copy(weighted, signal)

	win := make([]float64, n)
	var winSum float64
	for i := range win {
		win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
		winSum += win[i]
	}
	vecmath.MulBlockInPlace(weighted, win)

	in := make([]complex128, n)
	for i, v := range weighted {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("fft forward: %w", err)
	}

	scale := 2.0
	if bin == 0 || bin == n/2 {
		scale = 1
	}

	return scale * cmplx.Abs(out[bin]) / winSum, nil
}
