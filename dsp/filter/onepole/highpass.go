package onepole

import (
	"time"

	"github.com/cwbudde/algo-rtfilter/dsp/core"
)

// HighPass is a first-order IIR high-pass filter:
//
//	y[n] = alpha * (y[n-1] + x[n] - x[n-1])
//
// The zero value is unconfigured; call Init before ProcessSample.
type HighPass[T core.Sample] struct {
	alpha   float64
	prevIn  T
	prevOut T
	ready   bool
}

// Init derives alpha from fc and dt and seeds both the previous input and
// the previous output with input0.
func (f *HighPass[T]) Init(input0 T, fc float64, dt time.Duration) {
	f.alpha = HighPassAlpha(fc, dt)
	f.prevIn = input0
	f.prevOut = input0
	f.ready = true
}

// ProcessSample filters one input sample with the current coefficient.
func (f *HighPass[T]) ProcessSample(x T) T {
	y := T(f.alpha * (float64(f.prevOut) + float64(x) - float64(f.prevIn)))
	f.prevIn = x
	f.prevOut = y
	return y
}

// ProcessSampleWith recomputes alpha from fc and dt, then filters x. The
// new coefficient stays in effect for later ProcessSample calls.
func (f *HighPass[T]) ProcessSampleWith(x T, fc float64, dt time.Duration) T {
	f.alpha = HighPassAlpha(fc, dt)
	return f.ProcessSample(x)
}

// Alpha returns the current coefficient.
func (f *HighPass[T]) Alpha() float64 {
	return f.alpha
}

// Ready reports whether Init has been called since construction or Reset.
func (f *HighPass[T]) Ready() bool {
	return f.ready
}

// Reset returns the filter to its zero, unconfigured state.
func (f *HighPass[T]) Reset() {
	*f = HighPass[T]{}
}
