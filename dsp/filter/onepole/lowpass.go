package onepole

import (
	"time"

	"github.com/cwbudde/algo-rtfilter/dsp/core"
)

// LowPass is a first-order IIR low-pass (exponential smoothing) filter:
//
//	y[n] = y[n-1] + alpha * (x[n] - y[n-1])
//
// The zero value is unconfigured; call Init before ProcessSample.
type LowPass[T core.Sample] struct {
	alpha   float64
	prevOut T
	ready   bool
}

// Init derives alpha from fc and dt and seeds the previous output with
// alpha*input0.
func (f *LowPass[T]) Init(input0 T, fc float64, dt time.Duration) {
	f.alpha = LowPassAlpha(fc, dt)
	f.prevOut = core.Scale(input0, f.alpha)
	f.ready = true
}

// ProcessSample filters one input sample with the current coefficient.
func (f *LowPass[T]) ProcessSample(x T) T {
	y := T(float64(f.prevOut) + f.alpha*(float64(x)-float64(f.prevOut)))
	f.prevOut = y
	return y
}

// ProcessSampleWith recomputes alpha from fc and dt, then filters x.
func (f *LowPass[T]) ProcessSampleWith(x T, fc float64, dt time.Duration) T {
	f.alpha = LowPassAlpha(fc, dt)
	return f.ProcessSample(x)
}

// Alpha returns the current coefficient.
func (f *LowPass[T]) Alpha() float64 {
	return f.alpha
}

// Ready reports whether Init has been called since construction or Reset.
func (f *LowPass[T]) Ready() bool {
	return f.ready
}

// Reset returns the filter to its zero, unconfigured state.
func (f *LowPass[T]) Reset() {
	*f = LowPass[T]{}
}
