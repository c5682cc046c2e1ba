package notch

import "github.com/cwbudde/algo-rtfilter/dsp/core"

// Filter is a notch biquad with two samples of input and output history.
// The zero value is unconfigured; call Init or InitRadius before
// ProcessSample.
type Filter[T core.Sample] struct {
	coeffs Coefficients

	x1, x2 float64
	y1, y2 float64

	ready bool
}

// Init configures the filter with DefaultRadius. See InitRadius.
func (f *Filter[T]) Init(input0, input1 T, fc, fs float64) {
	f.InitRadius(input0, input1, fc, fs, DefaultRadius)
}

// InitRadius derives the coefficients for fc, fs and pole radius r, clears
// the history and then runs input0 followed by input1 through the
// recurrence so the next call starts from a primed two-sample history
// instead of a cold start.
func (f *Filter[T]) InitRadius(input0, input1 T, fc, fs, r float64) {
	f.coeffs = Design(fc, fs, r)
	f.x1, f.x2 = 0, 0
	f.y1, f.y2 = 0, 0
	f.ProcessSample(input0)
	f.ProcessSample(input1)
	f.ready = true
}

// ProcessSample filters one input sample.
func (f *Filter[T]) ProcessSample(x T) float64 {
	c := &f.coeffs
	xf := float64(x)

	y := xf + c.B1*f.x1 + c.B2*f.x2 + c.A1*f.y1 + c.A2*f.y2

	f.x2, f.x1 = f.x1, xf
	f.y2, f.y1 = f.y1, y

	return y
}

// Coefficients returns the current coefficient set.
func (f *Filter[T]) Coefficients() Coefficients {
	return f.coeffs
}

// State returns the history as [x1, x2, y1, y2].
func (f *Filter[T]) State() [4]float64 {
	return [4]float64{f.x1, f.x2, f.y1, f.y2}
}

// Ready reports whether the filter has been configured since construction
// or Reset.
func (f *Filter[T]) Ready() bool {
	return f.ready
}

// Reset returns the filter to its zero, unconfigured state.
func (f *Filter[T]) Reset() {
	*f = Filter[T]{}
}
