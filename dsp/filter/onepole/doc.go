// Package onepole provides first-order IIR high-pass and low-pass filters
// that consume one sample per call.
//
// Both filters derive a single coefficient alpha from a cutoff frequency fc
// (Hz) and a sampling period dt using the RC time constant
//
//	tau = 1 / (2*pi*fc)
//
// [HighPass] uses alpha = tau/(tau+dt) and [LowPass] uses alpha = dt/(tau+dt),
// so for the same fc and dt the two coefficients sum to 1.
//
// A filter must be configured with Init before ProcessSample is called.
// ProcessSampleWith recomputes alpha on every call for callers whose
// sampling period varies. A zero cutoff frequency produces a NaN or
// infinite coefficient; the filters do not guard against it.
//
// The update equations run in float64 on every operand, so integer sample
// types never wrap on intermediate differences; only the output is
// converted back and truncated toward zero.
//
// Filters are not safe for concurrent use.
package onepole
