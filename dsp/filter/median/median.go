// Package median provides a fixed-capacity running median filter that
// consumes one sample per call.
//
// The window is a [core.Ring] of order k, clamped to the capacity chosen at
// construction (MaxOrder by default). Init zero-fills the window, so until
// k samples have been written the median is taken over a mix of real
// samples and zeros. For even k the filter returns the lower of the two
// middle values (see order.LowerMedian).
package median

import (
	"github.com/cwbudde/algo-rtfilter/dsp/core"
	"github.com/cwbudde/algo-rtfilter/stats/order"
)

// MaxOrder is the default capacity of a Filter.
const MaxOrder = 32

// Filter is a running median filter over sample type T. The zero value is
// usable and allocates a MaxOrder window on first use; New allows a
// different capacity.
type Filter[T core.Sample] struct {
	ring    *core.Ring[T]
	scratch []T
	ready   bool
}

// New returns an unconfigured filter with its window and sort scratch
// allocated for the configured capacity.
func New[T core.Sample](opts ...core.Option) *Filter[T] {
	cfg := core.ApplyOptions(MaxOrder, opts...)
	return &Filter[T]{
		ring:    core.NewRing[T](cfg.Capacity),
		scratch: make([]T, cfg.Capacity),
	}
}

func (f *Filter[T]) buffer() *core.Ring[T] {
	if f.ring == nil {
		f.ring = core.NewRing[T](MaxOrder)
		f.scratch = make([]T, MaxOrder)
	}
	return f.ring
}

// Init zero-fills the whole window and the scratch buffer, rewinds the
// cursor and sets the order to k (clamped to [0, Capacity()]).
func (f *Filter[T]) Init(k int) {
	r := f.buffer()
	r.Zero()
	clear(f.scratch)
	r.SetOrder(k)
	f.ready = true
}

// ProcessSample writes x into the window and returns the window median.
// Until k samples have been written after Init the window still holds
// zero-filled slots, so early medians are biased toward zero: order 3 fed
// 5, 1, 3 yields 0, 1, 3. An order of 0 yields the zero value of T.
func (f *Filter[T]) ProcessSample(x T) T {
	r := f.buffer()
	k := r.Order()
	if k == 0 {
		var zero T
		return zero
	}

	r.Write(x)

	buf := f.scratch[:k]
	copy(buf, r.Active())
	return order.LowerMedian(buf)
}

// ProcessSampleOrder changes the order to k (clamped) and then behaves like
// ProcessSample. The window contents are kept across the change, so slots
// that enter the window when k grows contribute whatever they last held.
func (f *Filter[T]) ProcessSampleOrder(x T, k int) T {
	f.buffer().SetOrder(k)
	return f.ProcessSample(x)
}

// Order returns the configured order.
func (f *Filter[T]) Order() int {
	return f.buffer().Order()
}

// Capacity returns the maximum order.
func (f *Filter[T]) Capacity() int {
	return f.buffer().Capacity()
}

// Ready reports whether Init has been called since construction or Reset.
func (f *Filter[T]) Ready() bool {
	return f.ready
}

// Reset clears the window and returns the filter to order 0.
func (f *Filter[T]) Reset() {
	f.buffer().Reset()
	clear(f.scratch)
	f.ready = false
}
