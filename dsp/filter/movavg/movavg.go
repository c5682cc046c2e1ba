package movavg

import "github.com/cwbudde/algo-rtfilter/dsp/core"

// MaxOrder is the default capacity of a Filter.
const MaxOrder = 32

// Filter is a moving-average filter over sample type T. The zero value is
// usable and allocates a MaxOrder buffer on first use; New allows a
// different capacity.
type Filter[T core.Sample] struct {
	ring  *core.Ring[T]
	ready bool
}

// New returns an unconfigured filter. The backing buffer is allocated
// here, once, with the configured capacity.
func New[T core.Sample](opts ...core.Option) *Filter[T] {
	cfg := core.ApplyOptions(MaxOrder, opts...)
	return &Filter[T]{ring: core.NewRing[T](cfg.Capacity)}
}

func (f *Filter[T]) buffer() *core.Ring[T] {
	if f.ring == nil {
		f.ring = core.NewRing[T](MaxOrder)
	}
	return f.ring
}

// Init sets the order to k (clamped to [0, Capacity()]), writes input0 to
// slot 0, zero-fills the other k-1 slots and rewinds the cursor.
func (f *Filter[T]) Init(input0 T, k int) {
	r := f.buffer()
	k = r.SetOrder(k)
	if k > 0 {
		r.Set(0, input0)
	}
	r.ZeroActive(1)
	r.Rewind()
	f.ready = true
}

// ProcessSample writes x into the window and returns the window mean. Until
// k samples have been written after Init the mean includes zero-filled
// slots and is biased toward zero. An order of 0 yields the zero value of T.
func (f *Filter[T]) ProcessSample(x T) T {
	r := f.buffer()
	if r.Order() == 0 {
		var zero T
		return zero
	}

	r.Write(x)
	return r.Mean()
}

// Order returns the configured order.
func (f *Filter[T]) Order() int {
	return f.buffer().Order()
}

// Capacity returns the maximum order.
func (f *Filter[T]) Capacity() int {
	return f.buffer().Capacity()
}

// Window returns the active slots in storage order. The slice aliases the
// filter state and is only valid until the next call.
func (f *Filter[T]) Window() []T {
	return f.buffer().Active()
}

// Ready reports whether Init has been called since construction or Reset.
func (f *Filter[T]) Ready() bool {
	return f.ready
}

// Reset clears every slot and returns the filter to order 0.
func (f *Filter[T]) Reset() {
	f.buffer().Reset()
	f.ready = false
}
