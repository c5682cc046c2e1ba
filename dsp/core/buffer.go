package core

// Ring is a fixed-capacity circular buffer with a configurable logical
// order. Only the first Order() slots take part in computation; the write
// cursor wraps back to slot 0 once it would pass slot Order()-1.
//
// The backing array is allocated by NewRing and never grows.
type Ring[T Sample] struct {
	data  []T
	order int
	pos   int
}

// NewRing returns a zeroed ring with the given capacity and order 0.
func NewRing[T Sample](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{data: make([]T, capacity)}
}

// Capacity returns the maximum order.
func (r *Ring[T]) Capacity() int {
	return len(r.data)
}

// Order returns the current logical order.
func (r *Ring[T]) Order() int {
	return r.order
}

// Pos returns the slot the next Write goes to.
func (r *Ring[T]) Pos() int {
	return r.pos
}

// SetOrder clamps k to the capacity and makes it the logical order. Buffer
// contents are kept. A cursor outside the new order is moved back to slot 0.
// The applied order is returned.
func (r *Ring[T]) SetOrder(k int) int {
	r.order = ClampOrder(k, len(r.data))
	if r.pos >= r.order {
		r.pos = 0
	}
	return r.order
}

// Set stores x at slot i of the backing array without moving the cursor.
func (r *Ring[T]) Set(i int, x T) {
	r.data[i] = x
}

// Write stores x at the cursor and advances it. Write is a no-op while
// the order is 0.
func (r *Ring[T]) Write(x T) {
	if r.order == 0 {
		return
	}
	r.data[r.pos] = x
	r.pos++
	if r.pos > r.order-1 {
		r.pos = 0
	}
}

// Active returns the slots that take part in computation. The slice
// aliases the ring's storage.
func (r *Ring[T]) Active() []T {
	return r.data[:r.order]
}

// Mean returns the mean of the active slots, or 0 while the order is 0.
// Integer types accumulate in int64 and divide with truncation toward zero;
// float types accumulate in float64. Only the result is converted to T, so
// the sum may exceed the range of T.
func (r *Ring[T]) Mean() T {
	if r.order == 0 {
		return 0
	}

	if IsInteger[T]() {
		var sum int64
		for _, x := range r.data[:r.order] {
			sum += int64(x)
		}
		return T(sum / int64(r.order))
	}

	var sum float64
	for _, x := range r.data[:r.order] {
		sum += float64(x)
	}
	return T(sum / float64(r.order))
}

// Zero clears every slot, including those beyond the current order, and
// rewinds the cursor.
func (r *Ring[T]) Zero() {
	for i := range r.data {
		r.data[i] = 0
	}
	r.pos = 0
}

// ZeroActive clears slots [from, Order()) and leaves the rest untouched.
func (r *Ring[T]) ZeroActive(from int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < r.order; i++ {
		r.data[i] = 0
	}
}

// Rewind moves the cursor to slot 0.
func (r *Ring[T]) Rewind() {
	r.pos = 0
}

// Reset clears the ring and sets the order back to 0.
func (r *Ring[T]) Reset() {
	r.Zero()
	r.order = 0
}
