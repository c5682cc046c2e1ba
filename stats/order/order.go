// Package order provides in-place order statistics over small sample
// buffers.
//
// The helpers sort the caller's buffer and pick an element from it. They do
// not allocate, which makes them usable from per-sample filter code that
// owns a scratch buffer.
package order

import (
	"cmp"
	"slices"
)

// Select sorts buf in ascending order and returns the element of rank k
// (0-based). Equal elements are interchangeable, so the result does not
// depend on their original positions. Select panics if k is outside buf.
func Select[T cmp.Ordered](buf []T, k int) T {
	slices.Sort(buf)
	return buf[k]
}

// LowerMedian sorts buf and returns its median. For an odd length that is
// the middle element. For an even length it is the lower of the two middle
// elements, buf[n/2-1]; the two middles are never averaged. LowerMedian
// panics on an empty buffer.
func LowerMedian[T cmp.Ordered](buf []T) T {
	return Select(buf, (len(buf)-1)/2)
}
