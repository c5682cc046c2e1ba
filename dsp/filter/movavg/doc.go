// Package movavg provides a fixed-capacity moving-average filter that
// consumes one sample per call.
//
// The filter averages the k most recent samples held in a [core.Ring]. The
// order k is clamped to the capacity chosen at construction (MaxOrder by
// default) rather than rejected.
//
// Init places its seed sample in slot 0 and zero-fills the remaining
// slots with the cursor left at slot 0, so the first update overwrites the
// seed and the first k-1 outputs average over zero-filled slots. Early
// outputs are therefore biased toward zero. Integer sample types use
// truncating division.
package movavg
