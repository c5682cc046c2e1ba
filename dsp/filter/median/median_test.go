package median

import (
	"slices"
	"testing"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-rtfilter/dsp/core"
	"github.com/cwbudde/algo-rtfilter/internal/testutil"
)

func run[T core.Sample](f *Filter[T], in []T) []T {
	out := make([]T, len(in))
	for i, x := range in {
		out[i] = f.ProcessSample(x)
	}
	return out
}

func TestOddOrderSequence(t *testing.T) {
	f := New[int]()
	f.Init(3)

	got := run(f, []int{5, 1, 3, 9})
	// Windows: [5 0 0] [5 1 0] [5 1 3] [9 1 3].
	want := []int{0, 1, 3, 3}
	if !slices.Equal(got, want) {
		t.Fatalf("medians = %v, want %v", got, want)
	}
}

func TestEvenOrderTakesLowerMiddle(t *testing.T) {
	f := New[float64]()
	f.Init(4)

	got := run(f, []float64{4, 1, 3, 2, 10})
	// Sorted windows: [0 0 0 4] [0 0 1 4] [0 1 3 4] [1 2 3 4] [1 2 3 10].
	want := []float64{0, 0, 1, 2, 2}
	if !slices.Equal(got, want) {
		t.Fatalf("medians = %v, want %v", got, want)
	}
}

func TestMatchesStatsMedianOnceFull(t *testing.T) {
	const k = 5

	in := testutil.DeterministicNoise(5, 10, 128)

	f := New[float64]()
	f.Init(k)

	for i, x := range in {
		got := f.ProcessSample(x)
		if i < k-1 {
			continue
		}

		want, err := stats.Median(in[i-k+1 : i+1])
		if err != nil {
			t.Fatalf("stats.Median() error = %v", err)
		}
		if got != want {
			t.Fatalf("sample %d: median = %v, want %v", i, got, want)
		}
	}
}

func TestRejectsImpulses(t *testing.T) {
	in := testutil.DC[int16](100, 20)
	in[7] = 30000
	in[13] = -30000

	f := New[int16]()
	f.Init(3)

	out := run(f, in)
	for i := 2; i < len(out); i++ {
		if out[i] != 100 {
			t.Fatalf("sample %d: median = %d, want 100", i, out[i])
		}
	}
}

func TestOrderClamping(t *testing.T) {
	in := testutil.Quantize[int32](testutil.DeterministicNoise(17, 500, 150))

	clamped := New[int32]()
	clamped.Init(MaxOrder + 10)

	bound := New[int32]()
	bound.Init(MaxOrder)

	if clamped.Order() != MaxOrder {
		t.Fatalf("order = %d, want %d", clamped.Order(), MaxOrder)
	}
	if a, b := run(clamped, in), run(bound, in); !slices.Equal(a, b) {
		t.Fatal("order above capacity must behave like order == capacity")
	}

	small := New[int32](core.WithCapacity(3))
	small.Init(7)
	if small.Order() != 3 || small.Capacity() != 3 {
		t.Fatalf("order/capacity = %d/%d, want 3/3", small.Order(), small.Capacity())
	}
}

func TestProcessSampleOrderKeepsContents(t *testing.T) {
	f := New[int]()
	f.Init(5)
	run(f, []int{1, 2, 3, 4, 5})

	// Shrink: window becomes slots [0,3) = [10 2 3].
	if got := f.ProcessSampleOrder(10, 3); got != 3 {
		t.Fatalf("after shrink: median = %d, want 3", got)
	}
	// [10 0 3]
	if got := f.ProcessSample(0); got != 3 {
		t.Fatalf("median = %d, want 3", got)
	}
	// Grow: slots 3 and 4 still hold 4 and 5: [10 0 7 4 5].
	if got := f.ProcessSampleOrder(7, 5); got != 5 {
		t.Fatalf("after grow: median = %d, want 5", got)
	}
	if f.Order() != 5 {
		t.Fatalf("order = %d, want 5", f.Order())
	}

	if got := f.ProcessSampleOrder(1, MaxOrder+1); f.Order() != MaxOrder {
		t.Fatalf("order = %d (median %d), want clamp to %d", f.Order(), got, MaxOrder)
	}
}

func TestZeroOrderIsInert(t *testing.T) {
	f := New[float64]()
	if got := f.ProcessSample(4); got != 0 {
		t.Fatalf("unconfigured ProcessSample() = %v, want 0", got)
	}

	f.Init(0)
	if got := f.ProcessSample(4); got != 0 {
		t.Fatalf("order 0 ProcessSample() = %v, want 0", got)
	}
	if got := f.ProcessSampleOrder(4, -1); got != 0 {
		t.Fatalf("negative order ProcessSampleOrder() = %v, want 0", got)
	}
}

func TestReinitIsIdempotent(t *testing.T) {
	in := []int{8, 3, 5, 1, 9, 2, 7}

	once := New[int]()
	once.Init(3)

	twice := New[int]()
	twice.Init(5)
	run(twice, []int{4, 4, 4, 4})
	twice.Init(3)
	twice.Init(3)

	if a, b := run(once, in), run(twice, in); !slices.Equal(a, b) {
		t.Fatalf("outputs differ: %v vs %v", a, b)
	}
}

func TestReset(t *testing.T) {
	f := New[int]()
	f.Init(3)
	run(f, []int{7, 7, 7})

	f.Reset()
	if f.Ready() || f.Order() != 0 {
		t.Fatal("Reset must clear order and ready flag")
	}

	// Growing the order without Init exposes the cleared slots.
	if got := f.ProcessSampleOrder(7, 3); got != 0 {
		t.Fatalf("median after reset = %d, want 0", got)
	}
}

func BenchmarkProcessSample(b *testing.B) {
	f := New[float64]()
	f.Init(9)
	x := 0.0
	for b.Loop() {
		x = f.ProcessSample(x+1) - 0.5
	}
	_ = x
}

func TestZeroValueIsUsable(t *testing.T) {
	var f Filter[int16]
	if f.Capacity() != MaxOrder {
		t.Fatalf("capacity = %d, want %d", f.Capacity(), MaxOrder)
	}

	f.Init(3)
	testutil.RequireEqual(t, run(&f, []int16{5, 1, 3, 9}), []int16{0, 1, 3, 3})

	var g Filter[float64]
	if got := g.ProcessSampleOrder(2, 1); got != 2 {
		t.Fatalf("zero value ProcessSampleOrder() = %v, want 2", got)
	}
}

func TestInt16FullScale(t *testing.T) {
	f := New[int16]()
	f.Init(MaxOrder)

	in := append(testutil.DC[int16](32767, MaxOrder), testutil.DC[int16](-32768, MaxOrder)...)
	out := run(f, in)
	if out[MaxOrder-1] != 32767 || out[len(out)-1] != -32768 {
		t.Fatalf("full-scale medians = %d, %d, want 32767, -32768", out[MaxOrder-1], out[len(out)-1])
	}
}
