// Command filterinfo prints the coefficients the real-time filters derive
// from a set of configuration parameters.
//
// Usage:
//
//	filterinfo [flags] [filter-name ...]
//
// Without arguments it prints info for all filters.
//
// Examples:
//
//	filterinfo highpass
//	filterinfo -fc 0.5 -dt 10ms highpass lowpass
//	filterinfo -fs 500 -notch 50 -r 0.9 notch
//	filterinfo -k 40 movavg median
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-rtfilter/dsp/filter/median"
	"github.com/cwbudde/algo-rtfilter/dsp/filter/movavg"
	"github.com/cwbudde/algo-rtfilter/dsp/filter/notch"
	"github.com/cwbudde/algo-rtfilter/dsp/filter/onepole"
)

type params struct {
	fc      float64
	dt      time.Duration
	fs      float64
	notchFc float64
	radius  float64
	order   int
}

type row struct {
	name   string
	values []string
}

type filterEntry struct {
	name     string
	describe func(p params) row
}

var registry = []filterEntry{
	{"highpass", describeHighPass},
	{"lowpass", describeLowPass},
	{"notch", describeNotch},
	{"movavg", describeMovAvg},
	{"median", describeMedian},
}

func main() {
	var p params
	flag.Float64Var(&p.fc, "fc", 1, "cutoff frequency in Hz for highpass/lowpass")
	flag.DurationVar(&p.dt, "dt", 10*time.Millisecond, "sampling period for highpass/lowpass")
	flag.Float64Var(&p.fs, "fs", 1000, "sampling frequency in Hz for notch")
	flag.Float64Var(&p.notchFc, "notch", 50, "notch center frequency in Hz")
	flag.Float64Var(&p.radius, "r", notch.DefaultRadius, "notch pole radius in (0, 1)")
	flag.IntVar(&p.order, "k", 5, "requested order for movavg/median")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints derived coefficients of the real-time filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments prints info for all filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -fc 0.5 -dt 10ms highpass lowpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -fs 500 -notch 50 -r 0.9 notch\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := validate(p); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filters\n")
		os.Exit(1)
	}

	if err := printInfo(os.Stdout, entries, p); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// validate rejects parameters that would put NaN or Inf into the
// coefficients. The filters themselves do not check.
func validate(p params) error {
	if !(p.fc > 0) || math.IsInf(p.fc, 0) {
		return fmt.Errorf("cutoff must be finite and > 0: %g", p.fc)
	}
	if p.dt <= 0 {
		return fmt.Errorf("sampling period must be > 0: %s", p.dt)
	}
	if !(p.fs > 0) || math.IsInf(p.fs, 0) {
		return fmt.Errorf("sampling frequency must be finite and > 0: %g", p.fs)
	}
	if p.notchFc < 0 || p.notchFc > p.fs/2 {
		return fmt.Errorf("notch frequency must be in [0, fs/2]: %g", p.notchFc)
	}
	if !(p.radius > 0 && p.radius < 1) {
		return fmt.Errorf("pole radius must be in (0, 1): %g", p.radius)
	}
	return nil
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(names []string) []filterEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printInfo(w io.Writer, entries []filterEntry, p params) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tParameters\tCoefficients\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----------\t------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		r := e.describe(p)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", r.name, r.values[0], r.values[1]); err != nil {
			return fmt.Errorf("write row %s: %w", r.name, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func describeHighPass(p params) row {
	var f onepole.HighPass[float64]
	f.Init(0, p.fc, p.dt)
	return row{"highpass", []string{
		fmt.Sprintf("fc=%g Hz dt=%s", p.fc, p.dt),
		fmt.Sprintf("tau=%.6f s alpha=%.6f", onepole.TimeConstant(p.fc), f.Alpha()),
	}}
}

func describeLowPass(p params) row {
	var f onepole.LowPass[float64]
	f.Init(0, p.fc, p.dt)
	return row{"lowpass", []string{
		fmt.Sprintf("fc=%g Hz dt=%s", p.fc, p.dt),
		fmt.Sprintf("tau=%.6f s alpha=%.6f", onepole.TimeConstant(p.fc), f.Alpha()),
	}}
}

func describeNotch(p params) row {
	var f notch.Filter[float64]
	f.InitRadius(0, 0, p.notchFc, p.fs, p.radius)
	c := f.Coefficients()
	return row{"notch", []string{
		fmt.Sprintf("fc=%g Hz fs=%g Hz r=%g", p.notchFc, p.fs, p.radius),
		fmt.Sprintf("b1=%.6f b2=%.6f a1=%.6f a2=%.6f", c.B1, c.B2, c.A1, c.A2),
	}}
}

func describeMovAvg(p params) row {
	f := movavg.New[float64]()
	f.Init(0, p.order)
	return row{"movavg", []string{
		fmt.Sprintf("k=%d", p.order),
		orderSummary(p.order, f.Order(), f.Capacity()),
	}}
}

func describeMedian(p params) row {
	f := median.New[float64]()
	f.Init(p.order)
	return row{"median", []string{
		fmt.Sprintf("k=%d", p.order),
		orderSummary(p.order, f.Order(), f.Capacity()),
	}}
}

func orderSummary(requested, order, capacity int) string {
	s := fmt.Sprintf("order=%d capacity=%d", order, capacity)
	if requested != order {
		s += " (clamped)"
	}
	return s
}
