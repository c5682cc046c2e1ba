package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func defaultParams() params {
	return params{
		fc:      1,
		dt:      10 * time.Millisecond,
		fs:      1000,
		notchFc: 50,
		radius:  0.8,
		order:   5,
	}
}

func TestValidate(t *testing.T) {
	if err := validate(defaultParams()); err != nil {
		t.Fatalf("validate(defaults) error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*params)
	}{
		{"zero cutoff", func(p *params) { p.fc = 0 }},
		{"zero period", func(p *params) { p.dt = 0 }},
		{"zero sample rate", func(p *params) { p.fs = 0 }},
		{"notch above nyquist", func(p *params) { p.notchFc = 600 }},
		{"radius one", func(p *params) { p.radius = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			if err := validate(p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestResolveEntries(t *testing.T) {
	if got := resolveEntries(nil); len(got) != len(registry) {
		t.Fatalf("len = %d, want %d", len(got), len(registry))
	}

	got := resolveEntries([]string{" Notch ", "bogus", "median"})
	if len(got) != 2 || got[0].name != "notch" || got[1].name != "median" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestPrintInfo(t *testing.T) {
	p := defaultParams()
	p.order = 40

	var buf bytes.Buffer
	if err := printInfo(&buf, registry, p); err != nil {
		t.Fatalf("printInfo() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"alpha=0.940883",
		"alpha=0.059117",
		"b2=1.000000",
		"a2=-0.640000",
		"order=32 capacity=32 (clamped)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)

	lines := strings.Fields(buf.String())
	want := []string{"highpass", "lowpass", "median", "movavg", "notch"}
	if strings.Join(lines, ",") != strings.Join(want, ",") {
		t.Fatalf("list = %v, want %v", lines, want)
	}
}
