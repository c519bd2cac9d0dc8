package scale

import (
	"math"
	"testing"

	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/spec"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestBandScale(t *testing.T) {
	tests := []struct {
		name   string
		domain []string
		r0, r1 float64
		opts   BandOptions
		want   map[string]float64
		bw     float64
	}{
		{
			name:   "no padding",
			domain: []string{"a", "b", "c"},
			r0:     0, r1: 120,
			want: map[string]float64{"a": 0, "b": 40, "c": 80},
			bw:   40,
		},
		{
			name:   "inner and outer padding",
			domain: []string{"a", "b"},
			r0:     0, r1: 100,
			opts: BandOptions{PaddingInner: 0.5, PaddingOuter: 0.25},
			want: map[string]float64{"a": 12.5, "b": 62.5},
			bw:   25,
		},
		{
			name:   "reversed range",
			domain: []string{"a", "b"},
			r0:     100, r1: 0,
			want: map[string]float64{"a": 50, "b": 0},
			bw:   50,
		},
		{
			name:   "bandwidth override",
			domain: []string{"a", "b"},
			r0:     0, r1: 100,
			opts: BandOptions{Bandwidth: 25},
			want: map[string]float64{"a": 0, "b": 50},
			bw:   25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBand(tt.domain, tt.r0, tt.r1, tt.opts)
			for v, want := range tt.want {
				got, ok := b.Scale(v)
				if !ok || !approx(got, want) {
					t.Errorf("Scale(%q) = (%v, %v), want %v", v, got, ok, want)
				}
			}
			if !approx(b.Bandwidth(), tt.bw) {
				t.Errorf("Bandwidth() = %v, want %v", b.Bandwidth(), tt.bw)
			}
			if _, ok := b.Scale("missing"); ok {
				t.Error("Scale of an unknown value should fail")
			}
		})
	}
}

func TestBandInvert(t *testing.T) {
	b := NewBand([]string{"a", "b", "c"}, 0, 120, BandOptions{})
	tests := []struct {
		px   float64
		want string
	}{
		{-5, "a"},
		{10, "a"},
		{50, "b"},
		{119, "c"},
		{500, "c"},
	}
	for _, tt := range tests {
		got, ok := b.Invert(tt.px)
		if !ok || got != tt.want {
			t.Errorf("Invert(%v) = %v, want %v", tt.px, got, tt.want)
		}
	}

	// Band starts round-trip.
	for _, v := range b.Domain() {
		px, _ := b.Scale(v)
		if got, _ := b.Invert(px); got != v {
			t.Errorf("Invert(Scale(%q)) = %v", v, got)
		}
	}

	if _, ok := NewBand(nil, 0, 100, BandOptions{}).Invert(10); ok {
		t.Error("empty band scale should not invert")
	}
}

func TestContinuousScale(t *testing.T) {
	s := NewContinuous(0, 10, 0, 100, ContinuousOptions{})
	if got, _ := s.Scale(5); !approx(got, 50) {
		t.Errorf("Scale(5) = %v, want 50", got)
	}
	if got := s.InvertFloat(25); !approx(got, 2.5) {
		t.Errorf("InvertFloat(25) = %v, want 2.5", got)
	}
	if _, ok := s.Scale("five"); ok {
		t.Error("Scale of a string should fail")
	}
	if !s.InDomain(10) || s.InDomain(10.5) {
		t.Error("InDomain mismatch at the domain edge")
	}

	single := NewContinuous(3, 3, 0, 100, ContinuousOptions{})
	if got, _ := single.Scale(3); !approx(got, 50) {
		t.Errorf("single value Scale = %v, want range middle", got)
	}
	if !single.IsSingleValue() {
		t.Error("IsSingleValue() = false")
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := niceTicks(0, 10, 10, false)
	if len(ticks) == 0 || len(ticks) > 10 {
		t.Fatalf("got %d ticks: %v", len(ticks), ticks)
	}
	if ticks[0] != 0 || ticks[len(ticks)-1] != 10 {
		t.Errorf("ticks should span the domain, got %v", ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Errorf("ticks not ascending: %v", ticks)
		}
	}

	for _, v := range niceTicks(0, 1, 10, true) {
		if v != math.Trunc(v) {
			t.Errorf("integersOnly produced %v", v)
		}
	}

	if got := niceTicks(5, 5, 10, false); len(got) != 1 || got[0] != 5 {
		t.Errorf("single value ticks = %v", got)
	}
}

func TestNewXLinearBands(t *testing.T) {
	x := domain.X{
		ScaleType:   spec.ScaleLinear,
		Min:         0,
		Max:         2,
		MinInterval: 1,
		IsBandScale: true,
		Data:        []any{0.0, 1.0, 2.0},
	}
	s := NewX(x, 0, 90, XOptions{TotalBarsInCluster: 1})

	for v, want := range map[float64]float64{0: 0, 1: 30, 2: 60} {
		if got, _ := s.Scale(v); !approx(got, want) {
			t.Errorf("Scale(%v) = %v, want %v", v, got, want)
		}
	}
	if !approx(s.Bandwidth(), 30) {
		t.Errorf("Bandwidth() = %v, want 30", s.Bandwidth())
	}
	if got := s.Ticks(); len(got) != 3 {
		t.Errorf("one tick per band expected, got %v", got)
	}

	inv, ok := s.InvertWithStep(35, x.Data)
	if !ok || inv.Value != 1.0 || !inv.WithinBandwidth {
		t.Errorf("InvertWithStep(35) = %+v", inv)
	}
	inv, _ = s.InvertWithStep(-40, x.Data)
	if inv.Value != -2.0 || inv.WithinBandwidth {
		t.Errorf("InvertWithStep(-40) = %+v, want -2 outside bandwidth", inv)
	}
}

func TestNewXOrdinalClusters(t *testing.T) {
	x := domain.X{ScaleType: spec.ScaleOrdinal, Values: []string{"a", "b"}, IsBandScale: true}
	s := NewX(x, 0, 100, XOptions{TotalBarsInCluster: 2})

	if !approx(s.Bandwidth(), 25) {
		t.Errorf("Bandwidth() = %v, want 25 (two bars per band)", s.Bandwidth())
	}
	if !approx(s.Step(), 50) {
		t.Errorf("Step() = %v, want 50", s.Step())
	}
}

func TestNewXSingleValueHistogram(t *testing.T) {
	x := domain.X{ScaleType: spec.ScaleLinear, Min: 4, Max: 4, MinInterval: 1, IsBandScale: true, Data: []any{4.0}}
	s := NewX(x, 0, 100, XOptions{TotalBarsInCluster: 1, Histogram: true})
	if !s.IsSingleValue() {
		t.Error("IsSingleValue() = false for a single value histogram")
	}
	if !approx(s.Bandwidth(), 100) {
		t.Errorf("Bandwidth() = %v, want the whole range", s.Bandwidth())
	}
}
