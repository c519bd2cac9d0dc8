package scale

import (
	"math"

	"github.com/matzehuels/chartframe/pkg/spec"
)

// BandOptions configures a [Band] scale. Paddings are relative to the step.
type BandOptions struct {
	PaddingInner float64
	PaddingOuter float64

	// Bandwidth overrides the computed bandwidth before inner padding is
	// applied, to split a band across the bars of a cluster.
	Bandwidth float64
}

// Band maps ordinal values to equal-width bands over [r0, r1].
type Band struct {
	domain []string
	index  map[string]int
	r0, r1 float64

	start             float64
	step              float64
	bandwidth         float64
	originalBandwidth float64
	paddingInner      float64
}

// NewBand creates a band scale. Values keep their order; duplicates are
// ignored.
func NewBand(domain []string, r0, r1 float64, o BandOptions) *Band {
	b := &Band{
		index: make(map[string]int, len(domain)),
		r0:    r0,
		r1:    r1,
	}
	for _, v := range domain {
		if _, ok := b.index[v]; ok {
			continue
		}
		b.index[v] = len(b.domain)
		b.domain = append(b.domain, v)
	}

	inner := clampUnit(o.PaddingInner)
	outer := math.Max(0, o.PaddingOuter)
	b.paddingInner = inner

	n := float64(len(b.domain))
	lo, hi := math.Min(r0, r1), math.Max(r0, r1)
	b.step = (hi - lo) / math.Max(1, n-inner+outer*2)
	b.start = lo + (hi-lo-b.step*(n-inner))*0.5
	b.bandwidth = b.step * (1 - inner)
	b.originalBandwidth = b.bandwidth
	if o.Bandwidth > 0 {
		b.bandwidth = o.Bandwidth * (1 - inner)
	}
	return b
}

// Type implements Scale.
func (b *Band) Type() spec.ScaleType { return spec.ScaleOrdinal }

// Domain returns the ordered band values.
func (b *Band) Domain() []string { return b.domain }

// Range implements Scale.
func (b *Band) Range() (float64, float64) { return b.r0, b.r1 }

// Bandwidth implements Scale.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// OriginalBandwidth is the bandwidth of a full band, before any override.
func (b *Band) OriginalBandwidth() float64 { return b.originalBandwidth }

// BarsPadding implements Scale.
func (b *Band) BarsPadding() float64 { return b.paddingInner }

// Step implements Scale.
func (b *Band) Step() float64 { return b.step }

// MinInterval implements Scale.
func (b *Band) MinInterval() float64 { return 0 }

func (b *Band) key(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return spec.FormatValue(v)
}

// Scale implements Scale. It returns the start of the value's band.
func (b *Band) Scale(v any) (float64, bool) {
	i, ok := b.index[b.key(v)]
	if !ok {
		return 0, false
	}
	if b.r1 < b.r0 {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

// Ticks implements Scale.
func (b *Band) Ticks() []any {
	out := make([]any, len(b.domain))
	for i, v := range b.domain {
		out[i] = v
	}
	return out
}

// InDomain implements Scale.
func (b *Band) InDomain(v any) bool {
	_, ok := b.index[b.key(v)]
	return ok
}

// Invert implements Scale. The range is split into as many equal segments
// as there are values; positions outside the range clamp to the ends.
func (b *Band) Invert(px float64) (any, bool) {
	n := len(b.domain)
	if n == 0 || b.r0 == b.r1 {
		return nil, false
	}
	lo, hi := math.Min(b.r0, b.r1), math.Max(b.r0, b.r1)
	i := int(math.Floor((px - lo) / (hi - lo) * float64(n)))
	i = max(0, min(n-1, i))
	if b.r1 < b.r0 {
		i = n - 1 - i
	}
	return b.domain[i], true
}

// InvertWithStep implements Scale. Band inversion always lands inside a band.
func (b *Band) InvertWithStep(px float64, _ []any) (Inverted, bool) {
	v, ok := b.Invert(px)
	if !ok {
		return Inverted{}, false
	}
	return Inverted{Value: v, WithinBandwidth: true}, true
}

// IsSingleValue implements Scale.
func (b *Band) IsSingleValue() bool { return len(b.domain) < 2 }
