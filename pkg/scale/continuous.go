package scale

import (
	"math"
	"sort"

	mscale "github.com/aclements/go-moremath/scale"

	"github.com/matzehuels/chartframe/pkg/spec"
)

const defaultTickCount = 10

// ContinuousOptions configures a [Continuous] scale.
type ContinuousOptions struct {
	// Bandwidth reserves a band per value (bars on a linear x axis).
	Bandwidth   float64
	MinInterval float64
	BarsPadding float64

	TotalBarsInCluster int
	DesiredTicks       int
	IntegersOnly       bool

	SingleValueHistogram bool
}

// Continuous is a linear scale from [Min, Max] to [r0, r1].
type Continuous struct {
	min, max float64
	r0, r1   float64

	bandwidth        float64
	bandwidthPadding float64
	barsPadding      float64
	step             float64
	minInterval      float64
	clusters         int
	singleHistogram  bool

	ticks []float64
}

// NewContinuous creates a linear scale. A positive bandwidth shrinks by the
// bars padding; the padding is split evenly around each cluster.
func NewContinuous(min, max, r0, r1 float64, o ContinuousOptions) *Continuous {
	pad := clampUnit(o.BarsPadding)
	s := &Continuous{
		min:              min,
		max:              max,
		r0:               r0,
		r1:               r1,
		barsPadding:      pad,
		bandwidth:        o.Bandwidth * (1 - pad),
		bandwidthPadding: o.Bandwidth * pad,
		minInterval:      o.MinInterval,
		clusters:         o.TotalBarsInCluster,
		singleHistogram:  o.SingleValueHistogram,
	}
	s.step = s.bandwidth + s.barsPadding + s.bandwidthPadding

	if o.MinInterval > 0 && o.Bandwidth > 0 {
		// One tick per band, never between bars.
		n := int(math.Floor((max - min) / o.MinInterval))
		for i := 0; i <= n; i++ {
			s.ticks = append(s.ticks, min+float64(i)*o.MinInterval)
		}
	} else {
		s.ticks = niceTicks(min, max, o.DesiredTicks, o.IntegersOnly)
	}
	return s
}

// niceTicks returns round tick values inside [min, max].
func niceTicks(min, max float64, desired int, integersOnly bool) []float64 {
	if desired <= 0 {
		desired = defaultTickCount
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		if integersOnly && min != math.Trunc(min) {
			return nil
		}
		return []float64{min}
	}

	o := mscale.TickOptions{Max: desired}
	if integersOnly {
		o.MinLevel, o.MaxLevel = 0, 1000
	}
	major, _ := mscale.Linear{Min: min, Max: max}.Ticks(o)

	ticks := make([]float64, 0, len(major))
	for _, t := range major {
		if t < min || t > max {
			continue
		}
		if integersOnly && t != math.Trunc(t) {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// Type implements Scale.
func (s *Continuous) Type() spec.ScaleType { return spec.ScaleLinear }

// Domain returns the domain bounds.
func (s *Continuous) Domain() (min, max float64) { return s.min, s.max }

// Range implements Scale.
func (s *Continuous) Range() (float64, float64) { return s.r0, s.r1 }

// Bandwidth implements Scale.
func (s *Continuous) Bandwidth() float64 { return s.bandwidth }

// BarsPadding implements Scale.
func (s *Continuous) BarsPadding() float64 { return s.barsPadding }

// Step implements Scale.
func (s *Continuous) Step() float64 { return s.step }

// MinInterval implements Scale.
func (s *Continuous) MinInterval() float64 { return s.minInterval }

// IsInverted reports whether the domain runs from high to low.
func (s *Continuous) IsInverted() bool { return s.min > s.max }

// linear maps without band offsets. A single-value domain maps to the
// middle of the range.
func (s *Continuous) linear(v float64) float64 {
	if s.max == s.min {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.min)/(s.max-s.min)*(s.r1-s.r0)
}

// ScaleFloat maps a number to a pixel position, shifted by half the cluster
// padding when bands are reserved.
func (s *Continuous) ScaleFloat(v float64) float64 {
	return s.linear(v) + s.bandwidthPadding/2*float64(s.clusters)
}

// Scale implements Scale.
func (s *Continuous) Scale(v any) (float64, bool) {
	f, ok := spec.ToFloat(v)
	if !ok {
		return 0, false
	}
	px := s.ScaleFloat(f)
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return 0, false
	}
	return px, true
}

// Ticks implements Scale.
func (s *Continuous) Ticks() []any {
	out := make([]any, len(s.ticks))
	for i, t := range s.ticks {
		out[i] = t
	}
	return out
}

// InDomain implements Scale.
func (s *Continuous) InDomain(v any) bool {
	f, ok := spec.ToFloat(v)
	if !ok {
		return false
	}
	lo, hi := s.min, s.max
	if lo > hi {
		lo, hi = hi, lo
	}
	return f >= lo && f <= hi
}

// InvertFloat maps a pixel position back to a number.
func (s *Continuous) InvertFloat(px float64) float64 {
	if s.r1 == s.r0 {
		return s.min
	}
	return s.min + (px-s.r0)/(s.r1-s.r0)*(s.max-s.min)
}

// Invert implements Scale.
func (s *Continuous) Invert(px float64) (any, bool) {
	return s.InvertFloat(px), true
}

// InvertWithStep implements Scale. Positions before the first value snap
// back by whole intervals and report WithinBandwidth false.
func (s *Continuous) InvertWithStep(px float64, data []any) (Inverted, bool) {
	values := make([]float64, 0, len(data))
	for _, d := range data {
		if f, ok := spec.ToFloat(d); ok {
			values = append(values, f)
		}
	}
	if len(values) == 0 {
		return Inverted{}, false
	}

	inverted := s.InvertFloat(px)
	bisect := inverted
	if s.bandwidth == 0 {
		bisect = inverted + s.minInterval/2
	}
	left := sort.SearchFloat64s(values, bisect)

	if left == 0 {
		if inverted < values[0] {
			v := values[0]
			if s.minInterval > 0 {
				v -= s.minInterval * math.Ceil((values[0]-inverted)/s.minInterval)
			}
			return Inverted{Value: v, WithinBandwidth: false}, true
		}
		return Inverted{Value: values[0], WithinBandwidth: true}, true
	}

	current := values[left-1]
	if s.minInterval == 0 {
		if left >= len(values) {
			return Inverted{Value: current, WithinBandwidth: true}, true
		}
		next := values[left]
		if math.Abs(next-inverted) <= math.Abs(inverted-current) {
			return Inverted{Value: next, WithinBandwidth: true}, true
		}
		return Inverted{Value: current, WithinBandwidth: true}, true
	}
	if inverted-current <= s.minInterval {
		return Inverted{Value: current, WithinBandwidth: true}, true
	}
	return Inverted{
		Value:           current + s.minInterval*math.Floor((inverted-current)/s.minInterval),
		WithinBandwidth: false,
	}, true
}

// IsSingleValue implements Scale.
func (s *Continuous) IsSingleValue() bool {
	return s.singleHistogram || s.min == s.max
}
