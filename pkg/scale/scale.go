// Package scale maps domain values to pixels.
//
// [Continuous] is a linear scale that optionally reserves a band per x value
// for bars (histogram and cluster packing). [Band] is an ordinal scale that
// slices a range into equal, optionally padded, bands; it serves ordinal x
// axes and small-multiple panels alike.
//
// Nice tick values of continuous scales come from go-moremath's tick
// level search.
package scale

import (
	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Scale is the common interface of continuous and band scales.
type Scale interface {
	Type() spec.ScaleType

	// Scale maps a domain value to a pixel position. It reports false for
	// values the scale cannot place.
	Scale(v any) (float64, bool)

	Bandwidth() float64
	BarsPadding() float64
	Step() float64
	MinInterval() float64
	Range() (r0, r1 float64)

	// Ticks returns the tick values of the scale's domain.
	Ticks() []any

	InDomain(v any) bool
	Invert(px float64) (any, bool)

	// InvertWithStep inverts a pixel position and snaps it to one of data,
	// which must be sorted the way the domain is.
	InvertWithStep(px float64, data []any) (Inverted, bool)

	IsSingleValue() bool
}

// Inverted is a pixel position mapped back to the domain.
type Inverted struct {
	Value any

	// WithinBandwidth is false when the position falls between data values.
	WithinBandwidth bool
}

// XOptions configures [NewX].
type XOptions struct {
	// TotalBarsInCluster is the number of bars drawn side by side per x value.
	TotalBarsInCluster int
	BarsPadding        float64
	Histogram          bool
	Ticks              int
	IntegersOnly       bool
}

// NewX builds the x scale of a chart over [r0, r1].
//
// Ordinal domains use a band scale whose bandwidth is split across the
// bars of a cluster. Linear domains with bars reserve one band per min
// interval; the last value keeps a full band unless the histogram holds a
// single value.
func NewX(x domain.X, r0, r1 float64, o XOptions) Scale {
	clusters := o.TotalBarsInCluster
	if clusters < 1 {
		clusters = 1
	}
	rangeDiff := abs(r1 - r0)

	if x.ScaleType == spec.ScaleOrdinal {
		n := len(x.Values)
		if n == 0 {
			n = 1
		}
		return NewBand(x.Values, r0, r1, BandOptions{
			Bandwidth:    rangeDiff / float64(n*clusters),
			PaddingInner: o.BarsPadding,
			PaddingOuter: o.BarsPadding / 2,
		})
	}

	if !x.IsBandScale {
		return NewContinuous(x.Min, x.Max, r0, r1, ContinuousOptions{
			MinInterval:        x.MinInterval,
			TotalBarsInCluster: o.TotalBarsInCluster,
			BarsPadding:        o.BarsPadding,
			DesiredTicks:       o.Ticks,
			IntegersOnly:       o.IntegersOnly,
		})
	}

	singleHistogram := o.Histogram && x.Max-x.Min == 0
	hi := x.Max
	if singleHistogram {
		hi = x.Min + x.MinInterval
	}
	intervals := 0.0
	if x.MinInterval > 0 {
		intervals = (hi - x.Min) / x.MinInterval
	}
	offset := 1.0
	if singleHistogram {
		offset = 0
	}
	bandwidth := rangeDiff / (intervals + offset)

	start, end := r0, r1
	if !singleHistogram {
		if r1 < r0 {
			start = r0 - bandwidth
		} else {
			end = r1 - bandwidth
		}
	}

	return NewContinuous(x.Min, hi, start, end, ContinuousOptions{
		Bandwidth:            bandwidth / float64(clusters),
		MinInterval:          x.MinInterval,
		TotalBarsInCluster:   o.TotalBarsInCluster,
		BarsPadding:          o.BarsPadding,
		DesiredTicks:         o.Ticks,
		IntegersOnly:         o.IntegersOnly,
		SingleValueHistogram: singleHistogram,
	})
}

// YOptions configures [NewY].
type YOptions struct {
	Ticks        int
	IntegersOnly bool
}

// NewY builds the y scale of one group over [r0, r1]. Y ranges usually run
// from the frame height to zero so larger values sit higher.
func NewY(y domain.Y, r0, r1 float64, o YOptions) *Continuous {
	return NewContinuous(y.Min, y.Max, r0, r1, ContinuousOptions{
		DesiredTicks: o.Ticks,
		IntegersOnly: o.IntegersOnly,
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
