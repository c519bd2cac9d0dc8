// Package frame computes the chart frame: the rectangle left for plotting
// once axes, margins and paddings have taken their share of the container.
package frame

import (
	"math"

	"github.com/matzehuels/chartframe/pkg/axis"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Result is the computed chart frame.
type Result struct {
	// Dimensions is relative to the chart area, see [ChartArea].
	Dimensions spec.Dimensions `json:"dimensions"`

	// LeftMargin is the space between the container's left edge and the
	// leftmost axis box.
	LeftMargin float64 `json:"left_margin"`

	// Empty is set when the axes leave no room to plot. The size is then
	// clamped to zero and the origin to the chart area.
	Empty bool `json:"empty"`
}

// reserve accumulates the space taken on each side of the frame.
type reserve struct {
	top, bottom, left, right float64

	// Half the widest label of horizontal axes overflows left and right;
	// half the tallest label of vertical axes overflows top and bottom.
	hOverflow, vOverflow float64
}

// Compute lays out the chart frame inside a container. Each visible axis
// with ticks reserves its label, tick and title size plus one chart margin
// on its side. A side never reserves less than the overflow of edge labels
// plus its margin. Chart paddings are then removed on every side.
func Compute(c spec.Container, t spec.Theme, dims map[string]axis.TickDimensions, axes []spec.AxisSpec) Result {
	m, p := t.ChartMargins, t.ChartPaddings
	var r reserve

	for _, a := range axes {
		d, ok := dims[a.ID]
		if !ok || a.Hide || d.Empty() {
			continue
		}
		size := axis.Size(a, d, t)
		switch a.Position {
		case spec.PositionTop:
			r.top += size + m.Top
			r.hOverflow = math.Max(r.hOverflow, d.MaxLabelBBoxWidth/2)
		case spec.PositionBottom:
			r.bottom += size + m.Bottom
			r.hOverflow = math.Max(r.hOverflow, d.MaxLabelBBoxWidth/2)
		case spec.PositionRight:
			r.right += size + m.Right
			r.vOverflow = math.Max(r.vOverflow, d.MaxLabelBBoxHeight/2)
		default:
			r.left += size + m.Left
			r.vOverflow = math.Max(r.vOverflow, d.MaxLabelBBoxHeight/2)
		}
	}

	area := ChartArea(c)
	left := math.Max(r.left, r.hOverflow+m.Left)
	right := math.Max(r.right, r.hOverflow+m.Right)
	top := math.Max(r.top, r.vOverflow+m.Top)
	bottom := math.Max(r.bottom, r.vOverflow+m.Bottom)

	res := Result{
		Dimensions: spec.Dimensions{
			Top:    top + p.Top,
			Left:   left + p.Left,
			Width:  area.Width - left - right - p.Left - p.Right,
			Height: area.Height - top - bottom - p.Top - p.Bottom,
		},
		LeftMargin: left - r.left,
	}
	if d := &res.Dimensions; d.Width <= 0 || d.Height <= 0 {
		d.Width = math.Max(0, d.Width)
		d.Height = math.Max(0, d.Height)
		d.Left = math.Min(d.Left, area.Width-d.Width)
		d.Top = math.Min(d.Top, area.Height-d.Height)
		res.Empty = true
	}
	return res
}

// ChartArea returns the part of the container left to the chart once the
// legend is reserved. Its origin is relative to the container.
func ChartArea(c spec.Container) spec.Dimensions {
	d := spec.Dimensions{Width: c.Width, Height: c.Height}
	size := math.Max(0, c.LegendSize)
	switch c.LegendPosition {
	case spec.PositionLeft:
		d.Left, d.Width = size, d.Width-size
	case spec.PositionRight:
		d.Width -= size
	case spec.PositionTop:
		d.Top, d.Height = size, d.Height-size
	case spec.PositionBottom:
		d.Height -= size
	}
	d.Width = math.Max(0, d.Width)
	d.Height = math.Max(0, d.Height)
	return d
}
