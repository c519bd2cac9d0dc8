package axis

import (
	"slices"

	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// positionEpsilon tolerates float error at the frame edges.
const positionEpsilon = 1e-6

// Tick is a tick value placed along its axis, in pixels from the frame
// origin on that axis.
type Tick struct {
	Value    any     `json:"value"`
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

// Segment is a line from (X1, Y1) to (X2, Y2) in frame coordinates.
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Projection is the placed geometry of one axis.
type Projection struct {
	AxisID string `json:"axis_id"`

	// Position is the box the axis is drawn in, relative to the container.
	Position spec.Dimensions `json:"position"`

	// Ticks holds every tick inside the frame; Visible drops or blanks the
	// ones whose labels would overlap.
	Ticks     []Tick    `json:"ticks"`
	Visible   []Tick    `json:"visible"`
	Gridlines []Segment `json:"gridlines,omitempty"`
}

// Layout is the frame the axes are projected around.
type Layout struct {
	Frame spec.Dimensions

	// LeftMargin is the space left of the leftmost axis box.
	LeftMargin float64

	Rotation spec.Rotation
	Theme    spec.Theme
}

// Range returns the pixel range an axis maps its domain to. Axes along the
// data x direction reverse at 180 and -90 degrees; y axes grow upwards.
func Range(p spec.Position, rotation spec.Rotation, frame spec.Dimensions) (r0, r1 float64) {
	if p.IsHorizontal() {
		switch rotation {
		case spec.RotationNeg90, spec.Rotation180:
			return frame.Width, 0
		default:
			return 0, frame.Width
		}
	}
	switch rotation {
	case spec.Rotation90, spec.Rotation180:
		return 0, frame.Height
	default:
		return frame.Height, 0
	}
}

// Project places the ticks of every measured axis. Axes without tick
// dimensions, or whose group has no data, are skipped. Axis boxes stack
// outwards from the frame in axes order.
func Project(r *domain.Result, axes []spec.AxisSpec, dims map[string]TickDimensions, l Layout) map[string]Projection {
	out := make(map[string]Projection, len(dims))
	if r.Empty() || l.Frame.Empty() {
		return out
	}

	st := stacker{
		bottom: l.Theme.ChartPaddings.Bottom,
		left:   l.LeftMargin,
		right:  l.Theme.ChartPaddings.Right,
	}
	histogram := spec.IsHistogramMode(r.Specs)
	clusters := scale.CountClusters(r.Series).Total

	for _, a := range axes {
		d, ok := dims[a.ID]
		if !ok {
			continue
		}
		r0, r1 := Range(a.Position, l.Rotation, l.Frame)
		s, ok := ScaleFor(a, r, l.Rotation, l.Theme, r0, r1)
		if !ok {
			continue
		}

		format := FormatterFor(a, r.Specs, l.Rotation)
		extent := l.Frame.Width
		if a.Position.IsVertical() {
			extent = l.Frame.Height
		}
		ticks := inFrame(availableTicks(s, format, clusters, histogram && !spec.IsYDomain(a.Position, l.Rotation)), extent)
		visible := visibleTicks(ticks, a, d)

		p := Projection{
			AxisID:  a.ID,
			Ticks:   ticks,
			Visible: visible,
		}
		if a.ShowGridLines {
			p.Gridlines = gridlines(visible, a.Position, l.Frame)
		}
		if !a.Hide {
			p.Position = st.place(a, d, l)
		}
		out[a.ID] = p
	}
	return out
}

// availableTicks positions the scale ticks. Band ticks sit in the middle of
// their cluster; histogram ticks sit on band edges, with one extra tick
// closing the last band.
func availableTicks(s scale.Scale, format spec.Formatter, clusters int, histogram bool) []Tick {
	values := s.Ticks()
	extra := histogram && s.Bandwidth() > 0
	if extra && !s.IsSingleValue() && len(values) > 1 {
		last, _ := spec.ToFloat(values[len(values)-1])
		prev, _ := spec.ToFloat(values[len(values)-2])
		if dist := last - prev; dist > 0 {
			n := int(s.MinInterval() / dist)
			for i := 1; i <= n; i++ {
				values = append(values, last+float64(i)*dist)
			}
		}
	}

	shift := float64(max(clusters, 1))
	band := s.Bandwidth()
	if p := s.BarsPadding(); p < 1 {
		band = s.Bandwidth() / (1 - p)
	}
	halfPadding := (band - s.Bandwidth()) / 2
	offset := s.Bandwidth() * shift / 2
	if histogram {
		offset = -halfPadding
	}

	if extra && s.IsSingleValue() && len(values) > 0 {
		first, _ := spec.ToFloat(values[0])
		pos, _ := s.Scale(first)
		next := first + s.MinInterval()
		return []Tick{
			{Value: first, Label: format(first), Position: pos + offset},
			{Value: next, Label: format(next), Position: s.Bandwidth() + halfPadding*2},
		}
	}

	ticks := make([]Tick, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		pos, ok := s.Scale(v)
		if !ok {
			continue
		}
		label := format(v)
		if seen[label] {
			continue
		}
		seen[label] = true
		ticks = append(ticks, Tick{Value: v, Label: label, Position: pos + offset})
	}
	return ticks
}

// inFrame drops ticks outside [0, extent].
func inFrame(ticks []Tick, extent float64) []Tick {
	return slices.DeleteFunc(ticks, func(t Tick) bool {
		return t.Position < -positionEpsilon || t.Position > extent+positionEpsilon
	})
}

// visibleTicks keeps ticks whose labels do not overlap the previous kept
// label. Overlapping ticks are kept without a label when the axis shows
// overlapping ticks, and with their label when it shows overlapping labels.
func visibleTicks(ticks []Tick, a spec.AxisSpec, d TickDimensions) []Tick {
	sorted := slices.Clone(ticks)
	slices.SortStableFunc(sorted, func(x, y Tick) int {
		switch {
		case x.Position < y.Position:
			return -1
		case x.Position > y.Position:
			return 1
		}
		return 0
	})

	required := d.MaxLabelBBoxWidth / 2
	if a.Position.IsVertical() {
		required = d.MaxLabelBBoxHeight / 2
	}

	var visible []Tick
	occupied := 0.0
	for i, t := range sorted {
		if i == 0 || t.Position-required >= occupied {
			visible = append(visible, t)
			occupied = t.Position + required
			continue
		}
		if a.ShowOverlappingTicks || a.ShowOverlappingLabels {
			if !a.ShowOverlappingLabels {
				t.Label = ""
			}
			visible = append(visible, t)
		}
	}
	return visible
}

// gridlines spans each tick across the frame: vertical axes draw
// horizontal lines over the frame width, horizontal axes vertical lines
// over its height.
func gridlines(ticks []Tick, p spec.Position, frame spec.Dimensions) []Segment {
	out := make([]Segment, len(ticks))
	for i, t := range ticks {
		if p.IsVertical() {
			out[i] = Segment{X1: 0, Y1: t.Position, X2: frame.Width, Y2: t.Position}
		} else {
			out[i] = Segment{X1: t.Position, Y1: 0, X2: t.Position, Y2: frame.Height}
		}
	}
	return out
}

// stacker tracks how much room the axes already placed on each side take.
type stacker struct {
	top, bottom, left, right float64
}

// Size returns the thickness of an axis box: label, tick and title.
func Size(a spec.AxisSpec, d TickDimensions, t spec.Theme) float64 {
	label := d.MaxLabelBBoxWidth
	if a.Position.IsHorizontal() {
		label = d.MaxLabelBBoxHeight
	}
	size := label + a.TickSize + a.TickPadding
	if a.Title != "" {
		size += t.TitleHeight()
	}
	return size
}

func (s *stacker) place(a spec.AxisSpec, d TickDimensions, l Layout) spec.Dimensions {
	f, m := l.Frame, l.Theme.ChartMargins
	size := Size(a, d, l.Theme)
	box := f

	switch a.Position {
	case spec.PositionLeft:
		box.Left = s.left + m.Left
		box.Width = size
		s.left += m.Left + size
	case spec.PositionRight:
		box.Left = f.Left + f.Width + s.right
		box.Width = size
		s.right += size + m.Right
	case spec.PositionTop:
		box.Top = s.top + m.Top
		box.Height = size
		s.top += size + m.Top
	default:
		box.Top = f.Top + f.Height + s.bottom
		box.Height = size
		s.bottom += size + m.Bottom
	}
	return box
}
