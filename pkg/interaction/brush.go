package interaction

import (
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// BrushRect returns the brush rectangle between the mouse-down anchor and
// the current pointer. Brushing a single data axis spans the whole frame
// along the other one. Both points are clamped into the frame.
func BrushRect(f spec.Dimensions, rotation spec.Rotation, axis spec.BrushAxis, down, current spec.Point) (spec.Dimensions, bool) {
	if f.Empty() {
		return spec.Dimensions{}, false
	}
	a, b := clampInto(f, down), clampInto(f, current)
	left, right := min(a.X, b.X), max(a.X, b.X)
	top, bottom := min(a.Y, b.Y), max(a.Y, b.Y)

	horizontal := rotation.IsHorizontal()
	switch axis {
	case spec.BrushX:
	case spec.BrushY:
		horizontal = !horizontal
	default:
		return spec.Dimensions{Left: left, Top: top, Width: right - left, Height: bottom - top}, true
	}
	if horizontal {
		return spec.Dimensions{Left: left, Top: f.Top, Width: right - left, Height: f.Height}, true
	}
	return spec.Dimensions{Left: f.Left, Top: top, Width: f.Width, Height: bottom - top}, true
}

func clampInto(f spec.Dimensions, p spec.Point) spec.Point {
	return spec.Point{
		X: max(f.Left, min(p.X, f.Left+f.Width)),
		Y: max(f.Top, min(p.Y, f.Top+f.Height)),
	}
}

// Extent is a brush rectangle inverted into data values.
type Extent struct {
	// X is set when brushing the x axis. Linear scales report the exact
	// values at the edges; ordinal scales report the values under them.
	X *[2]any `json:"x,omitempty"`

	// Y holds one ascending range per y group when brushing y.
	Y map[string][2]float64 `json:"y,omitempty"`
}

// BrushExtent inverts a brush rectangle into data values.
func BrushExtent(f spec.Dimensions, rotation spec.Rotation, axis spec.BrushAxis, scales scale.Set, rect spec.Dimensions) (Extent, bool) {
	if f.Empty() || scales.X == nil {
		return Extent{}, false
	}
	local := spec.Dimensions{Left: rect.Left - f.Left, Top: rect.Top - f.Top, Width: rect.Width, Height: rect.Height}
	// Series-space corners of the rectangle.
	t := transformOf(f, rotation)
	p0 := t.Invert(spec.Point{X: local.Left, Y: local.Top})
	p1 := t.Invert(spec.Point{X: local.Left + local.Width, Y: local.Top + local.Height})
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)

	var e Extent
	if axis == spec.BrushX || axis == spec.BrushBoth {
		lo, ok0 := scales.X.Invert(x0)
		hi, ok1 := scales.X.Invert(x1)
		if ok0 && ok1 {
			if c, ok := scales.X.(*scale.Continuous); ok && c.IsInverted() {
				lo, hi = hi, lo
			}
			e.X = &[2]any{lo, hi}
		}
	}
	if axis == spec.BrushY || axis == spec.BrushBoth {
		e.Y = make(map[string][2]float64, len(scales.Y))
		for id, y := range scales.Y {
			a, b := y.InvertFloat(y0), y.InvertFloat(y1)
			e.Y[id] = [2]float64{min(a, b), max(a, b)}
		}
	}
	return e, e.X != nil || len(e.Y) > 0
}
