package frame

import (
	"fmt"

	"github.com/matzehuels/chartframe/pkg/spec"
)

// Transform places unrotated series geometry into the frame: rotate around
// the origin, then translate.
type Transform struct {
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Rotate spec.Rotation `json:"rotate"`
}

// TransformFor returns the transform of a rotated chart.
func TransformFor(d spec.Dimensions, rotation spec.Rotation) Transform {
	switch rotation {
	case spec.Rotation90:
		return Transform{X: d.Width, Y: 0, Rotate: rotation}
	case spec.RotationNeg90:
		return Transform{X: 0, Y: d.Height, Rotate: rotation}
	case spec.Rotation180:
		return Transform{X: d.Width, Y: d.Height, Rotate: rotation}
	}
	return Transform{}
}

// Apply maps a point of unrotated geometry to frame coordinates.
func (t Transform) Apply(p spec.Point) spec.Point {
	var q spec.Point
	switch t.Rotate {
	case spec.Rotation90:
		q = spec.Point{X: -p.Y, Y: p.X}
	case spec.RotationNeg90:
		q = spec.Point{X: p.Y, Y: -p.X}
	case spec.Rotation180:
		q = spec.Point{X: -p.X, Y: -p.Y}
	default:
		q = p
	}
	return spec.Point{X: q.X + t.X, Y: q.Y + t.Y}
}

// Invert maps a frame point back to unrotated geometry coordinates.
func (t Transform) Invert(p spec.Point) spec.Point {
	q := spec.Point{X: p.X - t.X, Y: p.Y - t.Y}
	switch t.Rotate {
	case spec.Rotation90:
		return spec.Point{X: q.Y, Y: -q.X}
	case spec.RotationNeg90:
		return spec.Point{X: -q.Y, Y: q.X}
	case spec.Rotation180:
		return spec.Point{X: -q.X, Y: -q.Y}
	}
	return q
}

// SVG returns the transform as an SVG transform attribute value.
func (t Transform) SVG() string {
	return fmt.Sprintf("translate(%g,%g) rotate(%d)", t.X, t.Y, int(t.Rotate))
}
