package interaction

import (
	"github.com/matzehuels/chartframe/pkg/frame"
	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// lineBand is the snap band of scales without bands, for lines and areas.
const lineBand = 1

// local maps a container point into the frame. It reports false for
// points outside the frame.
func local(f spec.Dimensions, p spec.Point) (spec.Point, bool) {
	if f.Empty() || !f.Contains(p) {
		return spec.Point{}, false
	}
	return spec.Point{X: p.X - f.Left, Y: p.Y - f.Top}, true
}

// unrotated maps a container point to series coordinates.
func unrotated(f spec.Dimensions, rotation spec.Rotation, p spec.Point) (spec.Point, bool) {
	lp, ok := local(f, p)
	if !ok {
		return spec.Point{}, false
	}
	return transformOf(f, rotation).Invert(lp), true
}

func transformOf(f spec.Dimensions, rotation spec.Rotation) frame.Transform {
	return frame.TransformFor(spec.Dimensions{Width: f.Width, Height: f.Height}, rotation)
}

// toContainer maps an unrotated rectangle to container coordinates.
func toContainer(f spec.Dimensions, rotation spec.Rotation, d spec.Dimensions) spec.Dimensions {
	t := transformOf(f, rotation)
	a := t.Apply(spec.Point{X: d.Left, Y: d.Top})
	c := t.Apply(spec.Point{X: d.Left + d.Width, Y: d.Top + d.Height})
	return spec.Dimensions{
		Left:   f.Left + min(a.X, c.X),
		Top:    f.Top + min(a.Y, c.Y),
		Width:  abs(c.X - a.X),
		Height: abs(c.Y - a.Y),
	}
}

// seriesSize is the size of the frame in series coordinates.
func seriesSize(f spec.Dimensions, rotation spec.Rotation) (w, h float64) {
	if rotation.IsVertical() {
		return f.Height, f.Width
	}
	return f.Width, f.Height
}

// CursorLine returns the crosshair line through the pointer, across the
// frame and perpendicular to the value axis: horizontal for 0 and 180
// degree charts, vertical otherwise.
func CursorLine(f spec.Dimensions, rotation spec.Rotation, pointer *spec.Point) (spec.Dimensions, bool) {
	if pointer == nil {
		return spec.Dimensions{}, false
	}
	if _, ok := local(f, *pointer); !ok {
		return spec.Dimensions{}, false
	}
	if rotation.IsHorizontal() {
		return spec.Dimensions{Left: f.Left, Top: pointer.Y, Width: f.Width}, true
	}
	return spec.Dimensions{Left: pointer.X, Top: f.Top, Height: f.Height}, true
}

// Snap is an x value snapped to its band.
type Snap struct {
	Value any

	// Position and Band are the start and width of the value's cluster in
	// series coordinates.
	Position float64
	Band     float64
}

// SnapTo returns the band of x value v. Band scales cover the full cluster
// including padding; scales without bands get a thin band.
func SnapTo(x scale.Scale, v any, clusters int) (Snap, bool) {
	pos, ok := x.Scale(v)
	if !ok {
		return Snap{}, false
	}
	bw := x.Bandwidth()
	if bw <= 0 {
		return Snap{Value: v, Position: pos, Band: lineBand}, true
	}
	clusters = max(clusters, 1)
	band := bw
	if p := x.BarsPadding(); p < 1 {
		band = bw / (1 - p)
	}
	halfPadding := (band - bw) / 2
	return Snap{
		Value:    v,
		Position: pos - halfPadding*float64(clusters),
		Band:     band * float64(clusters),
	}, true
}

// BandInput is what CursorBand needs.
type BandInput struct {
	Frame    spec.Dimensions
	Rotation spec.Rotation
	Scales   scale.Set

	// XData is the sorted x data, for snapping on linear scales.
	XData []any

	Pointer *spec.Point

	// ExternalValue replaces the pointer when it is inside the x domain.
	ExternalValue any

	DisableSnap bool
}

// Band is the cursor band and the x value it marks.
type Band struct {
	Rect  spec.Dimensions `json:"rect"`
	Value any             `json:"value"`

	// FromExternal is set when an external value placed the band.
	FromExternal bool `json:"from_external,omitempty"`
}

// CursorBand returns the band highlighting the x value under the pointer,
// snapped to the value's cluster. With snapping disabled, or on charts
// without bars, the band collapses to a line at the pointer or snapped
// value.
func CursorBand(in BandInput) (Band, bool) {
	x := in.Scales.X
	if x == nil || in.Frame.Empty() {
		return Band{}, false
	}
	w, h := seriesSize(in.Frame, in.Rotation)
	clusters := in.Scales.Clusters.Total

	if in.ExternalValue != nil && x.InDomain(in.ExternalValue) {
		s, ok := SnapTo(x, in.ExternalValue, clusters)
		if !ok {
			return Band{}, false
		}
		return Band{
			Rect:         toContainer(in.Frame, in.Rotation, bandRect(s, x, h)),
			Value:        s.Value,
			FromExternal: true,
		}, true
	}

	if in.Pointer == nil {
		return Band{}, false
	}
	p, ok := unrotated(in.Frame, in.Rotation, *in.Pointer)
	if !ok {
		return Band{}, false
	}
	inv, ok := x.InvertWithStep(p.X, in.XData)
	if !ok || inv.Value == nil {
		return Band{}, false
	}

	var rect spec.Dimensions
	if in.DisableSnap {
		rect = spec.Dimensions{Left: p.X, Height: h}
	} else {
		s, ok := SnapTo(x, inv.Value, clusters)
		if !ok {
			return Band{}, false
		}
		rect = bandRect(s, x, h)
	}
	if rect.Left < 0 || rect.Left > w {
		return Band{}, false
	}
	return Band{Rect: toContainer(in.Frame, in.Rotation, rect), Value: inv.Value}, true
}

func bandRect(s Snap, x scale.Scale, h float64) spec.Dimensions {
	width := s.Band
	if x.Bandwidth() <= 0 {
		width = 0
	}
	return spec.Dimensions{Left: s.Position, Width: width, Height: h}
}

// PointerStyle is the cursor token a host should display.
type PointerStyle string

// Pointer styles.
const (
	PointerDefault   PointerStyle = "default"
	PointerHover     PointerStyle = "pointer"
	PointerCrosshair PointerStyle = "crosshair"
)

// StyleFor picks the pointer style: pointer over highlighted geometry,
// crosshair inside a brushable frame, default otherwise.
func StyleFor(f spec.Dimensions, pointer *spec.Point, highlighted []geom.Geometry, brushEnabled bool) PointerStyle {
	if pointer == nil {
		return PointerDefault
	}
	if _, ok := local(f, *pointer); !ok {
		return PointerDefault
	}
	if len(highlighted) > 0 {
		return PointerHover
	}
	if brushEnabled {
		return PointerCrosshair
	}
	return PointerDefault
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
