package interaction

import (
	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/panel"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Input is everything the interaction layer of one chart depends on.
type Input struct {
	// Frame is the plotting area, or the hovered panel, in container
	// coordinates.
	Frame    spec.Dimensions
	Rotation spec.Rotation

	Geometries *geom.Geometries

	// XData is the sorted x data of the chart.
	XData []any

	State    spec.InteractionState
	Settings spec.Settings

	// Format formats tooltip y values; nil uses the default formatter.
	Format spec.Formatter
}

// Result is the interaction overlay of one chart. Nil fields have nothing
// to draw.
type Result struct {
	Value any `json:"value,omitempty"`

	CursorLine  *spec.Dimensions `json:"cursor_line,omitempty"`
	CursorBand  *Band            `json:"cursor_band,omitempty"`
	Brush       *spec.Dimensions `json:"brush,omitempty"`
	BrushExtent *Extent          `json:"brush_extent,omitempty"`

	Highlighted  []geom.Geometry `json:"-"`
	PointerStyle PointerStyle    `json:"pointer_style"`
	Tooltip      []TooltipValue  `json:"tooltip,omitempty"`
}

// Project computes the interaction overlay.
func Project(in Input) Result {
	res := Result{PointerStyle: PointerDefault}
	g := in.Geometries
	if in.Frame.Empty() || g.Empty() {
		return res
	}
	st := in.State

	if l, ok := CursorLine(in.Frame, in.Rotation, st.Pointer); ok {
		res.CursorLine = &l
	}

	band, ok := CursorBand(BandInput{
		Frame:         in.Frame,
		Rotation:      in.Rotation,
		Scales:        g.Scales,
		XData:         in.XData,
		Pointer:       st.Pointer,
		ExternalValue: st.ExternalValue,
		DisableSnap:   in.Settings.DisableCursorSnap,
	})
	if ok {
		res.CursorBand = &band
		res.Value = band.Value
	}

	var target *Target
	if st.Pointer != nil && res.Value != nil && !band.FromExternal {
		if p, ok := unrotated(in.Frame, in.Rotation, *st.Pointer); ok {
			target = &Target{Value: res.Value, Point: p}
		}
	}
	res.Highlighted = Highlighted(g, target, st.HighlightedKey)
	res.Tooltip = TooltipValues(g, res.Value, res.Highlighted, in.Format)

	if in.Settings.BrushEnabled && st.Dragging && st.DownAt != nil && st.Pointer != nil {
		axis := in.Settings.Brush()
		if r, ok := BrushRect(in.Frame, in.Rotation, axis, *st.DownAt, *st.Pointer); ok {
			res.Brush = &r
			if e, ok := BrushExtent(in.Frame, in.Rotation, axis, g.Scales, r); ok {
				res.BrushExtent = &e
			}
		}
	}

	res.PointerStyle = StyleFor(in.Frame, st.Pointer, res.Highlighted, in.Settings.BrushEnabled)
	return res
}

// PanelAt returns the small-multiple panel under p and its rectangle in
// container coordinates. Panel dimensions are relative to frame.
func PanelAt(panels []panel.Panel, frame spec.Dimensions, p spec.Point) (int, spec.Dimensions, bool) {
	for i, pn := range panels {
		d := pn.Dimensions
		d.Left += frame.Left
		d.Top += frame.Top
		if !d.Empty() && d.Contains(p) {
			return i, d, true
		}
	}
	return -1, spec.Dimensions{}, false
}
