// Package preview renders computed charts as static SVG.
//
// The preview draws what a paint backend would: the frame, axis ticks,
// labels and gridlines, every series geometry in draw order, and
// optionally the interaction overlay. It exists for inspection; it is not
// a charting renderer.
package preview

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/chartframe/pkg/axis"
	"github.com/matzehuels/chartframe/pkg/fonts"
	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/spec"
)

const (
	axisColor     = "#69707d"
	gridColor     = "#d3dae6"
	overlayColor  = "#98a2b3"
	highlightDim  = 0.25
	labelFontSize = 10.0
)

// Option configures the preview.
type Option func(*renderer)

type renderer struct {
	axes       map[string]spec.AxisSpec
	overlay    bool
	background string
}

// WithAxes draws ticks and labels of the given axes.
func WithAxes(axes []spec.AxisSpec) Option {
	return func(r *renderer) {
		for _, a := range axes {
			r.axes[a.ID] = a
		}
	}
}

// WithOverlay draws the cursor, brush and highlight state.
func WithOverlay() Option { return func(r *renderer) { r.overlay = true } }

// WithBackground fills the container with a color.
func WithBackground(color string) Option { return func(r *renderer) { r.background = color } }

// RenderSVG renders the output of a layout pass inside a container of the
// given size.
func RenderSVG(out *pipeline.Output, c spec.Container, opts ...Option) []byte {
	r := &renderer{axes: map[string]spec.AxisSpec{}}
	for _, opt := range opts {
		opt(r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}
	if out == nil || out.Frame == nil {
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	f := out.Frame.Container
	if out.Axes != nil {
		r.renderGridlines(&buf, f, out.Axes)
	}
	if out.Geometries != nil && out.Panels != nil {
		r.renderPanels(&buf, out)
	}
	if out.Axes != nil {
		r.renderAxes(&buf, f, out.Axes)
	}
	if r.overlay && out.Interaction != nil {
		renderOverlay(&buf, out.Interaction)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) renderGridlines(buf *bytes.Buffer, f spec.Dimensions, axes *pipeline.Axes) {
	buf.WriteString(`  <g class="gridlines">` + "\n")
	for _, id := range sortedKeys(axes.Projections) {
		for _, s := range axes.Projections[id].Gridlines {
			fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
				f.Left+s.X1, f.Top+s.Y1, f.Left+s.X2, f.Top+s.Y2, gridColor)
		}
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) renderPanels(buf *bytes.Buffer, out *pipeline.Output) {
	f := out.Frame.Container
	for i, g := range out.Geometries.Panels {
		if i >= len(out.Panels.Panels) || g.Empty() {
			continue
		}
		p := out.Panels.Panels[i]
		fmt.Fprintf(buf, `  <g class="panel" transform="translate(%.2f,%.2f) %s">`+"\n",
			f.Left+p.Dimensions.Left, f.Top+p.Dimensions.Top, g.Transform.SVG())

		var highlighted map[geom.Geometry]bool
		if in := out.Interaction; r.overlay && in != nil && in.Panel == i && len(in.Highlighted) > 0 {
			highlighted = make(map[geom.Geometry]bool, len(in.Highlighted))
			for _, h := range in.Highlighted {
				highlighted[h] = true
			}
		}
		for _, el := range g.Ordered() {
			renderGeometry(buf, el, highlighted)
		}
		buf.WriteString("  </g>\n")
	}
}

// renderGeometry writes one element. With a highlight set, elements
// outside of it are drawn faded.
func renderGeometry(buf *bytes.Buffer, el geom.Geometry, highlighted map[geom.Geometry]bool) {
	opacity := 1.0
	if highlighted != nil && !highlighted[el] {
		if _, ok := geom.SeriesOf(el); ok {
			opacity = highlightDim
		}
	}

	switch el := el.(type) {
	case *geom.Bar:
		b := el.Bounds()
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" opacity="%g"/>`+"\n",
			b.Left, b.Top, b.Width, b.Height, el.Color, opacity)
	case *geom.Area:
		fmt.Fprintf(buf, `    <path d="%s" fill="%s" fill-opacity="%g"/>`+"\n", el.Path, el.Color, 0.6*opacity)
		for _, l := range el.Lines {
			fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" opacity="%g"/>`+"\n", l, el.Color, opacity)
		}
	case *geom.Line:
		fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="1.5" opacity="%g"/>`+"\n",
			el.Path, el.Color, opacity)
		for _, p := range el.Points {
			fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%g" fill="white" stroke="%s" opacity="%g"/>`+"\n",
				p.X, p.Y, p.Radius, p.Color, opacity)
		}
	case *geom.Point:
		fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%g" fill="%s"/>`+"\n", el.X, el.Y, el.Radius, el.Color)
	case *geom.AnnotationLine:
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
			el.X1, el.Y1, el.X2, el.Y2, el.Color)
	case *geom.AnnotationRect:
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="0.2"/>`+"\n",
			el.Rect.Left, el.Rect.Top, el.Rect.Width, el.Rect.Height, el.Color)
	}
}

func (r *renderer) renderAxes(buf *bytes.Buffer, f spec.Dimensions, axes *pipeline.Axes) {
	buf.WriteString(`  <g class="axes">` + "\n")
	for _, id := range sortedKeys(axes.Projections) {
		a, ok := r.axes[id]
		if !ok || a.Hide {
			continue
		}
		p := axes.Projections[id]
		box := p.Position
		for _, t := range p.Visible {
			x1, y1, x2, y2, lx, ly, anchor := tickGeometry(a, box, f, t.Position)
			fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
				x1, y1, x2, y2, axisColor)
			if t.Label != "" {
				fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="%s" font-family="%s" font-size="%g" fill="%s">`,
					lx, ly, anchor, fonts.FallbackFontFamily, labelFontSize, axisColor)
				writeText(buf, t.Label)
				buf.WriteString("</text>\n")
			}
		}
	}
	buf.WriteString("  </g>\n")
}

// tickGeometry returns the tick segment and label anchor of a tick at pos
// along an axis whose box is box.
func tickGeometry(a spec.AxisSpec, box, f spec.Dimensions, pos float64) (x1, y1, x2, y2, lx, ly float64, anchor string) {
	switch a.Position {
	case spec.PositionLeft:
		x1 = box.Left + box.Width
		y1 = f.Top + pos
		return x1, y1, x1 - a.TickSize, y1, x1 - a.TickSize - a.TickPadding, y1 + labelFontSize/3, "end"
	case spec.PositionRight:
		x1 = box.Left
		y1 = f.Top + pos
		return x1, y1, x1 + a.TickSize, y1, x1 + a.TickSize + a.TickPadding, y1 + labelFontSize/3, "start"
	case spec.PositionTop:
		x1 = f.Left + pos
		y1 = box.Top + box.Height
		return x1, y1, x1, y1 - a.TickSize, x1, y1 - a.TickSize - a.TickPadding, "middle"
	}
	x1 = f.Left + pos
	y1 = box.Top
	return x1, y1, x1, y1 + a.TickSize, x1, y1 + a.TickSize + a.TickPadding + labelFontSize, "middle"
}

func renderOverlay(buf *bytes.Buffer, in *pipeline.Interaction) {
	buf.WriteString(`  <g class="overlay">` + "\n")
	if b := in.CursorBand; b != nil {
		writeRect(buf, b.Rect, fmt.Sprintf(`fill="%s" fill-opacity="0.2"`, overlayColor))
	}
	if l := in.CursorLine; l != nil {
		writeRect(buf, *l, fmt.Sprintf(`fill="%s"`, overlayColor))
	}
	if b := in.Brush; b != nil {
		writeRect(buf, *b, fmt.Sprintf(`fill="%s" fill-opacity="0.3" stroke="%s"`, overlayColor, axisColor))
	}
	buf.WriteString("  </g>\n")
}

func writeRect(buf *bytes.Buffer, d spec.Dimensions, attrs string) {
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>`+"\n",
		d.Left, d.Top, max(d.Width, 1), max(d.Height, 1), attrs)
}

func writeText(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}

func sortedKeys(m map[string]axis.Projection) []string {
	return slices.Sorted(maps.Keys(m))
}
