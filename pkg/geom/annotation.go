package geom

import (
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// annotationColor is used by annotations that name no color.
const annotationColor = "#777777"

func (b *builder) annotations() {
	for _, a := range b.in.Annotations {
		if a.Hide {
			continue
		}
		y, ok := b.scales.YFor(a.Group())
		if !ok {
			continue
		}
		color := normalizeHex(a.Color, annotationColor)

		var built []Geometry
		switch a.Kind {
		case spec.AnnotationLine:
			built = b.annotationLines(a, y, color)
		case spec.AnnotationRect:
			if r := b.annotationRect(a, y, color); r != nil {
				built = append(built, r)
			}
		case spec.AnnotationPoint:
			if p := b.annotationPoint(a, y, color); p != nil {
				built = append(built, p)
			}
		}

		z := layerAnnotations
		if a.ZIndex != nil {
			z = *a.ZIndex
		}
		for _, g := range built {
			b.g.Annotations = append(b.g.Annotations, g)
			b.annotationZ = append(b.annotationZ, z)
		}
		b.g.Counts.Annotations += len(built)
	}
}

// clusterCenter is the x offset from a band start to the middle of its
// bar cluster.
func (b *builder) clusterCenter() float64 {
	return b.scales.X.Bandwidth() * float64(b.scales.Clusters.Total) / 2
}

// annotationLines draws one line across the frame per value inside the
// domain.
func (b *builder) annotationLines(a spec.AnnotationSpec, y *scale.Continuous, color string) []Geometry {
	var out []Geometry
	for _, v := range a.Values {
		l := &AnnotationLine{AnnotationID: a.ID, Value: v, Color: color}
		if a.Domain == spec.AnnotationYDomain {
			f, ok := spec.ToFloat(v)
			if !ok || !b.yInDomain(a, f) {
				continue
			}
			py := y.ScaleFloat(f)
			l.X1, l.Y1, l.X2, l.Y2 = 0, py, b.width, py
		} else {
			if !b.scales.X.InDomain(v) {
				continue
			}
			px, ok := b.scales.X.Scale(v)
			if !ok {
				continue
			}
			px += b.clusterCenter()
			l.X1, l.Y1, l.X2, l.Y2 = px, 0, px, b.height
		}
		out = append(out, l)
	}
	return out
}

func (b *builder) yInDomain(a spec.AnnotationSpec, v float64) bool {
	y, ok := b.scales.YFor(a.Group())
	return ok && y.InDomain(v)
}

// annotationRect spans the given sides, extending missing ones to the
// domain edges, and clips the result to the frame. Rects entirely
// outside the frame are dropped.
func (b *builder) annotationRect(a spec.AnnotationSpec, y *scale.Continuous, color string) *AnnotationRect {
	x0, x1 := 0.0, b.width
	if a.X0 != nil {
		px, ok := b.scales.X.Scale(a.X0)
		if !ok {
			return nil
		}
		x0 = px
	}
	if a.X1 != nil {
		px, ok := b.scales.X.Scale(a.X1)
		if !ok {
			return nil
		}
		x1 = px + b.scales.X.Bandwidth()*float64(max(b.scales.Clusters.Total, 1))
	}
	y0, y1 := b.height, 0.0
	if a.Y0 != nil {
		y0 = y.ScaleFloat(*a.Y0)
	}
	if a.Y1 != nil {
		y1 = y.ScaleFloat(*a.Y1)
	}

	left, right := clamp(min(x0, x1), 0, b.width), clamp(max(x0, x1), 0, b.width)
	top, bottom := clamp(min(y0, y1), 0, b.height), clamp(max(y0, y1), 0, b.height)
	if right-left <= 0 || bottom-top <= 0 {
		return nil
	}
	return &AnnotationRect{
		AnnotationID: a.ID,
		Rect:         spec.Dimensions{Left: left, Top: top, Width: right - left, Height: bottom - top},
		Color:        color,
	}
}

func (b *builder) annotationPoint(a spec.AnnotationSpec, y *scale.Continuous, color string) *Point {
	if a.X == nil || a.Y == nil || !b.scales.X.InDomain(a.X) || !b.yInDomain(a, *a.Y) {
		return nil
	}
	px, ok := b.scales.X.Scale(a.X)
	if !ok {
		return nil
	}
	return &Point{
		X:            px + b.clusterCenter(),
		Y:            y.ScaleFloat(*a.Y),
		Radius:       pointRadius,
		Color:        color,
		Value:        Value{X: a.X, Y: *a.Y},
		AnnotationID: a.ID,
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
