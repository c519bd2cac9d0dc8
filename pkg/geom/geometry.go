package geom

import (
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Kind names a geometry variant.
type Kind string

// Geometry kinds.
const (
	KindBar            Kind = "bar"
	KindLine           Kind = "line"
	KindArea           Kind = "area"
	KindPoint          Kind = "point"
	KindAnnotationLine Kind = "annotation_line"
	KindAnnotationRect Kind = "annotation_rect"
)

// Geometry is one drawable element.
type Geometry interface {
	Kind() Kind

	// Bounds is the axis-aligned box of the element in unrotated
	// coordinates.
	Bounds() spec.Dimensions

	geometry()
}

// Value is the data value a geometry was built from.
type Value struct {
	X any     `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Bar is one bar of a bar series. Height is negative for bars below
// their baseline.
type Bar struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	Color        string            `json:"color" bson:"color"`
	Value        Value             `json:"value" bson:"value"`
	Series       series.Identifier `json:"series" bson:"series"`
	DisplayValue *DisplayValue     `json:"display_value,omitempty" bson:"display_value,omitempty"`
}

// DisplayValue is the value label of a bar. Its box is in frame
// coordinates, upright whatever the chart rotation.
type DisplayValue struct {
	Text string          `json:"text" bson:"text"`
	Box  spec.Dimensions `json:"box" bson:"box"`

	ContainedInElement bool `json:"contained_in_element,omitempty" bson:"contained_in_element,omitempty"`

	// Hidden is set for labels clipped by the frame when the series hides
	// clipped values.
	Hidden bool `json:"hidden,omitempty" bson:"hidden,omitempty"`
}

// Point is a data point of a line or area series, or a point annotation.
type Point struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Radius float64 `json:"radius" bson:"radius"`

	Color  string            `json:"color" bson:"color"`
	Value  Value             `json:"value" bson:"value"`
	Series series.Identifier `json:"series" bson:"series"`

	// AnnotationID is set for point annotations.
	AnnotationID string `json:"annotation_id,omitempty" bson:"annotation_id,omitempty"`
}

// Line is the path of a line series.
type Line struct {
	Path   string            `json:"path" bson:"path"`
	Points []*Point          `json:"points" bson:"points"`
	Color  string            `json:"color" bson:"color"`
	Series series.Identifier `json:"series" bson:"series"`
}

// Area is the filled path of an area series with its top line.
type Area struct {
	Path    string            `json:"path" bson:"path"`
	Lines   []string          `json:"lines" bson:"lines"`
	Points  []*Point          `json:"points" bson:"points"`
	Color   string            `json:"color" bson:"color"`
	Series  series.Identifier `json:"series" bson:"series"`
	Stacked bool              `json:"stacked" bson:"stacked"`
}

// AnnotationLine is one line of a line annotation.
type AnnotationLine struct {
	AnnotationID string  `json:"annotation_id" bson:"annotation_id"`
	X1           float64 `json:"x1" bson:"x1"`
	Y1           float64 `json:"y1" bson:"y1"`
	X2           float64 `json:"x2" bson:"x2"`
	Y2           float64 `json:"y2" bson:"y2"`
	Value        any     `json:"value" bson:"value"`
	Color        string  `json:"color" bson:"color"`
}

// AnnotationRect is the area of a rect annotation.
type AnnotationRect struct {
	AnnotationID string          `json:"annotation_id" bson:"annotation_id"`
	Rect         spec.Dimensions `json:"rect" bson:"rect"`
	Color        string          `json:"color" bson:"color"`
}

func (*Bar) Kind() Kind            { return KindBar }
func (*Line) Kind() Kind           { return KindLine }
func (*Area) Kind() Kind           { return KindArea }
func (*Point) Kind() Kind          { return KindPoint }
func (*AnnotationLine) Kind() Kind { return KindAnnotationLine }
func (*AnnotationRect) Kind() Kind { return KindAnnotationRect }

func (*Bar) geometry()            {}
func (*Line) geometry()           {}
func (*Area) geometry()           {}
func (*Point) geometry()          {}
func (*AnnotationLine) geometry() {}
func (*AnnotationRect) geometry() {}

// Bounds implements Geometry. Negative heights are normalized.
func (b *Bar) Bounds() spec.Dimensions {
	d := spec.Dimensions{Left: b.X, Top: b.Y, Width: b.Width, Height: b.Height}
	if d.Height < 0 {
		d.Top += d.Height
		d.Height = -d.Height
	}
	return d
}

// Bounds implements Geometry.
func (p *Point) Bounds() spec.Dimensions {
	return spec.Dimensions{Left: p.X - p.Radius, Top: p.Y - p.Radius, Width: 2 * p.Radius, Height: 2 * p.Radius}
}

// Bounds implements Geometry.
func (l *Line) Bounds() spec.Dimensions { return pointBounds(l.Points) }

// Bounds implements Geometry.
func (a *Area) Bounds() spec.Dimensions { return pointBounds(a.Points) }

// Bounds implements Geometry.
func (l *AnnotationLine) Bounds() spec.Dimensions {
	return spec.Dimensions{
		Left:   min(l.X1, l.X2),
		Top:    min(l.Y1, l.Y2),
		Width:  abs(l.X2 - l.X1),
		Height: abs(l.Y2 - l.Y1),
	}
}

// Bounds implements Geometry.
func (r *AnnotationRect) Bounds() spec.Dimensions { return r.Rect }

func pointBounds(points []*Point) spec.Dimensions {
	if len(points) == 0 {
		return spec.Dimensions{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return spec.Dimensions{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// SeriesOf returns the series a geometry belongs to. Annotations report
// false.
func SeriesOf(g Geometry) (series.Identifier, bool) {
	switch g := g.(type) {
	case *Bar:
		return g.Series, true
	case *Line:
		return g.Series, true
	case *Area:
		return g.Series, true
	case *Point:
		return g.Series, g.AnnotationID == ""
	}
	return series.Identifier{}, false
}
