package interaction

import (
	"math"

	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// pointHitRadius is the distance within which a line or area point counts
// as hovered.
const pointHitRadius = 10

// Target is what the pointer is over.
type Target struct {
	// Value is the x value under the pointer, nil when none.
	Value any

	// Point is the pointer in series coordinates.
	Point spec.Point
}

// Highlighted returns the geometries to highlight: those at the hovered x
// value that lie under the pointer, then every geometry of the legend
// series being hovered. Each geometry appears once.
func Highlighted(g *geom.Geometries, target *Target, legendKey string) []geom.Geometry {
	if g.Empty() {
		return nil
	}
	var out []geom.Geometry
	seen := make(map[geom.Geometry]bool)
	add := func(c geom.Geometry) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	if target != nil && target.Value != nil {
		for _, c := range g.Index.At(target.Value) {
			if under(c, target.Point) {
				add(c)
			}
		}
	}
	if legendKey != "" {
		for _, c := range g.Ordered() {
			if id, ok := geom.SeriesOf(c); ok && id.Key == series.Key(legendKey) {
				add(c)
			}
		}
	}
	return out
}

func under(g geom.Geometry, p spec.Point) bool {
	switch g := g.(type) {
	case *geom.Bar:
		return g.Bounds().Contains(p)
	case *geom.Point:
		return math.Hypot(g.X-p.X, g.Y-p.Y) <= max(g.Radius, pointHitRadius)
	}
	return false
}

// TooltipValue is one row of a tooltip.
type TooltipValue struct {
	Series      series.Key `json:"series"`
	Color       string     `json:"color"`
	X           string     `json:"x"`
	Y           string     `json:"y"`
	Highlighted bool       `json:"highlighted,omitempty"`
}

// TooltipValues lists every series value drawn at x, formatted with
// format, flagging the highlighted ones.
func TooltipValues(g *geom.Geometries, x any, highlighted []geom.Geometry, format spec.Formatter) []TooltipValue {
	if g.Empty() || x == nil {
		return nil
	}
	if format == nil {
		format = spec.FormatValue
	}
	hot := make(map[geom.Geometry]bool, len(highlighted))
	for _, h := range highlighted {
		hot[h] = true
	}
	var out []TooltipValue
	for _, c := range g.Index.At(x) {
		id, ok := geom.SeriesOf(c)
		if !ok {
			continue
		}
		tv := TooltipValue{Series: id.Key, X: spec.FormatValue(x), Highlighted: hot[c]}
		switch c := c.(type) {
		case *geom.Bar:
			tv.Color, tv.Y = c.Color, format(c.Value.Y)
		case *geom.Point:
			tv.Color, tv.Y = c.Color, format(c.Value.Y)
		}
		out = append(out, tv)
	}
	return out
}
