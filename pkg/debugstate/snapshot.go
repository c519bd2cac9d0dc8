package debugstate

import (
	"github.com/matzehuels/chartframe/pkg/axis"
	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// =============================================================================
// Snapshot
// =============================================================================

// Snapshot is the debug state of one chart.
type Snapshot struct {
	InstanceID string          `json:"instance_id" bson:"instance_id"`
	Rotation   int             `json:"rotation" bson:"rotation"`
	Frame      spec.Dimensions `json:"frame" bson:"frame"`
	Empty      bool            `json:"empty,omitempty" bson:"empty,omitempty"`

	Axes   Axes         `json:"axes" bson:"axes"`
	Legend []LegendItem `json:"legend" bson:"legend"`
	Panels []Panel      `json:"panels,omitempty" bson:"panels,omitempty"`

	Bars  []BarSeries  `json:"bars,omitempty" bson:"bars,omitempty"`
	Lines []LineSeries `json:"lines,omitempty" bson:"lines,omitempty"`
	Areas []AreaSeries `json:"areas,omitempty" bson:"areas,omitempty"`

	Cursor *Cursor `json:"cursor,omitempty" bson:"cursor,omitempty"`
}

// Axes splits axes by the data dimension they show.
type Axes struct {
	X []Axis `json:"x" bson:"x"`
	Y []Axis `json:"y" bson:"y"`
}

// Axis is the projected state of one axis.
type Axis struct {
	ID       string `json:"id" bson:"id"`
	Position string `json:"position" bson:"position"`
	Title    string `json:"title,omitempty" bson:"title,omitempty"`

	// Labels and Values list the visible ticks in position order; hidden
	// overlapping labels are empty strings.
	Labels    []string   `json:"labels" bson:"labels"`
	Values    []any      `json:"values" bson:"values"`
	Gridlines []Gridline `json:"gridlines,omitempty" bson:"gridlines,omitempty"`
}

// Gridline is a gridline segment relative to the chart frame.
type Gridline struct {
	X1 float64 `json:"x1" bson:"x1"`
	Y1 float64 `json:"y1" bson:"y1"`
	X2 float64 `json:"x2" bson:"x2"`
	Y2 float64 `json:"y2" bson:"y2"`
}

// LegendItem is one legend entry.
type LegendItem struct {
	Key        string `json:"key" bson:"key"`
	Name       string `json:"name" bson:"name"`
	Color      string `json:"color" bson:"color"`
	Deselected bool   `json:"deselected,omitempty" bson:"deselected,omitempty"`
}

// Panel is one small-multiple panel.
type Panel struct {
	Title      string          `json:"title,omitempty" bson:"title,omitempty"`
	Dimensions spec.Dimensions `json:"dimensions" bson:"dimensions"`
}

// Bar is one bar in series coordinates.
type Bar struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Value  float64 `json:"value" bson:"value"`
}

// BarSeries is the bars of one series across all panels.
type BarSeries struct {
	Key    string   `json:"key" bson:"key"`
	Name   string   `json:"name" bson:"name"`
	Color  string   `json:"color" bson:"color"`
	Bars   []Bar    `json:"bars" bson:"bars"`
	Labels []string `json:"labels,omitempty" bson:"labels,omitempty"`
}

// Point is a series point in series coordinates.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// LineSeries is the path of one line series in one panel.
type LineSeries struct {
	Key    string  `json:"key" bson:"key"`
	Name   string  `json:"name" bson:"name"`
	Color  string  `json:"color" bson:"color"`
	Path   string  `json:"path" bson:"path"`
	Points []Point `json:"points" bson:"points"`
}

// AreaSeries is the filled path of one area series in one panel.
type AreaSeries struct {
	Key    string   `json:"key" bson:"key"`
	Name   string   `json:"name" bson:"name"`
	Color  string   `json:"color" bson:"color"`
	Path   string   `json:"path" bson:"path"`
	Lines  []string `json:"lines" bson:"lines"`
	Points []Point  `json:"points" bson:"points"`
}

// Cursor is the interaction overlay.
type Cursor struct {
	Value        string           `json:"value,omitempty" bson:"value,omitempty"`
	Band         *spec.Dimensions `json:"band,omitempty" bson:"band,omitempty"`
	Line         *spec.Dimensions `json:"line,omitempty" bson:"line,omitempty"`
	Brush        *spec.Dimensions `json:"brush,omitempty" bson:"brush,omitempty"`
	PointerStyle string           `json:"pointer_style" bson:"pointer_style"`
	Highlighted  []string         `json:"highlighted,omitempty" bson:"highlighted,omitempty"`
}

// =============================================================================
// Conversion
// =============================================================================

// New builds the snapshot of a layout pass. axes are the declared axis
// specs, used for positions, titles and to tell x axes from y axes.
func New(out *pipeline.Output, axes []spec.AxisSpec) Snapshot {
	s := Snapshot{InstanceID: out.InstanceID, Empty: out.Empty()}
	if out.Config == nil || out.Frame == nil {
		return s
	}
	rot := out.Config.Settings.Rotation
	s.Rotation = int(rot)
	s.Frame = out.Frame.Container

	if out.Axes != nil {
		for _, a := range axes {
			p, ok := out.Axes.Projections[a.ID]
			if !ok {
				continue
			}
			ax := axisOf(a, p.Visible, p.Gridlines)
			if spec.IsYDomain(a.Position, rot) {
				s.Axes.Y = append(s.Axes.Y, ax)
			} else {
				s.Axes.X = append(s.Axes.X, ax)
			}
		}
	}

	names := map[series.Key]string{}
	if out.Legend != nil {
		for _, item := range out.Legend.Items {
			names[item.Key] = item.Name
			s.Legend = append(s.Legend, LegendItem{
				Key:        string(item.Key),
				Name:       item.Name,
				Color:      item.Color,
				Deselected: item.Deselected,
			})
		}
	}

	if out.Panels != nil && len(out.Panels.Panels) > 1 {
		for _, p := range out.Panels.Panels {
			s.Panels = append(s.Panels, Panel{Title: p.Title, Dimensions: p.Dimensions})
		}
	}

	if out.Geometries != nil {
		for _, g := range out.Geometries.Panels {
			s.addGeometries(g, names)
		}
	}

	if out.Interaction != nil {
		s.Cursor = cursorOf(out.Interaction)
	}
	return s
}

func axisOf(a spec.AxisSpec, ticks []axis.Tick, grid []axis.Segment) Axis {
	ax := Axis{
		ID:       a.ID,
		Position: string(a.Position),
		Title:    a.Title,
		Labels:   make([]string, len(ticks)),
		Values:   make([]any, len(ticks)),
	}
	for i, t := range ticks {
		ax.Labels[i] = t.Label
		ax.Values[i] = t.Value
	}
	for _, g := range grid {
		ax.Gridlines = append(ax.Gridlines, Gridline{X1: g.X1, Y1: g.Y1, X2: g.X2, Y2: g.Y2})
	}
	return ax
}

func (s *Snapshot) addGeometries(g *geom.Geometries, names map[series.Key]string) {
	bars := map[series.Key]int{}
	for _, b := range g.Bars {
		k := b.Series.Key
		i, ok := bars[k]
		if !ok {
			i = len(s.Bars)
			bars[k] = i
			s.Bars = append(s.Bars, BarSeries{Key: string(k), Name: names[k], Color: b.Color})
		}
		bs := &s.Bars[i]
		bs.Bars = append(bs.Bars, Bar{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height, Value: b.Value.Y})
		if dv := b.DisplayValue; dv != nil && !dv.Hidden {
			bs.Labels = append(bs.Labels, dv.Text)
		}
	}
	for _, l := range g.Lines {
		s.Lines = append(s.Lines, LineSeries{
			Key:    string(l.Series.Key),
			Name:   names[l.Series.Key],
			Color:  l.Color,
			Path:   l.Path,
			Points: pointsOf(l.Points),
		})
	}
	for _, a := range g.Areas {
		s.Areas = append(s.Areas, AreaSeries{
			Key:    string(a.Series.Key),
			Name:   names[a.Series.Key],
			Color:  a.Color,
			Path:   a.Path,
			Lines:  a.Lines,
			Points: pointsOf(a.Points),
		})
	}
}

func pointsOf(points []*geom.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

func cursorOf(in *pipeline.Interaction) *Cursor {
	c := &Cursor{
		PointerStyle: string(in.PointerStyle),
		Line:         in.CursorLine,
		Brush:        in.Brush,
	}
	if in.Value != nil {
		c.Value = spec.FormatValue(in.Value)
	}
	if in.CursorBand != nil {
		r := in.CursorBand.Rect
		c.Band = &r
	}
	for _, g := range in.Highlighted {
		if id, ok := geom.SeriesOf(g); ok {
			c.Highlighted = append(c.Highlighted, string(id.Key))
		}
	}
	return c
}
