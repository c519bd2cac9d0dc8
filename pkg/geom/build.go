package geom

import (
	"cmp"
	"slices"

	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/frame"
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
	"github.com/matzehuels/chartframe/pkg/textmeasure"
)

const (
	// displayValuePadding is added around measured display values.
	displayValuePadding = 1

	pointRadius = 3
)

// Input is everything the geometry of one chart (or one small-multiple
// panel) depends on.
type Input struct {
	Result *domain.Result

	// Frame is the size of the plotting area; its origin is ignored.
	Frame spec.Dimensions

	Rotation    spec.Rotation
	Theme       spec.Theme
	Axes        []spec.AxisSpec
	Annotations []spec.AnnotationSpec

	// SeriesSpecs lists every declared series so colors stay stable when
	// series are deselected. It defaults to Result.Specs.
	SeriesSpecs []spec.SeriesSpec

	// Filter restricts the data to datums whose fields format to the
	// given values, to build one small-multiple panel.
	Filter map[string]string

	// Surface measures display values. Nil falls back to estimates.
	Surface textmeasure.Surface
}

// Counts tallies the built geometry.
type Counts struct {
	Bars        int `json:"bars" bson:"bars"`
	Lines       int `json:"lines" bson:"lines"`
	LinePoints  int `json:"line_points" bson:"line_points"`
	Areas       int `json:"areas" bson:"areas"`
	AreaPoints  int `json:"area_points" bson:"area_points"`
	Annotations int `json:"annotations" bson:"annotations"`
}

// Geometries is the geometry of one chart.
type Geometries struct {
	Bars        []*Bar
	Areas       []*Area
	Lines       []*Line
	Annotations []Geometry

	Counts    Counts
	Index     Index
	Scales    scale.Set
	Transform frame.Transform

	// Colors maps every series, deselected ones included, to its color.
	Colors map[series.Key]string

	order []Geometry
}

// Ordered returns every geometry in draw order: bars, areas, lines, then
// annotations. Annotations with a z-index are placed by it, bars being
// layer 0, areas 1, lines 2 and other annotations 3.
func (g *Geometries) Ordered() []Geometry {
	if g == nil {
		return nil
	}
	return g.order
}

// Empty reports whether nothing was built.
func (g *Geometries) Empty() bool {
	return g == nil || len(g.order) == 0
}

// IsChartEmpty reports whether a chart has nothing to draw: no visible
// series, every series deselected, or no x values.
func IsChartEmpty(r *domain.Result) bool {
	return r.Empty()
}

// Build computes the geometry of every visible series and annotation.
// An empty chart or frame yields empty geometries.
func Build(in Input) *Geometries {
	g := &Geometries{Index: Index{}}
	r := in.Result
	if r == nil {
		return g
	}
	specs := in.SeriesSpecs
	if specs == nil {
		specs = r.Specs
	}
	g.Colors = Colors(r.All, specs, in.Theme)
	if IsChartEmpty(r) || in.Frame.Empty() {
		return g
	}

	scales, ok := scale.ForChart(r, in.Frame.Width, in.Frame.Height, in.Rotation, in.Theme)
	if !ok {
		return g
	}
	g.Scales = scales
	g.Transform = frame.TransformFor(spec.Dimensions{Width: in.Frame.Width, Height: in.Frame.Height}, in.Rotation)

	b := builder{in: in, g: g, scales: scales, width: in.Frame.Width, height: in.Frame.Height}
	if in.Rotation.IsVertical() {
		b.width, b.height = b.height, b.width
	}
	orderIndex := 0
	for _, grp := range r.Series.Stacked {
		b.group(grp, orderIndex)
		if grp.BarSeries > 0 {
			orderIndex++
		}
	}
	for _, grp := range r.Series.NonStacked {
		b.group(grp, scales.Clusters.Stacked)
	}
	b.annotations()
	g.order = b.order()
	return g
}

type builder struct {
	in     Input
	g      *Geometries
	scales scale.Set

	// width and height of the unrotated plotting area.
	width, height float64

	annotationZ []int
}

func (b *builder) keep(p series.Point) bool {
	for field, want := range b.in.Filter {
		if spec.FormatValue(p.Datum[field]) != want {
			return false
		}
	}
	return true
}

// group builds one series group. Stacked groups share a bar slot, so
// indexOffset is the group's slot; non-stacked bar series take one slot
// each after the stacked ones.
func (b *builder) group(grp series.Group, indexOffset int) {
	y, ok := b.scales.YFor(grp.GroupID)
	if !ok {
		return
	}
	barOffset := 0
	for _, ds := range grp.Series {
		s, ok := spec.SeriesByID(b.in.Result.Specs, ds.SpecID)
		if !ok {
			continue
		}
		color := b.g.Colors[ds.Key]
		switch s.Kind {
		case spec.KindBar:
			shift := indexOffset
			if !grp.Stacked {
				shift += barOffset
			}
			b.bars(ds, s, y, color, shift)
			barOffset++
		case spec.KindLine:
			b.line(ds, s, y, color)
		case spec.KindArea:
			b.area(ds, s, y, color, grp.Stacked)
		}
	}
}

func (b *builder) bars(ds series.DataSeries, s spec.SeriesSpec, y *scale.Continuous, color string, orderIndex int) {
	x := b.scales.X
	minHeight := abs(s.MinBarHeight)
	format := b.valueFormatter(s)

	var built []*Bar
	for _, p := range ds.Points {
		if !p.Defined || !b.keep(p) || !x.InDomain(p.X) {
			continue
		}
		xPos, ok := x.Scale(p.X)
		if !ok {
			continue
		}
		top := y.ScaleFloat(p.Y1)
		height := y.ScaleFloat(p.Y0) - top

		if minHeight > 0 && height != 0 && abs(height) < minHeight {
			delta := minHeight - abs(height)
			if height < 0 {
				height = -minHeight
				top += delta
			} else {
				height = minHeight
				top -= delta
			}
		}

		bar := &Bar{
			X:      xPos + x.Bandwidth()*float64(orderIndex),
			Y:      top,
			Width:  x.Bandwidth(),
			Height: height,
			Color:  color,
			Value:  Value{X: p.X, Y: p.Value},
			Series: ds.Identifier,
		}
		if dv := s.DisplayValue; dv != nil && dv.Show {
			showText := !dv.Alternating || len(built)%2 == 0
			bar.DisplayValue = b.displayValue(bar, dv, format(p.Value), showText)
		}
		built = append(built, bar)
		b.g.Index.add(p.X, bar)
	}
	b.g.Bars = append(b.g.Bars, built...)
	b.g.Counts.Bars += len(built)
}

// valueFormatter formats display values with the group's vertical axis
// formatter, then the series formatter.
func (b *builder) valueFormatter(s spec.SeriesSpec) spec.Formatter {
	if _, v := spec.AxesForGroup(b.in.Axes, s.Group()); v != nil && v.TickFormat != nil {
		return v.TickFormat
	}
	if s.TickFormat != nil {
		return s.TickFormat
	}
	return spec.FormatValue
}

func (b *builder) displayValue(bar *Bar, dv *spec.DisplayValue, text string, showText bool) *DisplayValue {
	if !showText {
		text = ""
	}
	size := b.in.Theme.DisplayValueFontSize
	st := textmeasure.Style{FontSize: size, FontFamily: b.in.Theme.TickLabel.FontFamily}

	var box textmeasure.BBox
	if b.in.Surface != nil {
		box = b.in.Surface.Measure(text, st)
	} else {
		box, _ = measureEstimate(text, st)
	}
	w := box.Width + 2*displayValuePadding
	if text == "" {
		w = 0
	}
	if dv.ContainedInElement {
		w = bar.Width
	}

	out := &DisplayValue{
		Text:               text,
		ContainedInElement: dv.ContainedInElement,
	}
	out.Box = placeLabel(b.g.Transform, bar, w, size, dv.ContainedInElement, b.in.Rotation)

	clip := spec.Dimensions{Width: b.in.Frame.Width, Height: b.in.Frame.Height}
	if dv.HideClipped && !inside(out.Box, clip) {
		out.Hidden = true
	}
	return out
}

func measureEstimate(text string, st textmeasure.Style) (textmeasure.BBox, error) {
	s, err := textmeasure.Heuristic{}.Acquire()
	if err != nil {
		return textmeasure.BBox{}, err
	}
	defer s.Release()
	return s.Measure(text, st), nil
}

// placeLabel positions a w×h label at the value end of a bar, outside the
// bar unless contained. The label is laid out in unrotated coordinates and
// transformed to the frame so it stays upright.
func placeLabel(t frame.Transform, bar *Bar, w, h float64, contained bool, rotation spec.Rotation) spec.Dimensions {
	across, along := w, h
	if rotation.IsVertical() {
		across, along = h, w
	}
	d := spec.Dimensions{
		Left:   bar.X + bar.Width/2 - across/2,
		Width:  across,
		Height: along,
	}
	// bar.Y is the value end for positive and negative bars alike.
	outward := bar.Height >= 0
	if contained {
		outward = !outward
	}
	if outward {
		d.Top = bar.Y - along
	} else {
		d.Top = bar.Y
	}
	return screenRect(t, d)
}

func screenRect(t frame.Transform, d spec.Dimensions) spec.Dimensions {
	a := t.Apply(spec.Point{X: d.Left, Y: d.Top})
	c := t.Apply(spec.Point{X: d.Left + d.Width, Y: d.Top + d.Height})
	return spec.Dimensions{
		Left:   min(a.X, c.X),
		Top:    min(a.Y, c.Y),
		Width:  abs(c.X - a.X),
		Height: abs(c.Y - a.Y),
	}
}

func inside(d, clip spec.Dimensions) bool {
	return d.Left >= clip.Left && d.Top >= clip.Top &&
		d.Left+d.Width <= clip.Left+clip.Width && d.Top+d.Height <= clip.Top+clip.Height
}

// xOffset aligns lines and areas with histogram bars.
func (b *builder) xOffset(s spec.SeriesSpec) float64 {
	if !b.scales.Histogram {
		return 0
	}
	x := b.scales.X
	band := x.Bandwidth()
	if p := x.BarsPadding(); p < 1 {
		band = x.Bandwidth() / (1 - p)
	}
	start := x.Bandwidth()/2 + (band-x.Bandwidth())/2
	switch s.HistogramAlignment {
	case spec.AlignCenter:
		return 0
	case spec.AlignEnd:
		return -start
	}
	return start
}

// shift centers lines and areas on the bar cluster of their x value.
func (b *builder) shift() float64 {
	return b.scales.X.Bandwidth() * float64(max(b.scales.Clusters.Total, 1)) / 2
}

func (b *builder) vertices(ds series.DataSeries, s spec.SeriesSpec, y *scale.Continuous, stacked bool, color string) ([]vertex, []*Point) {
	x := b.scales.X
	dx := b.shift() - b.xOffset(s)
	bottom, _ := y.Range()

	var vs []vertex
	var points []*Point
	for _, p := range ds.Points {
		if !b.keep(p) {
			continue
		}
		xPos, ok := x.Scale(p.X)
		if !ok || !x.InDomain(p.X) {
			vs = append(vs, vertex{})
			continue
		}
		v := vertex{x: xPos + dx, y0: bottom, defined: p.Defined}
		if p.Defined {
			v.y1 = y.ScaleFloat(p.Y1)
			if stacked {
				v.y0 = y.ScaleFloat(p.Y0)
			}
			if y.InDomain(p.Y1) {
				pt := &Point{
					X:      v.x,
					Y:      v.y1,
					Radius: pointRadius,
					Color:  color,
					Value:  Value{X: p.X, Y: p.Value},
					Series: ds.Identifier,
				}
				points = append(points, pt)
				b.g.Index.add(p.X, pt)
			}
		}
		vs = append(vs, v)
	}
	return vs, points
}

func (b *builder) line(ds series.DataSeries, s spec.SeriesSpec, y *scale.Continuous, color string) {
	vs, points := b.vertices(ds, s, y, false, color)
	b.g.Lines = append(b.g.Lines, &Line{
		Path:   linePath(vs),
		Points: points,
		Color:  color,
		Series: ds.Identifier,
	})
	b.g.Counts.Lines++
	b.g.Counts.LinePoints += len(points)
}

func (b *builder) area(ds series.DataSeries, s spec.SeriesSpec, y *scale.Continuous, color string, stacked bool) {
	vs, points := b.vertices(ds, s, y, stacked, color)
	var lines []string
	if l := linePath(vs); l != "" {
		lines = append(lines, l)
	}
	b.g.Areas = append(b.g.Areas, &Area{
		Path:    areaPath(vs),
		Lines:   lines,
		Points:  points,
		Color:   color,
		Series:  ds.Identifier,
		Stacked: stacked,
	})
	b.g.Counts.Areas++
	b.g.Counts.AreaPoints += len(points)
}

// Draw layers.
const (
	layerBars = iota
	layerAreas
	layerLines
	layerAnnotations
)

type layered struct {
	z int
	g Geometry
}

func (b *builder) order() []Geometry {
	var all []layered
	for _, g := range b.g.Bars {
		all = append(all, layered{layerBars, g})
	}
	for _, g := range b.g.Areas {
		all = append(all, layered{layerAreas, g})
	}
	for _, g := range b.g.Lines {
		all = append(all, layered{layerLines, g})
	}
	for i, g := range b.g.Annotations {
		all = append(all, layered{b.annotationZ[i], g})
	}
	slices.SortStableFunc(all, func(a, c layered) int { return cmp.Compare(a.z, c.z) })

	out := make([]Geometry, len(all))
	for i, l := range all {
		out[i] = l.g
	}
	return out
}
