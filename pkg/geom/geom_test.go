package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
	"github.com/matzehuels/chartframe/pkg/textmeasure"
)

const eps = 1e-6

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func testTheme() spec.Theme {
	th := spec.DefaultTheme()
	th.BarsPadding = 0
	th.HistogramPadding = 0
	th.DisplayValueFontSize = 8
	return th
}

func rows(xs []string, ys ...any) []spec.Datum {
	out := make([]spec.Datum, len(xs))
	for i, x := range xs {
		out[i] = spec.Datum{"x": x, "y": ys[i]}
	}
	return out
}

func ordinal(id string, kind spec.SeriesKind, stacked bool, data []spec.Datum) spec.SeriesSpec {
	return spec.SeriesSpec{
		ID: id, Kind: kind, XScaleType: spec.ScaleOrdinal,
		XAccessor: "x", YAccessors: []string{"y"}, Stacked: stacked, Data: data,
	}
}

func build(t *testing.T, specs []spec.SeriesSpec, mod func(*Input)) *Geometries {
	t.Helper()
	r, err := domain.Resolve(specs, nil, nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	in := Input{
		Result: r,
		Frame:  spec.Dimensions{Width: 90, Height: 100},
		Theme:  testTheme(),
	}
	if mod != nil {
		mod(&in)
	}
	return Build(in)
}

var abc = []string{"a", "b", "c"}

func TestBuildBars(t *testing.T) {
	g := build(t, []spec.SeriesSpec{ordinal("s", spec.KindBar, false, rows(abc, 1, 2, 3))}, nil)

	if len(g.Bars) != 3 || g.Counts.Bars != 3 {
		t.Fatalf("bars = %d, counts = %+v", len(g.Bars), g.Counts)
	}
	want := []spec.Dimensions{
		{Left: 0, Top: 100 - 100.0/3, Width: 30, Height: 100.0 / 3},
		{Left: 30, Top: 100 - 200.0/3, Width: 30, Height: 200.0 / 3},
		{Left: 60, Top: 0, Width: 30, Height: 100},
	}
	for i, b := range g.Bars {
		got := b.Bounds()
		if !approx(got.Left, want[i].Left) || !approx(got.Top, want[i].Top) ||
			!approx(got.Width, want[i].Width) || !approx(got.Height, want[i].Height) {
			t.Errorf("bar %d = %+v, want %+v", i, got, want[i])
		}
		if b.Color != "#54b399" {
			t.Errorf("bar %d color = %s", i, b.Color)
		}
	}
	if got := g.Index.At("b"); len(got) != 1 || got[0] != Geometry(g.Bars[1]) {
		t.Errorf("Index.At(b) = %v", got)
	}
}

func TestBuildClusteredBars(t *testing.T) {
	g := build(t, []spec.SeriesSpec{
		ordinal("s1", spec.KindBar, false, rows(abc, 1, 2, 3)),
		ordinal("s2", spec.KindBar, false, rows(abc, 3, 2, 1)),
	}, nil)

	if len(g.Bars) != 6 {
		t.Fatalf("bars = %d, want 6", len(g.Bars))
	}
	// Two bars per band of 30.
	for i, wantX := range []float64{0, 30, 60, 15, 45, 75} {
		if !approx(g.Bars[i].X, wantX) || !approx(g.Bars[i].Width, 15) {
			t.Errorf("bar %d x = %v width = %v, want x %v width 15", i, g.Bars[i].X, g.Bars[i].Width, wantX)
		}
	}
}

func TestBuildStackedBars(t *testing.T) {
	g := build(t, []spec.SeriesSpec{
		ordinal("s1", spec.KindBar, true, rows(abc, 1, 1, 1)),
		ordinal("s2", spec.KindBar, true, rows(abc, 2, 2, 2)),
	}, nil)

	if len(g.Bars) != 6 {
		t.Fatalf("bars = %d, want 6", len(g.Bars))
	}
	// Stacked bars share one slot; the domain is [0, 3].
	top := g.Bars[3]
	if !approx(top.X, 0) || !approx(top.Width, 30) {
		t.Errorf("stacked bar x = %v width = %v", top.X, top.Width)
	}
	if !approx(top.Y, 0) || !approx(top.Height, 200.0/3) {
		t.Errorf("stacked bar y = %v height = %v, want 0 and 66.67", top.Y, top.Height)
	}
}

func TestBuildNegativeAndMinHeightBars(t *testing.T) {
	neg := ordinal("s", spec.KindBar, false, rows([]string{"a", "b"}, -1, 1))
	g := build(t, []spec.SeriesSpec{neg}, nil)
	if g.Bars[0].Height >= 0 {
		t.Errorf("negative bar height = %v, want < 0", g.Bars[0].Height)
	}
	if b := g.Bars[0].Bounds(); b.Height <= 0 || !approx(b.Top, 50) {
		t.Errorf("negative bar bounds = %+v", b)
	}

	tiny := ordinal("s", spec.KindBar, false, rows([]string{"a", "b"}, 1, 1000))
	tiny.MinBarHeight = 5
	g = build(t, []spec.SeriesSpec{tiny}, nil)
	if !approx(g.Bars[0].Height, 5) || !approx(g.Bars[0].Y, 95) {
		t.Errorf("min height bar y = %v height = %v, want 95 and 5", g.Bars[0].Y, g.Bars[0].Height)
	}
}

func TestBuildDisplayValues(t *testing.T) {
	s := ordinal("s", spec.KindBar, false, rows(abc, 1, 2, 3))
	s.DisplayValue = &spec.DisplayValue{Show: true, Alternating: true, HideClipped: true}

	fixed := textmeasure.NewFixed(10, 8)
	surface, err := fixed.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	defer surface.Release()

	g := build(t, []spec.SeriesSpec{s}, func(in *Input) { in.Surface = surface })

	var texts []string
	for _, b := range g.Bars {
		if b.DisplayValue == nil {
			t.Fatal("missing display value")
		}
		texts = append(texts, b.DisplayValue.Text)
	}
	if diff := cmp.Diff([]string{"1", "", "3"}, texts); diff != "" {
		t.Errorf("alternating texts mismatch (-want +got):\n%s", diff)
	}

	first := g.Bars[0].DisplayValue
	want := spec.Dimensions{Left: 9, Top: 100 - 100.0/3 - 8, Width: 12, Height: 8}
	if !approx(first.Box.Left, want.Left) || !approx(first.Box.Top, want.Top) ||
		first.Box.Width != want.Width || first.Box.Height != want.Height {
		t.Errorf("label box = %+v, want %+v", first.Box, want)
	}
	if first.Hidden {
		t.Error("label inside the frame should not be hidden")
	}
	if last := g.Bars[2].DisplayValue; !last.Hidden {
		t.Errorf("label above the frame should be hidden, box %+v", last.Box)
	}
}

func TestBuildLinesAndAreas(t *testing.T) {
	g := build(t, []spec.SeriesSpec{ordinal("s", spec.KindLine, false, rows(abc, 1, 2, 3))}, nil)
	if len(g.Lines) != 1 {
		t.Fatalf("lines = %d", len(g.Lines))
	}
	if want := "M15,66.667L45,33.333L75,0"; g.Lines[0].Path != want {
		t.Errorf("line path = %q, want %q", g.Lines[0].Path, want)
	}
	if g.Counts.LinePoints != 3 {
		t.Errorf("line points = %d, want 3", g.Counts.LinePoints)
	}
	for i, x := range []string{"a", "b", "c"} {
		at := g.Index.At(x)
		if len(at) != 1 || at[0] != Geometry(g.Lines[0].Points[i]) {
			t.Errorf("Index.At(%q) = %v, want the line's point %d", x, at, i)
		}
	}

	g = build(t, []spec.SeriesSpec{ordinal("s", spec.KindArea, false, rows(abc, 1, 2, 3))}, nil)
	if want := "M15,66.667L45,33.333L75,0L75,100L45,100L15,100Z"; g.Areas[0].Path != want {
		t.Errorf("area path = %q, want %q", g.Areas[0].Path, want)
	}
}

func TestBuildLineGaps(t *testing.T) {
	g := build(t, []spec.SeriesSpec{ordinal("s", spec.KindLine, false, rows(abc, 1, "n/a", 3))}, nil)
	if want := "M15,66.667M75,0"; g.Lines[0].Path != want {
		t.Errorf("line path = %q, want %q", g.Lines[0].Path, want)
	}
	if len(g.Lines[0].Points) != 2 {
		t.Errorf("points = %d, want 2 (undefined skipped)", len(g.Lines[0].Points))
	}
}

func TestBuildFilter(t *testing.T) {
	data := []spec.Datum{
		{"x": "a", "y": 1, "g": "left"},
		{"x": "b", "y": 2, "g": "right"},
		{"x": "c", "y": 3, "g": "left"},
	}
	g := build(t, []spec.SeriesSpec{ordinal("s", spec.KindBar, false, data)}, func(in *Input) {
		in.Filter = map[string]string{"g": "left"}
	})
	if len(g.Bars) != 2 {
		t.Fatalf("bars = %d, want 2", len(g.Bars))
	}
	if g.Bars[1].Value.X != "c" {
		t.Errorf("second bar x = %v, want c", g.Bars[1].Value.X)
	}
}

func TestBuildEmpty(t *testing.T) {
	specs := []spec.SeriesSpec{ordinal("s", spec.KindBar, false, rows(abc, 1, 2, 3))}

	g := build(t, specs, func(in *Input) { in.Frame = spec.Dimensions{} })
	if !g.Empty() {
		t.Error("zero frame should build nothing")
	}

	r, err := domain.Resolve(specs, nil, []string{"s"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !IsChartEmpty(r) {
		t.Error("all deselected chart should be empty")
	}
	g = Build(Input{Result: r, Frame: spec.Dimensions{Width: 90, Height: 100}, Theme: testTheme()})
	if !g.Empty() {
		t.Error("all deselected chart should build nothing")
	}
	if g.Colors["s"] == "" {
		t.Error("deselected series should keep a color")
	}
}

func TestColorsStableAcrossDeselection(t *testing.T) {
	specs := []spec.SeriesSpec{
		ordinal("s1", spec.KindBar, false, rows(abc, 1, 2, 3)),
		ordinal("s2", spec.KindBar, false, rows(abc, 1, 2, 3)),
	}
	specs[1].Color = "#FF00FF"

	r, err := domain.Resolve(specs, nil, []string{"s1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	colors := Colors(r.All, specs, testTheme())
	want := map[series.Key]string{"s1": "#54b399", "s2": "#ff00ff"}
	if diff := cmp.Diff(want, colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}

	legend := Legend(r, colors)
	if len(legend) != 2 || !legend[0].Deselected || legend[1].Deselected {
		t.Errorf("legend = %+v", legend)
	}
}

func TestColorsPastPalette(t *testing.T) {
	th := testTheme()
	th.VizColors = []string{"#000000", "#ffffff"}
	var all []series.DataSeries
	for _, k := range []series.Key{"a", "b", "c", "d", "e", "f"} {
		all = append(all, series.DataSeries{Identifier: series.Identifier{Key: k, SpecID: string(k)}})
	}
	colors := Colors(all, nil, th)
	if colors["a"] != "#000000" || colors["b"] != "#ffffff" {
		t.Errorf("palette colors = %v", colors)
	}
	seen := map[string]series.Key{}
	for _, k := range []series.Key{"a", "b", "c", "d", "e", "f"} {
		c := colors[k]
		if c == "" {
			t.Fatalf("series %s has no color", k)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("series %s and %s share color %s", prev, k, c)
		}
		seen[c] = k
	}
}

func TestDim(t *testing.T) {
	if got := Dim("#000000", 1); got != "#ffffff" {
		t.Errorf("Dim(black, 1) = %s", got)
	}
	if got := Dim("#123456", 0); got != "#123456" {
		t.Errorf("Dim(c, 0) = %s", got)
	}
	if got := Dim("nope", 0.5); got != "nope" {
		t.Errorf("Dim(invalid) = %s", got)
	}
}

func TestBuildAnnotations(t *testing.T) {
	specs := []spec.SeriesSpec{ordinal("s", spec.KindBar, false, rows(abc, 1, 2, 3))}
	below := -1
	g := build(t, specs, func(in *Input) {
		in.Annotations = []spec.AnnotationSpec{
			{ID: "threshold", Kind: spec.AnnotationLine, Domain: spec.AnnotationYDomain, Values: []any{1.5, 99}},
			{ID: "marker", Kind: spec.AnnotationLine, Domain: spec.AnnotationXDomain, Values: []any{"b"}},
			{ID: "band", Kind: spec.AnnotationRect, X0: "b", ZIndex: &below},
			{ID: "hidden", Kind: spec.AnnotationRect, Hide: true},
		}
	})

	if g.Counts.Annotations != 3 {
		t.Fatalf("annotations = %d, want 3 (out of domain value dropped)", g.Counts.Annotations)
	}
	threshold := g.Annotations[0].(*AnnotationLine)
	if !approx(threshold.Y1, 50) || threshold.X1 != 0 || threshold.X2 != 90 {
		t.Errorf("y line = %+v", threshold)
	}
	marker := g.Annotations[1].(*AnnotationLine)
	if !approx(marker.X1, 45) || marker.Y1 != 0 || marker.Y2 != 100 {
		t.Errorf("x line = %+v", marker)
	}
	band := g.Annotations[2].(*AnnotationRect)
	if diff := cmp.Diff(spec.Dimensions{Left: 30, Top: 0, Width: 60, Height: 100}, band.Rect); diff != "" {
		t.Errorf("rect mismatch (-want +got):\n%s", diff)
	}
	if band.Color != annotationColor {
		t.Errorf("rect color = %s", band.Color)
	}

	ordered := g.Ordered()
	if ordered[0] != Geometry(band) {
		t.Errorf("negative z-index annotation should draw first, got %s", ordered[0].Kind())
	}
	if ordered[len(ordered)-1].Kind() != KindAnnotationLine {
		t.Errorf("last geometry = %s, want an annotation line", ordered[len(ordered)-1].Kind())
	}
}

func TestOrderedLayers(t *testing.T) {
	g := build(t, []spec.SeriesSpec{
		ordinal("l", spec.KindLine, false, rows(abc, 1, 2, 3)),
		ordinal("a", spec.KindArea, false, rows(abc, 1, 2, 3)),
		ordinal("b", spec.KindBar, false, rows(abc, 1, 2, 3)),
	}, nil)

	var kinds []Kind
	for _, geo := range g.Ordered() {
		if len(kinds) == 0 || kinds[len(kinds)-1] != geo.Kind() {
			kinds = append(kinds, geo.Kind())
		}
	}
	if diff := cmp.Diff([]Kind{KindBar, KindArea, KindLine}, kinds); diff != "" {
		t.Errorf("layer order mismatch (-want +got):\n%s", diff)
	}
}

func TestPaths(t *testing.T) {
	vs := []vertex{
		{x: 0, y0: 10, y1: 1.23456, defined: true},
		{x: 5, y0: 10, y1: 2, defined: true},
		{},
		{x: 15, y0: 10, y1: 3, defined: true},
	}
	if got, want := linePath(vs), "M0,1.235L5,2M15,3"; got != want {
		t.Errorf("linePath = %q, want %q", got, want)
	}
	if got, want := areaPath(vs), "M0,1.235L5,2L5,10L0,10ZM15,3L15,10Z"; got != want {
		t.Errorf("areaPath = %q, want %q", got, want)
	}
	if got := linePath(nil); got != "" {
		t.Errorf("linePath(nil) = %q", got)
	}
}
