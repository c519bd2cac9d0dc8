package frame

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartframe/pkg/axis"
	"github.com/matzehuels/chartframe/pkg/spec"
)

func testTheme() spec.Theme {
	th := spec.DefaultTheme()
	th.ChartMargins = spec.Margins{Top: 10, Bottom: 10, Left: 10, Right: 10}
	th.ChartPaddings = spec.Margins{Top: 10, Bottom: 10, Left: 10, Right: 10}
	th.AxisTitle = spec.TextStyle{FontSize: 10, Padding: 10}
	return th
}

func labels(w, h float64) axis.TickDimensions {
	return axis.TickDimensions{
		Values:             []any{0.0, 1.0},
		Labels:             []string{"0", "1"},
		MaxLabelBBoxWidth:  w,
		MaxLabelBBoxHeight: h,
	}
}

func leftAxis(title string) spec.AxisSpec {
	a := spec.NewAxis("left", spec.PositionLeft)
	a.Title = title
	return a
}

func TestComputeNoAxes(t *testing.T) {
	got := Compute(spec.Container{Width: 100, Height: 100}, testTheme(), nil, nil)
	want := Result{
		Dimensions: spec.Dimensions{Top: 20, Left: 20, Width: 60, Height: 60},
		LeftMargin: 10,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLeftAxis(t *testing.T) {
	c := spec.Container{Width: 100, Height: 100}
	th := testTheme()
	base := Compute(c, th, nil, nil)

	tests := []struct {
		name      string
		axis      spec.AxisSpec
		wantLeft  float64
		wantWidth float64
	}{
		// label 10 + tick 10 + padding 10, plus margin 10 and padding 10
		{"untitled", leftAxis(""), 50, 30},
		// title font 10 + title padding 10 on top of that
		{"titled", leftAxis("Count"), 70, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := map[string]axis.TickDimensions{"left": labels(10, 10)}
			got := Compute(c, th, dims, []spec.AxisSpec{tt.axis})
			if got.Dimensions.Left != tt.wantLeft {
				t.Errorf("Left = %v, want %v", got.Dimensions.Left, tt.wantLeft)
			}
			if got.Dimensions.Width != tt.wantWidth {
				t.Errorf("Width = %v, want %v", got.Dimensions.Width, tt.wantWidth)
			}
			if got.Dimensions.Left-base.Dimensions.Left != base.Dimensions.Width-got.Dimensions.Width {
				t.Error("the axis should take exactly the width it moves the frame by")
			}
			// Half a label overflows above and below the axis.
			if got.Dimensions.Height != 50 {
				t.Errorf("Height = %v, want 50", got.Dimensions.Height)
			}
			if got.LeftMargin != 0 {
				t.Errorf("LeftMargin = %v, want 0", got.LeftMargin)
			}
		})
	}
}

func TestComputeEdgeLabelOverflow(t *testing.T) {
	th := testTheme()
	th.ChartPaddings = spec.Margins{}
	bottom := spec.NewAxis("bottom", spec.PositionBottom)
	dims := map[string]axis.TickDimensions{"bottom": labels(40, 10)}

	got := Compute(spec.Container{Width: 200, Height: 200}, th, dims, []spec.AxisSpec{bottom})

	// Half of the widest bottom label overflows left and right.
	if got.Dimensions.Left != 30 || got.Dimensions.Width != 140 {
		t.Errorf("frame = %+v, want left 30 and width 140", got.Dimensions)
	}
	if got.LeftMargin != 30 {
		t.Errorf("LeftMargin = %v, want 30", got.LeftMargin)
	}
	if got.Dimensions.Height != 200-10-40 {
		t.Errorf("Height = %v, want 150", got.Dimensions.Height)
	}
}

func TestComputeSkipsHiddenAndEmptyAxes(t *testing.T) {
	hidden := leftAxis("")
	hidden.Hide = true
	empty := spec.NewAxis("empty", spec.PositionRight)
	dims := map[string]axis.TickDimensions{"left": labels(10, 10), "empty": {}}

	got := Compute(spec.Container{Width: 100, Height: 100}, testTheme(), dims, []spec.AxisSpec{hidden, empty})
	want := Compute(spec.Container{Width: 100, Height: 100}, testTheme(), nil, nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeClampsToEmpty(t *testing.T) {
	dims := map[string]axis.TickDimensions{"left": labels(200, 10)}
	got := Compute(spec.Container{Width: 100, Height: 100}, testTheme(), dims, []spec.AxisSpec{leftAxis("")})
	if !got.Empty {
		t.Error("Empty = false for a frame the axes overflow")
	}
	if got.Dimensions.Width != 0 {
		t.Errorf("Width = %v, want 0", got.Dimensions.Width)
	}
	if got.Dimensions.Height <= 0 {
		t.Errorf("Height = %v, height is unaffected and should stay positive", got.Dimensions.Height)
	}
	if d := got.Dimensions; d.Left+d.Width > 100 || d.Left < 0 {
		t.Errorf("collapsed frame %+v should stay inside the container", d)
	}
}

func TestComputeStaysInsideContainer(t *testing.T) {
	positions := []spec.Position{spec.PositionLeft, spec.PositionRight, spec.PositionTop, spec.PositionBottom}
	for _, w := range []float64{0, 20, 100, 640} {
		for _, h := range []float64{0, 35, 100, 480} {
			for _, label := range []float64{0, 8, 50} {
				var axes []spec.AxisSpec
				dims := map[string]axis.TickDimensions{}
				for _, p := range positions {
					a := spec.NewAxis(string(p), p)
					a.Title = "t"
					axes = append(axes, a)
					dims[a.ID] = labels(label, label)
				}
				c := spec.Container{Width: w, Height: h}
				got := Compute(c, testTheme(), dims, axes).Dimensions
				if got.Width < 0 || got.Height < 0 {
					t.Fatalf("%vx%v label %v: negative frame %+v", w, h, label, got)
				}
				if got.Left+got.Width > w {
					t.Errorf("%vx%v label %v: left+width = %v", w, h, label, got.Left+got.Width)
				}
				if got.Top+got.Height > h {
					t.Errorf("%vx%v label %v: top+height = %v", w, h, label, got.Top+got.Height)
				}
			}
		}
	}
}

func TestChartArea(t *testing.T) {
	tests := []struct {
		pos  spec.Position
		want spec.Dimensions
	}{
		{"", spec.Dimensions{Width: 100, Height: 80}},
		{spec.PositionLeft, spec.Dimensions{Left: 20, Width: 80, Height: 80}},
		{spec.PositionRight, spec.Dimensions{Width: 80, Height: 80}},
		{spec.PositionTop, spec.Dimensions{Top: 20, Width: 100, Height: 60}},
		{spec.PositionBottom, spec.Dimensions{Width: 100, Height: 60}},
	}
	for _, tt := range tests {
		got := ChartArea(spec.Container{Width: 100, Height: 80, LegendPosition: tt.pos, LegendSize: 20})
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("legend %q mismatch (-want +got):\n%s", tt.pos, diff)
		}
	}
}

func TestTransform(t *testing.T) {
	d := spec.Dimensions{Width: 100, Height: 50}
	tests := []struct {
		rot  spec.Rotation
		want Transform
		in   spec.Point
		out  spec.Point
	}{
		{spec.Rotation0, Transform{}, spec.Point{X: 10, Y: 5}, spec.Point{X: 10, Y: 5}},
		{spec.Rotation90, Transform{X: 100, Rotate: 90}, spec.Point{X: 10, Y: 5}, spec.Point{X: 95, Y: 10}},
		{spec.RotationNeg90, Transform{Y: 50, Rotate: -90}, spec.Point{X: 10, Y: 5}, spec.Point{X: 5, Y: 40}},
		{spec.Rotation180, Transform{X: 100, Y: 50, Rotate: 180}, spec.Point{X: 10, Y: 5}, spec.Point{X: 90, Y: 45}},
	}
	for _, tt := range tests {
		tr := TransformFor(d, tt.rot)
		if tr != tt.want {
			t.Errorf("TransformFor(%d) = %+v, want %+v", tt.rot, tr, tt.want)
		}
		if got := tr.Apply(tt.in); got != tt.out {
			t.Errorf("rotation %d: Apply(%v) = %v, want %v", tt.rot, tt.in, got, tt.out)
		}
		if got := tr.Invert(tt.out); got != tt.in {
			t.Errorf("rotation %d: Invert(%v) = %v, want %v", tt.rot, tt.out, got, tt.in)
		}
	}
	if got := TransformFor(d, spec.Rotation90).SVG(); got != "translate(100,0) rotate(90)" {
		t.Errorf("SVG() = %q", got)
	}
}
