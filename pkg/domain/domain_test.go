package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/spec"
)

func axisWithDomain(id string, pos spec.Position, b spec.Bound) spec.AxisSpec {
	a := spec.NewAxis(id, pos)
	a.Domain = &b
	return a
}

func TestMergeAxisBounds(t *testing.T) {
	t.Run("lower and upper combine", func(t *testing.T) {
		got, err := MergeAxisBounds([]spec.AxisSpec{
			axisWithDomain("a", spec.PositionLeft, spec.LowerBound(0)),
			axisWithDomain("b", spec.PositionRight, spec.UpperBound(10)),
		}, spec.Rotation0)
		if err != nil {
			t.Fatalf("MergeAxisBounds: %v", err)
		}
		want := spec.CompleteBound(0, 10)
		if diff := cmp.Diff(want, got[spec.DefaultGroupID]); diff != "" {
			t.Errorf("merged bound mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("widest sides win", func(t *testing.T) {
		got, err := MergeAxisBounds([]spec.AxisSpec{
			axisWithDomain("a", spec.PositionLeft, spec.CompleteBound(2, 5)),
			axisWithDomain("b", spec.PositionRight, spec.CompleteBound(-1, 3)),
		}, spec.Rotation0)
		if err != nil {
			t.Fatalf("MergeAxisBounds: %v", err)
		}
		b := got[spec.DefaultGroupID]
		if *b.Min != -1 || *b.Max != 5 {
			t.Errorf("merged = %s, want {min:-1 max:5}", b)
		}
	})

	t.Run("groups are independent", func(t *testing.T) {
		a := axisWithDomain("a", spec.PositionLeft, spec.LowerBound(1))
		b := axisWithDomain("b", spec.PositionRight, spec.LowerBound(2))
		b.GroupID = "g2"
		got, err := MergeAxisBounds([]spec.AxisSpec{a, b}, spec.Rotation0)
		if err != nil {
			t.Fatalf("MergeAxisBounds: %v", err)
		}
		if len(got) != 2 || *got["g2"].Min != 2 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("inverted complete bound", func(t *testing.T) {
		_, err := MergeAxisBounds([]spec.AxisSpec{
			axisWithDomain("a", spec.PositionLeft, spec.CompleteBound(10, 5)),
		}, spec.Rotation0)
		if !errors.Is(err, errors.ErrCodeInvalidDomain) {
			t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidDomain)
		}
	})

	t.Run("bound on category axis", func(t *testing.T) {
		axes := []spec.AxisSpec{axisWithDomain("x", spec.PositionBottom, spec.LowerBound(0))}
		if _, err := MergeAxisBounds(axes, spec.Rotation0); !errors.Is(err, errors.ErrCodeInvalidAxis) {
			t.Errorf("rotation 0: error = %v, want %s", err, errors.ErrCodeInvalidAxis)
		}
		// The bottom axis carries y values once the chart is rotated.
		if _, err := MergeAxisBounds(axes, spec.Rotation90); err != nil {
			t.Errorf("rotation 90: unexpected error %v", err)
		}
	})
}

func ordinalBars(id string, stacked bool, rows ...spec.Datum) spec.SeriesSpec {
	return spec.SeriesSpec{
		ID: id, Kind: spec.KindBar, XScaleType: spec.ScaleOrdinal,
		XAccessor: "x", YAccessors: []string{"y"}, Stacked: stacked, Data: rows,
	}
}

func linearLine(id string, rows ...spec.Datum) spec.SeriesSpec {
	return spec.SeriesSpec{
		ID: id, Kind: spec.KindLine, XScaleType: spec.ScaleLinear,
		XAccessor: "x", YAccessors: []string{"y"}, Data: rows,
	}
}

func TestResolveOrdinalStacked(t *testing.T) {
	specs := []spec.SeriesSpec{
		ordinalBars("a", true, spec.Datum{"x": "b", "y": 2}, spec.Datum{"x": "a", "y": 3}),
		ordinalBars("b", true, spec.Datum{"x": "b", "y": 5}, spec.Datum{"x": "c", "y": 1}),
	}

	res, err := Resolve(specs, nil, nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if diff := cmp.Diff([]string{"b", "a", "c"}, res.X.Values); diff != "" {
		t.Errorf("x values mismatch (-want +got):\n%s", diff)
	}
	if !res.X.IsBandScale {
		t.Error("bars should make the x domain a band scale")
	}
	y, ok := res.YDomain(spec.DefaultGroupID)
	if !ok {
		t.Fatal("missing default group domain")
	}
	if y.Min != 0 || y.Max != 7 {
		t.Errorf("y domain = [%v, %v], want [0, 7]", y.Min, y.Max)
	}
}

func TestResolveLinear(t *testing.T) {
	specs := []spec.SeriesSpec{
		linearLine("a", spec.Datum{"x": 4, "y": -2}, spec.Datum{"x": 1, "y": 3}, spec.Datum{"x": 2, "y": 1}),
	}

	t.Run("data extent", func(t *testing.T) {
		res, err := Resolve(specs, nil, nil, nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if res.X.Min != 1 || res.X.Max != 4 || res.X.MinInterval != 1 {
			t.Errorf("x = %+v", res.X)
		}
		if diff := cmp.Diff([]any{1.0, 2.0, 4.0}, res.X.Data); diff != "" {
			t.Errorf("x data mismatch (-want +got):\n%s", diff)
		}
		y, _ := res.YDomain(spec.DefaultGroupID)
		if y.Min != -2 || y.Max != 3 {
			t.Errorf("y = %+v", y)
		}
	})

	t.Run("one-sided bound keeps data side", func(t *testing.T) {
		res, err := Resolve(specs, map[string]spec.Bound{spec.DefaultGroupID: spec.UpperBound(10)}, nil, nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		y, _ := res.YDomain(spec.DefaultGroupID)
		if y.Min != -2 || y.Max != 10 {
			t.Errorf("y = %+v, want [-2, 10]", y)
		}
	})

	t.Run("fit drops zero baseline", func(t *testing.T) {
		pos := []spec.SeriesSpec{linearLine("a", spec.Datum{"x": 0, "y": 5}, spec.Datum{"x": 1, "y": 8})}
		res, err := Resolve(pos, map[string]spec.Bound{spec.DefaultGroupID: {Fit: true}}, nil, nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		y, _ := res.YDomain(spec.DefaultGroupID)
		if y.Min != 5 || y.Max != 8 {
			t.Errorf("y = %+v, want [5, 8]", y)
		}
	})

	t.Run("lower bound above data", func(t *testing.T) {
		_, err := Resolve(specs, map[string]spec.Bound{spec.DefaultGroupID: spec.LowerBound(20)}, nil, nil)
		if !errors.Is(err, errors.ErrCodeInvalidDomain) {
			t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidDomain)
		}
	})

	t.Run("x override", func(t *testing.T) {
		res, err := Resolve(specs, nil, nil, &spec.XDomainOverride{Min: spec.Float(0), Max: spec.Float(10)})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if res.X.Min != 0 || res.X.Max != 10 {
			t.Errorf("x = [%v, %v], want [0, 10]", res.X.Min, res.X.Max)
		}
	})

	t.Run("ordinal override on linear chart", func(t *testing.T) {
		_, err := Resolve(specs, nil, nil, &spec.XDomainOverride{Values: []any{"a"}})
		if !errors.Is(err, errors.ErrCodeInvalidDomain) {
			t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidDomain)
		}
	})

	t.Run("min interval larger than data", func(t *testing.T) {
		_, err := Resolve(specs, nil, nil, &spec.XDomainOverride{MinInterval: spec.Float(3)})
		if !errors.Is(err, errors.ErrCodeInvalidDomain) {
			t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidDomain)
		}
	})
}

func TestResolveAllDeselected(t *testing.T) {
	specs := []spec.SeriesSpec{
		ordinalBars("a", false, spec.Datum{"x": "p", "y": 1}),
		ordinalBars("b", false, spec.Datum{"x": "q", "y": 2}),
	}

	res, err := Resolve(specs, nil, []string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Empty() {
		t.Error("Empty() = false with every series deselected")
	}
	if len(res.All) != 2 {
		t.Errorf("All should keep deselected series for the legend, got %d", len(res.All))
	}

	res, err = Resolve(specs, nil, []string{"a"}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"q"}, res.X.Values); diff != "" {
		t.Errorf("deselected data must not extend the domain (-want +got):\n%s", diff)
	}
}

func TestResolveDeselectKeepsScaleType(t *testing.T) {
	specs := []spec.SeriesSpec{
		ordinalBars("a", false, spec.Datum{"x": 1, "y": 1}, spec.Datum{"x": 2, "y": 4}),
		linearLine("b", spec.Datum{"x": 2, "y": 3}, spec.Datum{"x": 3, "y": 5}),
	}

	tests := []struct {
		name       string
		deselected []string
		want       []string
		band       bool
	}{
		{name: "all visible", want: []string{"1", "2", "3"}, band: true},
		{name: "ordinal series hidden", deselected: []string{"a"}, want: []string{"2", "3"}},
		{name: "linear series hidden", deselected: []string{"b"}, want: []string{"1", "2"}, band: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(specs, nil, tt.deselected, nil)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if res.X.ScaleType != spec.ScaleOrdinal {
				t.Errorf("scale type = %v, want ordinal", res.X.ScaleType)
			}
			if diff := cmp.Diff(tt.want, res.X.Values); diff != "" {
				t.Errorf("x values mismatch (-want +got):\n%s", diff)
			}
			if res.X.IsBandScale != tt.band {
				t.Errorf("IsBandScale = %v, want %v", res.X.IsBandScale, tt.band)
			}
		})
	}
}
