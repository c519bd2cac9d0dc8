package series

import (
	"maps"
	"slices"

	"github.com/matzehuels/chartframe/pkg/spec"
)

// Group is the set of visible series sharing a group id and a stacking mode.
type Group struct {
	GroupID   string
	Stacked   bool
	Series    []DataSeries
	BarSeries int
}

// Formatted holds the visible series of a chart, grouped. Groups keep the
// order in which their group id first appears.
type Formatted struct {
	Stacked    []Group
	NonStacked []Group
}

// Len returns the number of visible series.
func (f Formatted) Len() int {
	n := 0
	for _, g := range f.Stacked {
		n += len(g.Series)
	}
	for _, g := range f.NonStacked {
		n += len(g.Series)
	}
	return n
}

// All returns every visible series, stacked groups first.
func (f Formatted) All() []DataSeries {
	var out []DataSeries
	for _, g := range f.Stacked {
		out = append(out, g.Series...)
	}
	for _, g := range f.NonStacked {
		out = append(out, g.Series...)
	}
	return out
}

// Format drops deselected series, groups the rest and stacks stacked groups.
func Format(all []DataSeries, deselected map[Key]bool) Formatted {
	var f Formatted
	stackedIdx := make(map[string]int)
	plainIdx := make(map[string]int)

	for _, ds := range all {
		if deselected[ds.Key] {
			continue
		}
		groups, idx := &f.NonStacked, plainIdx
		if ds.Stacked {
			groups, idx = &f.Stacked, stackedIdx
		}
		i, ok := idx[ds.GroupID]
		if !ok {
			i = len(*groups)
			idx[ds.GroupID] = i
			*groups = append(*groups, Group{GroupID: ds.GroupID, Stacked: ds.Stacked})
		}
		g := &(*groups)[i]
		g.Series = append(g.Series, ds)
		if ds.Kind == spec.KindBar {
			g.BarSeries++
		}
	}

	for i := range f.Stacked {
		f.Stacked[i].Series = Stack(f.Stacked[i].Series)
	}
	return f
}

// baseline maps an x value to the running stacked sum at that x.
type baseline map[any]float64

// Stack stacks series in order. Each series is placed on the baseline left
// by the previous one; the fold yields a new baseline per step and returns
// new series, leaving the input untouched.
func Stack(in []DataSeries) []DataSeries {
	out := make([]DataSeries, 0, len(in))
	base := baseline{}
	for _, ds := range in {
		var stacked DataSeries
		stacked, base = stackOn(ds, base)
		out = append(out, stacked)
	}
	return out
}

func stackOn(ds DataSeries, base baseline) (DataSeries, baseline) {
	next := maps.Clone(base)
	points := slices.Clone(ds.Points)
	for i, p := range points {
		y0 := base[p.X]
		p.Y0 = y0
		p.Y1 = y0
		if p.Defined {
			p.Y1 = y0 + p.Value
			next[p.X] = p.Y1
		}
		points[i] = p
	}
	ds.Points = points
	return ds, next
}
