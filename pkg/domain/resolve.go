package domain

import (
	"math"
	"slices"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// X is the resolved x domain.
type X struct {
	ScaleType spec.ScaleType `json:"scale_type"`

	// Min and Max bound a linear domain.
	Min float64 `json:"min"`
	Max float64 `json:"max"`

	// Values lists an ordinal domain in insertion order.
	Values []string `json:"values,omitempty"`

	// MinInterval is the smallest distance between two linear x values.
	MinInterval float64 `json:"min_interval"`

	// IsBandScale is set when bars are drawn, so x values occupy bands.
	IsBandScale bool `json:"is_band_scale"`

	// Data holds the distinct x values of the visible data, sorted for
	// linear domains and in insertion order for ordinal ones.
	Data []any `json:"-"`
}

// Empty reports whether the domain holds no values.
func (x X) Empty() bool {
	if x.ScaleType == spec.ScaleOrdinal {
		return len(x.Values) == 0
	}
	return len(x.Data) == 0
}

// Y is the resolved domain of one y group.
type Y struct {
	GroupID string  `json:"group_id"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Result is the output of [Resolve].
type Result struct {
	X X   `json:"x"`
	Y []Y `json:"y"`

	// All holds every data series, including deselected ones, for legends.
	All []series.DataSeries `json:"-"`

	// Series holds the visible series, grouped and stacked.
	Series series.Formatted `json:"-"`

	// Specs holds the specs with at least one visible series.
	Specs []spec.SeriesSpec `json:"-"`
}

// Empty reports that nothing can be drawn: no visible series or no x values.
func (r *Result) Empty() bool {
	return r == nil || r.Series.Len() == 0 || r.X.Empty()
}

// YDomain returns the domain of a y group.
func (r *Result) YDomain(groupID string) (Y, bool) {
	if r == nil {
		return Y{}, false
	}
	for _, y := range r.Y {
		if y.GroupID == groupID {
			return y, true
		}
	}
	return Y{}, false
}

// Resolve computes the x domain and the y domain of every group holding a
// visible series. axisBounds comes from [MergeAxisBounds]; deselected lists
// legend keys hidden by the user; override replaces the computed x domain.
func Resolve(
	specs []spec.SeriesSpec,
	axisBounds map[string]spec.Bound,
	deselected []string,
	override *spec.XDomainOverride,
) (*Result, error) {
	all := series.Split(specs)
	formatted := series.Format(all, series.KeySet(deselected))

	res := &Result{
		All:    all,
		Series: formatted,
		Specs:  visibleSpecs(specs, formatted),
	}
	if formatted.Len() == 0 {
		res.X.ScaleType = series.CoerceScaleType(specs)
		return res, nil
	}

	x, err := resolveX(series.CoerceScaleType(specs), res.Specs, formatted, override)
	if err != nil {
		return nil, err
	}
	res.X = x

	ys, err := resolveY(formatted, axisBounds)
	if err != nil {
		return nil, err
	}
	res.Y = ys
	return res, nil
}

func visibleSpecs(specs []spec.SeriesSpec, f series.Formatted) []spec.SeriesSpec {
	visible := make(map[string]bool)
	for _, ds := range f.All() {
		visible[ds.SpecID] = true
	}
	var out []spec.SeriesSpec
	for _, s := range specs {
		if visible[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// X domain
// =============================================================================

// resolveX builds the x domain of the visible series. The scale type comes
// from every spec, matching how [series.Split] normalized the x values.
func resolveX(st spec.ScaleType, visible []spec.SeriesSpec, f series.Formatted, override *spec.XDomainOverride) (X, error) {
	x := X{
		ScaleType:   st,
		IsBandScale: spec.HasBars(visible),
	}

	seen := make(map[any]bool)
	for _, ds := range f.All() {
		for _, p := range ds.Points {
			if !seen[p.X] {
				seen[p.X] = true
				x.Data = append(x.Data, p.X)
			}
		}
	}

	if x.ScaleType == spec.ScaleOrdinal {
		return resolveOrdinalX(x, override)
	}
	return resolveLinearX(x, override)
}

func resolveOrdinalX(x X, override *spec.XDomainOverride) (X, error) {
	for _, v := range x.Data {
		x.Values = append(x.Values, spec.FormatValue(v))
	}
	if override == nil {
		return x, nil
	}
	if !override.IsOrdinal() {
		return X{}, errors.Settings.New(errors.ErrCodeInvalidDomain,
			"x domain for an ordinal scale should be a list of values, not a range")
	}
	x.Values = x.Values[:0]
	for _, v := range override.Values {
		x.Values = append(x.Values, spec.FormatValue(v))
	}
	return x, nil
}

func resolveLinearX(x X, override *spec.XDomainOverride) (X, error) {
	values := make([]float64, 0, len(x.Data))
	for _, v := range x.Data {
		if f, ok := v.(float64); ok {
			values = append(values, f)
		}
	}
	slices.Sort(values)
	x.Data = x.Data[:0]
	for _, v := range values {
		x.Data = append(x.Data, v)
	}

	if len(values) > 0 {
		x.Min, x.Max = values[0], values[len(values)-1]
	}
	x.MinInterval = minInterval(values)

	if override == nil {
		return x, nil
	}
	if override.IsOrdinal() {
		return X{}, errors.Settings.New(errors.ErrCodeInvalidDomain,
			"x domain for a continuous scale should be a range, not a list of values")
	}
	lo, hi, err := applyBound(x.Min, x.Max, override.Bound(), errors.Settings)
	if err != nil {
		return X{}, err
	}
	x.Min, x.Max = lo, hi

	if override.MinInterval != nil {
		custom := math.Abs(*override.MinInterval)
		if custom > x.MinInterval && len(values) > 1 {
			return X{}, errors.Settings.New(errors.ErrCodeInvalidDomain,
				"custom min interval %g is greater than computed min interval %g", custom, x.MinInterval)
		}
		x.MinInterval = custom
	}
	return x, nil
}

// minInterval returns the smallest gap between consecutive sorted values.
// A single value has an interval of 1 so bands keep a width.
func minInterval(sorted []float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return 1
	}
	gap := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 1
	}
	return gap
}

// =============================================================================
// Y domains
// =============================================================================

type extent struct {
	min, max float64
	set      bool
}

func (e *extent) include(v float64) {
	if !e.set {
		e.min, e.max, e.set = v, v, true
		return
	}
	e.min = math.Min(e.min, v)
	e.max = math.Max(e.max, v)
}

func resolveY(f series.Formatted, bounds map[string]spec.Bound) ([]Y, error) {
	var order []string
	extents := make(map[string]*extent)
	add := func(g series.Group, stacked bool) {
		e, ok := extents[g.GroupID]
		if !ok {
			e = &extent{}
			extents[g.GroupID] = e
			order = append(order, g.GroupID)
		}
		for _, ds := range g.Series {
			for _, p := range ds.Points {
				if !p.Defined {
					continue
				}
				if stacked {
					e.include(p.Y0)
					e.include(p.Y1)
				} else {
					e.include(p.Value)
				}
			}
		}
	}
	for _, g := range f.Stacked {
		add(g, true)
	}
	for _, g := range f.NonStacked {
		add(g, false)
	}

	out := make([]Y, 0, len(order))
	for _, id := range order {
		e := extents[id]
		b := bounds[id]
		lo, hi := e.min, e.max
		if !b.Fit {
			lo, hi = math.Min(lo, 0), math.Max(hi, 0)
		}
		lo, hi, err := applyBound(lo, hi, b, errors.Group(id))
		if err != nil {
			return nil, err
		}
		out = append(out, Y{GroupID: id, Min: lo, Max: hi})
	}
	return out, nil
}
