package series

import (
	"slices"
	"strings"

	"github.com/matzehuels/chartframe/pkg/spec"
)

// Key identifies a data series across passes. It is the legend key used for
// deselection and highlighting.
type Key string

const keySeparator = "|"

// NameSeparator joins split values in series names.
const NameSeparator = " - "

// Identifier is the back-reference every geometry carries to its series.
type Identifier struct {
	Key         Key      `json:"key" bson:"key"`
	SpecID      string   `json:"spec_id" bson:"spec_id"`
	GroupID     string   `json:"group_id" bson:"group_id"`
	YAccessor   string   `json:"y_accessor" bson:"y_accessor"`
	SplitValues []string `json:"split_values,omitempty" bson:"split_values,omitempty"`
}

// Point is one datum projected into series space. Y0 is the stacking
// baseline and Y1 the top; for non-stacked series Y0 is zero.
type Point struct {
	X       any
	Y0, Y1  float64
	Value   float64 // raw y before stacking
	Defined bool    // false for missing or non-numeric y values
	Datum   spec.Datum
}

// DataSeries is the data of one legend entry.
type DataSeries struct {
	Identifier
	Name    string
	Kind    spec.SeriesKind
	Stacked bool
	Points  []Point
}

// CoerceScaleType returns the x scale type for a set of specs: ordinal
// when any spec asks for it, linear otherwise.
func CoerceScaleType(specs []spec.SeriesSpec) spec.ScaleType {
	for _, s := range specs {
		if s.ScaleType() == spec.ScaleOrdinal {
			return spec.ScaleOrdinal
		}
	}
	return spec.ScaleLinear
}

// NormalizeX converts a raw x value for the given scale type. Linear scales
// need numbers; ordinal values are compared by their formatted string.
func NormalizeX(v any, st spec.ScaleType) (any, bool) {
	if st == spec.ScaleLinear {
		f, ok := spec.ToFloat(v)
		return f, ok
	}
	if v == nil {
		return nil, false
	}
	return spec.FormatValue(v), true
}

// Split expands series specs into data series. Series appear in spec order,
// then by first appearance of their split values, then by y accessor.
// Data rows whose x value does not fit the scale type are dropped.
func Split(specs []spec.SeriesSpec) []DataSeries {
	st := CoerceScaleType(specs)
	var out []DataSeries
	for _, s := range specs {
		out = append(out, splitSpec(s, st)...)
	}
	return out
}

func splitSpec(s spec.SeriesSpec, st spec.ScaleType) []DataSeries {
	var order []string
	bySplit := make(map[string][]spec.Datum)
	splitValues := make(map[string][]string)

	for _, d := range s.Data {
		values := make([]string, len(s.SplitAccessors))
		for i, acc := range s.SplitAccessors {
			values[i] = spec.FormatValue(d[acc])
		}
		k := strings.Join(values, keySeparator)
		if _, ok := bySplit[k]; !ok {
			order = append(order, k)
			splitValues[k] = values
		}
		bySplit[k] = append(bySplit[k], d)
	}

	var out []DataSeries
	for _, k := range order {
		for _, yAcc := range s.YAccessors {
			id := identify(s, splitValues[k], yAcc)
			ds := DataSeries{
				Identifier: id,
				Name:       name(s, id),
				Kind:       s.Kind,
				Stacked:    s.Stacked,
			}
			for _, d := range bySplit[k] {
				x, ok := NormalizeX(d[s.XAccessor], st)
				if !ok {
					continue
				}
				y, defined := spec.ToFloat(d[yAcc])
				ds.Points = append(ds.Points, Point{
					X:       x,
					Y1:      y,
					Value:   y,
					Defined: defined,
					Datum:   d,
				})
			}
			out = append(out, ds)
		}
	}
	return out
}

func identify(s spec.SeriesSpec, splitValues []string, yAcc string) Identifier {
	parts := []string{s.ID}
	parts = append(parts, splitValues...)
	if len(s.YAccessors) > 1 {
		parts = append(parts, yAcc)
	}
	return Identifier{
		Key:         Key(strings.Join(parts, keySeparator)),
		SpecID:      s.ID,
		GroupID:     s.Group(),
		YAccessor:   yAcc,
		SplitValues: splitValues,
	}
}

func name(s spec.SeriesSpec, id Identifier) string {
	parts := slices.Clone(id.SplitValues)
	if len(s.YAccessors) > 1 {
		parts = append(parts, id.YAccessor)
	}
	if len(parts) == 0 {
		return s.ID
	}
	return strings.Join(parts, NameSeparator)
}

// KeySet builds a lookup set from legend keys.
func KeySet(keys []string) map[Key]bool {
	set := make(map[Key]bool, len(keys))
	for _, k := range keys {
		set[Key(k)] = true
	}
	return set
}
