package spec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/chartframe/pkg/errors"
)

// =============================================================================
// Positions and Rotations
// =============================================================================

// Position is the side of the chart frame an axis is attached to.
type Position string

// Axis positions.
const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// IsVertical reports whether the axis runs vertically (left or right side).
func (p Position) IsVertical() bool {
	return p == PositionLeft || p == PositionRight
}

// IsHorizontal reports whether the axis runs horizontally (top or bottom side).
func (p Position) IsHorizontal() bool {
	return p == PositionTop || p == PositionBottom
}

// Rotation is the chart rotation in degrees.
type Rotation int

// Supported chart rotations.
const (
	Rotation0     Rotation = 0
	Rotation90    Rotation = 90
	Rotation180   Rotation = 180
	RotationNeg90 Rotation = -90
)

// IsHorizontal reports whether the x axis runs horizontally (0 or 180).
func (r Rotation) IsHorizontal() bool {
	return r == Rotation0 || r == Rotation180
}

// IsVertical reports whether the x axis runs vertically (90 or -90).
func (r Rotation) IsVertical() bool {
	return r == Rotation90 || r == RotationNeg90
}

// Validate returns a configuration error for unsupported rotations.
func (r Rotation) Validate() error {
	return errors.ValidateRotation(int(r))
}

// IsYDomain reports whether an axis at position p displays a y (value)
// domain under rotation r. The other axes display the x (category) domain.
func IsYDomain(p Position, r Rotation) bool {
	if p.IsVertical() {
		return r.IsHorizontal()
	}
	return r.IsVertical()
}

// =============================================================================
// Kinds
// =============================================================================

// SeriesKind is the geometry kind produced for a series.
type SeriesKind string

// Series kinds.
const (
	KindBar  SeriesKind = "bar"
	KindLine SeriesKind = "line"
	KindArea SeriesKind = "area"
)

// ScaleType is the kind of x scale a series requests.
type ScaleType string

// Scale types.
const (
	ScaleLinear  ScaleType = "linear"
	ScaleOrdinal ScaleType = "ordinal"
)

// =============================================================================
// Domains
// =============================================================================

// Bound is a partial continuous domain. Either side may be absent.
// A complete bound (both sides set) requires Min <= Max.
type Bound struct {
	Min *float64 `toml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `toml:"max,omitempty" json:"max,omitempty"`

	// Fit drops the implicit zero baseline from the data extent.
	Fit bool `toml:"fit,omitempty" json:"fit,omitempty"`
}

// Float returns a pointer to v, for building bounds inline.
func Float(v float64) *float64 { return &v }

// LowerBound returns a bound with only a minimum.
func LowerBound(min float64) Bound { return Bound{Min: Float(min)} }

// UpperBound returns a bound with only a maximum.
func UpperBound(max float64) Bound { return Bound{Max: Float(max)} }

// CompleteBound returns a bound with both sides set.
func CompleteBound(min, max float64) Bound { return Bound{Min: Float(min), Max: Float(max)} }

// IsComplete reports whether both sides are set.
func (b Bound) IsComplete() bool { return b.Min != nil && b.Max != nil }

// IsEmpty reports whether neither side is set.
func (b Bound) IsEmpty() bool { return b.Min == nil && b.Max == nil }

// String implements fmt.Stringer.
func (b Bound) String() string {
	side := func(v *float64) string {
		if v == nil {
			return "_"
		}
		return strconv.FormatFloat(*v, 'g', -1, 64)
	}
	return fmt.Sprintf("{min:%s max:%s}", side(b.Min), side(b.Max))
}

// XDomainOverride replaces the computed x domain. Continuous charts set
// Min/Max (and optionally MinInterval); ordinal charts set Values.
type XDomainOverride struct {
	Min         *float64 `toml:"min,omitempty" json:"min,omitempty"`
	Max         *float64 `toml:"max,omitempty" json:"max,omitempty"`
	MinInterval *float64 `toml:"min_interval,omitempty" json:"min_interval,omitempty"`
	Values      []any    `toml:"values,omitempty" json:"values,omitempty"`
}

// Bound returns the continuous part of the override.
func (o XDomainOverride) Bound() Bound { return Bound{Min: o.Min, Max: o.Max} }

// IsOrdinal reports whether the override lists ordinal values.
func (o XDomainOverride) IsOrdinal() bool { return o.Values != nil }

// =============================================================================
// Value helpers
// =============================================================================

// Formatter converts a tick or datum value into a label.
type Formatter func(v any) string

// ToFloat converts numeric datum values to float64. Strings, nil and other
// types report false, as do NaN and infinite values.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatValue is the default formatter: numbers print in their shortest
// form, everything else through fmt.
func FormatValue(v any) string {
	if f, ok := ToFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
