package domain

import (
	"math"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// MergeAxisBounds collects the partial y domains declared on axes, merged
// by group id. A bound on the category axis of the rotation, or a complete
// bound with min > max, is a configuration error.
func MergeAxisBounds(axes []spec.AxisSpec, rotation spec.Rotation) (map[string]spec.Bound, error) {
	byGroup := make(map[string]spec.Bound)
	for _, a := range axes {
		if a.Domain == nil || a.Domain.IsEmpty() {
			continue
		}
		if !spec.IsYDomain(a.Position, rotation) {
			return nil, errors.Axis(a.ID).New(errors.ErrCodeInvalidAxis,
				"custom domain for the x axis should be declared in settings")
		}
		if err := checkBound(*a.Domain, errors.Axis(a.ID)); err != nil {
			return nil, err
		}
		prev, ok := byGroup[a.Group()]
		if !ok {
			byGroup[a.Group()] = *a.Domain
			continue
		}
		byGroup[a.Group()] = MergeBounds(prev, *a.Domain)
	}
	return byGroup, nil
}

// MergeBounds merges two partial bounds into the tightest bound satisfying
// both declarations: the smaller of two minimums, the larger of two maximums.
func MergeBounds(a, b spec.Bound) spec.Bound {
	return spec.Bound{
		Min: mergeSide(a.Min, b.Min, math.Min),
		Max: mergeSide(a.Max, b.Max, math.Max),
		Fit: a.Fit || b.Fit,
	}
}

func mergeSide(a, b *float64, pick func(x, y float64) float64) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return spec.Float(pick(*a, *b))
}

func checkBound(b spec.Bound, owner errors.Subject) error {
	if b.IsComplete() && *b.Min > *b.Max {
		return owner.New(errors.ErrCodeInvalidDomain,
			"custom domain is invalid, min %g is greater than max %g", *b.Min, *b.Max)
	}
	return nil
}

// applyBound replaces the computed extent with the bound's sides. A lower
// bound above the computed max, or an upper bound below the computed min,
// is a configuration error.
func applyBound(lo, hi float64, b spec.Bound, owner errors.Subject) (float64, float64, error) {
	if err := checkBound(b, owner); err != nil {
		return 0, 0, err
	}
	switch {
	case b.IsComplete():
		return *b.Min, *b.Max, nil
	case b.Min != nil:
		if *b.Min > hi {
			return 0, 0, owner.New(errors.ErrCodeInvalidDomain,
				"custom min %g is greater than computed max %g", *b.Min, hi)
		}
		return *b.Min, hi, nil
	case b.Max != nil:
		if lo > *b.Max {
			return 0, 0, owner.New(errors.ErrCodeInvalidDomain,
				"computed min %g is greater than custom max %g", lo, *b.Max)
		}
		return lo, *b.Max, nil
	}
	return lo, hi, nil
}
