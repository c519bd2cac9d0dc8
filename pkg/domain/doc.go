// Package domain resolves the x domain and the per-group y domains of a chart.
//
// Data extents come from the visible data series (see pkg/series). Partial
// bounds declared on axes are merged per group with [MergeAxisBounds]: when
// two bounds on one group both set a minimum, the smaller wins; when both set
// a maximum, the larger wins; a one-sided bound leaves the other side to the
// data extent.
//
// Configuration errors are returned as *errors.Error with code
// INVALID_DOMAIN or INVALID_AXIS. Degenerate inputs (no visible series) are
// not errors: [Result.Empty] reports them.
package domain
