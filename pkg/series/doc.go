// Package series turns series specs into data series ready for domain
// resolution and geometry building.
//
// [Split] expands every spec into one [DataSeries] per y accessor and split
// value combination, normalizing x values for the chart's x scale type.
// [Format] groups visible series by group id, separating stacked from
// non-stacked groups, and stacks each stacked group with [Stack].
//
// Stacking is a left fold over the group's series: every step produces a
// fresh baseline, so no series ever observes a partially updated sum and
// input series are never mutated.
package series
