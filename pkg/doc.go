// Package pkg provides the core libraries of chartframe, a layout and
// geometry engine for cartesian charts.
//
// # Overview
//
// Chartframe turns declarative chart specifications (axes, series,
// annotations, settings) and a container size into everything a paint
// backend needs: the chart frame, axis ticks and gridlines, bar, line and
// area geometry, small-multiple panels and the interaction overlay. It
// draws nothing itself.
//
// # Architecture
//
// A layout pass runs these stages, each memoized on its inputs:
//
//	specs → [spec] settings
//	          ↓
//	      [domain] x and y domains
//	          ↓
//	      [axis] tick label dimensions
//	          ↓
//	      [frame] chart frame
//	          ↓
//	      [panel] small multiples → [axis] projection
//	          ↓
//	      [geom] series geometry → legend
//	          ↓
//	      [interaction] cursor, brush, highlight, tooltip
//
// [pipeline] orchestrates the stages and skips the ones whose inputs did
// not change, returning the previous outputs unchanged.
//
// # Quick Start
//
//	ctrl := pipeline.New(pipeline.Options{})
//	defer ctrl.Close(ctx)
//
//	out, err := ctrl.Compute(ctx, pipeline.Inputs{
//	    Specs:     specs,
//	    Container: spec.Container{Width: 640, Height: 360},
//	})
//
// # Main Packages
//
// [spec] - Chart specification types and validation.
//
// [series], [scale], [domain] - Data series, scales and domain resolution.
//
// [axis], [frame], [panel] - Tick dimensions, frame and panel layout, axis
// projection.
//
// [geom], [interaction] - Series geometry and pointer interaction.
//
// [memo], [dag], [pipeline] - Memoization, the stage graph and the pass
// controller.
//
// [textmeasure], [fonts] - Text measurement.
//
// [fixture], [debugstate], [render] - TOML fixtures, debug snapshots and
// SVG or Graphviz previews.
//
// [spec]: github.com/matzehuels/chartframe/pkg/spec
// [series]: github.com/matzehuels/chartframe/pkg/series
// [scale]: github.com/matzehuels/chartframe/pkg/scale
// [domain]: github.com/matzehuels/chartframe/pkg/domain
// [axis]: github.com/matzehuels/chartframe/pkg/axis
// [frame]: github.com/matzehuels/chartframe/pkg/frame
// [panel]: github.com/matzehuels/chartframe/pkg/panel
// [geom]: github.com/matzehuels/chartframe/pkg/geom
// [interaction]: github.com/matzehuels/chartframe/pkg/interaction
// [memo]: github.com/matzehuels/chartframe/pkg/memo
// [dag]: github.com/matzehuels/chartframe/pkg/dag
// [pipeline]: github.com/matzehuels/chartframe/pkg/pipeline
// [textmeasure]: github.com/matzehuels/chartframe/pkg/textmeasure
// [fonts]: github.com/matzehuels/chartframe/pkg/fonts
// [fixture]: github.com/matzehuels/chartframe/pkg/fixture
// [debugstate]: github.com/matzehuels/chartframe/pkg/debugstate
// [render]: github.com/matzehuels/chartframe/pkg/render
package pkg
