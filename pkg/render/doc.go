// Package render groups the visual outputs of chartframe.
//
// Neither renderer is needed to lay out a chart; both exist to inspect
// what a layout pass produced.
//
//   - [preview] draws a computed chart as static SVG: frame, axes,
//     gridlines, series geometry and the interaction overlay.
//
//   - [stagegraph] draws the pipeline's stage graph through Graphviz,
//     optionally colored by which stages a pass recomputed.
//
//     out, err := ctrl.Compute(ctx, in)
//     svg := preview.RenderSVG(out, in.Container, preview.WithAxes(in.Specs.Axes))
//
// [preview]: github.com/matzehuels/chartframe/pkg/render/preview
// [stagegraph]: github.com/matzehuels/chartframe/pkg/render/stagegraph
package render
