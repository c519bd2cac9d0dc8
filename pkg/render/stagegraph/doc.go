// Package stagegraph renders the layout pipeline's stage graph as a
// Graphviz diagram.
//
// Stages are drawn as boxes with an arrow from each stage to the stages
// that read its output. Stages that measure text get a double outline.
// When the cache outcome of a pass is given, recomputed stages are filled
// and cache hits are drawn plain, which makes it easy to see how far an
// input change propagated:
//
//	out, _ := ctrl.Compute(ctx, in)
//	dot := stagegraph.ToDOT(pipeline.StageGraph(), stagegraph.Options{
//	    Hits: out.CacheInfo.Hits,
//	})
//	svg, err := stagegraph.RenderSVG(ctx, dot)
package stagegraph
