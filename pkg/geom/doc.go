// Package geom turns resolved series into drawable geometry.
//
// Geometry is a closed sum type: [Geometry] is implemented only by [Bar],
// [Line], [Area], [Point], [AnnotationLine] and [AnnotationRect], and
// callers switch on the concrete type:
//
//	for _, g := range geoms.Ordered() {
//	    switch g := g.(type) {
//	    case *geom.Bar:
//	        drawRect(g.X, g.Y, g.Width, g.Height, g.Color)
//	    case *geom.Line:
//	        drawPath(g.Path, g.Color)
//	    }
//	}
//
// Coordinates are unrotated: x runs along the category axis from 0 to the
// frame size on that axis and y grows downwards from the top of the value
// axis. The frame transform (see frame.TransformFor) places them on screen.
//
// Geometry is rebuilt on every pass and never mutated afterwards.
package geom
