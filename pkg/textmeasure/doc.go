// Package textmeasure measures the pixel size of chart labels.
//
// Measurement is scoped: a [Measurer] hands out a [Surface] for one layout
// pass, the pass measures as many strings as it needs, and the surface is
// released afterwards. Surfaces hold per-pass resources (font faces) and
// must be released on every exit path:
//
//	surface, err := m.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer surface.Release()
//	box := surface.Measure("1,000", textmeasure.Style{FontSize: 10})
//
// Three measurers are provided: [FontMeasurer] uses real glyph metrics of
// the embedded Go fonts, [Heuristic] estimates sizes from character counts,
// and [Fixed] returns a constant box for tests.
package textmeasure
