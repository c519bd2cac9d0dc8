// Package interaction projects pointer state onto a laid out chart.
//
// Pointer positions and every returned rectangle are relative to the chart
// container, the same space the chart frame lives in. Internally the
// pointer is mapped into the frame and through the chart rotation back to
// unrotated series coordinates, where it can be inverted through the x
// scale.
//
// Every projection reports ok == false when there is nothing to project:
// a zero-area frame, an empty chart, or a pointer outside the frame.
package interaction
