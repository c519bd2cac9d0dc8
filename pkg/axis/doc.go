// Package axis computes axis labels and their placement around the chart
// frame.
//
// Axis work happens in two passes around the frame computation:
//
//  1. [ComputeTickDimensions] formats every visible axis's tick values and
//     measures the labels, so the frame can reserve enough room for them.
//  2. [Project] maps the same ticks into frame pixels once the frame is
//     known, drops ticks that fall outside it, thins overlapping labels
//     and emits gridlines and the box each axis is drawn in.
//
// Which data axis an axis spec shows depends on the chart rotation: a left
// axis shows y values at 0 and 180 degrees and x values at 90 and -90.
package axis
