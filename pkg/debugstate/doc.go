// Package debugstate provides a serializable snapshot of a computed chart.
//
// A [Snapshot] flattens the output of a layout pass into what a test or an
// external inspector wants to look at: axis labels, values and gridlines,
// legend items, and the paths and points of every series geometry.
//
// # Encoding
//
// Snapshots encode to pretty-printed JSON for files and diffs, and to BSON
// for document stores:
//
//	snap := debugstate.New(out, specs.Axes)
//	data, err := debugstate.Encode(snap, debugstate.FormatBSON)
//
// [WriteFile] and [ReadFile] pick the encoding from the file extension.
package debugstate
