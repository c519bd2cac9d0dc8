// Package dag provides the dependency graph of derivation stages.
//
// A layout pass is a set of stages (domains, tick dimensions, frame,
// panels, geometries and so on) where each stage reads the outputs of
// others. The graph records those reads as edges pointing from the
// producing stage to the consuming one.
//
// # Basic Usage
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "domain"})
//	g.AddNode(dag.Node{ID: "ticks"})
//	g.AddEdge(dag.Edge{From: "domain", To: "ticks"})
//	order, err := g.Order() // [domain ticks]
//
// [DAG.Order] assigns rows by dependency depth and returns a stable
// topological order. [DAG.Downstream] lists the stages a changed input
// invalidates. [DAG.Validate] rejects cycles.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Graphs are usually built
// once and only read afterwards.
package dag
