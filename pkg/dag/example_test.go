package dag_test

import (
	"fmt"

	"github.com/matzehuels/chartframe/pkg/dag"
)

func ExampleDAG_Order() {
	g := dag.New()
	for _, id := range []string{"geometries", "domain", "frame", "ticks"} {
		_ = g.AddNode(dag.Node{ID: id})
	}
	_ = g.AddEdge(dag.Edge{From: "domain", To: "ticks"})
	_ = g.AddEdge(dag.Edge{From: "ticks", To: "frame"})
	_ = g.AddEdge(dag.Edge{From: "frame", To: "geometries"})
	_ = g.AddEdge(dag.Edge{From: "domain", To: "geometries"})

	order, _ := g.Order()
	fmt.Println(order)
	// Output:
	// [domain ticks frame geometries]
}

func ExampleDAG_Rows() {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "domain"})
	_ = g.AddNode(dag.Node{ID: "legend"})
	_ = g.AddNode(dag.Node{ID: "ticks"})
	_ = g.AddEdge(dag.Edge{From: "domain", To: "legend"})
	_ = g.AddEdge(dag.Edge{From: "domain", To: "ticks"})

	rows, _ := g.Rows()
	fmt.Println(rows)
	// Output:
	// [[domain] [legend ticks]]
}

func ExampleDAG_Downstream() {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "domain"})
	_ = g.AddNode(dag.Node{ID: "frame"})
	_ = g.AddNode(dag.Node{ID: "interaction"})
	_ = g.AddEdge(dag.Edge{From: "domain", To: "frame"})
	_ = g.AddEdge(dag.Edge{From: "frame", To: "interaction"})

	fmt.Println(g.Downstream("frame"))
	// Output:
	// [frame interaction]
}
