package dag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddNode(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty id: %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate id: %v", err)
	}
	n, _ := g.Node("a")
	if n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"valid", Edge{From: "a", To: "b"}, nil},
		{"repeated", Edge{From: "a", To: "b"}, nil},
		{"unknown source", Edge{From: "x", To: "b"}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: "a", To: "x"}, ErrUnknownTargetNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.edge); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge() = %v, want %v", err, tt.want)
			}
		})
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"interaction", "geometries", "frame", "ticks", "domain", "legend"} {
		_ = g.AddNode(Node{ID: id})
	}
	for _, e := range []Edge{
		{"domain", "ticks"}, {"ticks", "frame"}, {"frame", "geometries"},
		{"domain", "geometries"}, {"geometries", "interaction"},
		{"frame", "interaction"}, {"domain", "legend"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}

	order, err := g.Order()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"domain", "ticks", "legend", "frame", "geometries", "interaction"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}

	pos := PosMap(order)
	for _, e := range g.Edges() {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("%s should come before %s", e.From, e.To)
		}
	}

	n, _ := g.Node("interaction")
	if n.Row != 4 {
		t.Errorf("interaction row = %d, want 4", n.Row)
	}
}

func TestCycle(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddNode(Node{ID: "c"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "c"})
	if err := g.Validate(); err != nil {
		t.Fatalf("acyclic graph: %v", err)
	}
	_ = g.AddEdge(Edge{From: "c", To: "a"})
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() = %v, want cycle", err)
	}
	if _, err := g.Order(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Order() = %v, want cycle", err)
	}
}

func TestSourcesAndDownstream(t *testing.T) {
	g := New()
	for _, id := range []string{"domain", "state", "frame", "interaction"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "domain", To: "frame"})
	_ = g.AddEdge(Edge{From: "frame", To: "interaction"})
	_ = g.AddEdge(Edge{From: "state", To: "interaction"})

	var sources []string
	for _, n := range g.Sources() {
		sources = append(sources, n.ID)
	}
	if diff := cmp.Diff([]string{"domain", "state"}, sources); diff != "" {
		t.Errorf("Sources() mismatch (-want +got):\n%s", diff)
	}
	tests := []struct {
		id   string
		want []string
	}{
		{"state", []string{"state", "interaction"}},
		{"domain", []string{"domain", "frame", "interaction"}},
		{"interaction", []string{"interaction"}},
		{"missing", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, g.Downstream(tt.id)); diff != "" {
			t.Errorf("Downstream(%q) mismatch (-want +got):\n%s", tt.id, diff)
		}
	}
}
