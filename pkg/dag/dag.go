package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrGraphHasCycle is returned by [DAG.Validate] and [DAG.Order] when a
	// stage depends on itself through its inputs.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to a node.
type Metadata map[string]any

// Node is one derivation stage.
type Node struct {
	ID   string   // Stage name
	Row  int      // Depth below the sources, assigned by [DAG.Order]
	Meta Metadata // Never nil after AddNode
}

// Edge says that To reads the output of From.
type Edge struct {
	From string
	To   string
}

// DAG is the dependency graph of derivation stages.
//
// Nodes keep their insertion order, which breaks ties when stages of the
// same depth are ordered. The zero value is not usable; use [New].
// DAG is not safe for concurrent use without external synchronization.
type DAG struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a stage. It fails on an empty or duplicate ID.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, ok := d.nodes[n.ID]; ok {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	d.nodes[n.ID] = &n
	d.order = append(d.order, n.ID)
	return nil
}

// AddEdge records that e.To depends on e.From. Both nodes must exist.
// Adding the same edge twice is a no-op.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if slices.Contains(d.outgoing[e.From], e.To) {
		return nil
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given ID.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (d *DAG) Nodes() []*Node {
	out := make([]*Node, len(d.order))
	for i, id := range d.order {
		out[i] = d.nodes[id]
	}
	return out
}

// Edges returns a copy of all edges.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the stages that read the output of id.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the stages whose outputs id reads.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// Sources returns the stages without inputs from other stages, in
// insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// Downstream returns id and every stage that transitively depends on it,
// in insertion order.
func (d *DAG) Downstream(id string) []string {
	seen := map[string]bool{}
	var walk func(string)
	walk = func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, c := range d.outgoing[n] {
			walk(c)
		}
	}
	walk(id)

	var out []string
	for _, n := range d.order {
		if seen[n] {
			out = append(out, n)
		}
	}
	return out
}

// Validate reports ErrGraphHasCycle if any stage depends on itself.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (d *DAG) Validate() error {
	return d.detectCycles()
}

func (d *DAG) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range d.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// Order assigns each node its row, the length of the longest dependency
// chain above it, and returns the node IDs sorted by row. Nodes in the
// same row keep their insertion order, so the result is deterministic.
func (d *DAG) Order() ([]string, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	depth := make(map[string]int, len(d.nodes))
	var visit func(id string) int
	visit = func(id string) int {
		if r, ok := depth[id]; ok {
			return r
		}
		r := 0
		for _, p := range d.incoming[id] {
			r = max(r, visit(p)+1)
		}
		depth[id] = r
		return r
	}
	for _, id := range d.order {
		d.nodes[id].Row = visit(id)
	}

	ids := slices.Clone(d.order)
	slices.SortStableFunc(ids, func(a, b string) int {
		return depth[a] - depth[b]
	})
	return ids, nil
}

// Rows groups node IDs by row. It calls [DAG.Order] first.
func (d *DAG) Rows() ([][]string, error) {
	ids, err := d.Order()
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, id := range ids {
		r := d.nodes[id].Row
		for len(rows) <= r {
			rows = append(rows, nil)
		}
		rows[r] = append(rows[r], id)
	}
	return rows, nil
}

// PosMap creates a position lookup map from a slice of node IDs.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
