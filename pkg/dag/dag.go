package dag

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/pageorder/pkg/rules"
)

var (
	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrSelfLoop is returned by [DAG.AddEdge] when From == To.
	ErrSelfLoop = errors.New("edge connects a node to itself")

	// ErrGraphHasCycle is returned by [DAG.Validate] and [DAG.TopoOrder] when
	// the precedence rules among the nodes are contradictory.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Node is an item of the sequence being ordered.
type Node struct {
	ID  rules.Item // Item identifier
	Pos int        // Index of the item in the input sequence
	Row int        // Longest-path depth, set by transform.AssignLayers
}

// Edge is a precedence rule between two nodes: From must precede To.
type Edge struct {
	From rules.Item
	To   rules.Item
}

// DAG is a directed graph of precedence rules over the items of one
// sequence. Despite the name it may contain cycles until [DAG.Validate]
// says otherwise; contradictory rule sets produce exactly such graphs.
//
// The zero value is not usable - use New or FromRules.
type DAG struct {
	nodes    map[rules.Item]*Node
	order    []rules.Item // node IDs in insertion order
	edges    []Edge
	outgoing map[rules.Item][]rules.Item
	incoming map[rules.Item][]rules.Item
}

// New creates an empty graph.
func New() *DAG {
	return &DAG{
		nodes:    make(map[rules.Item]*Node),
		outgoing: make(map[rules.Item][]rules.Item),
		incoming: make(map[rules.Item][]rules.Item),
	}
}

// FromRules builds the precedence graph of seq: one node per distinct item
// (positioned at its first occurrence) and one edge per applicable rule.
// Inert rules are left out.
func FromRules(rs *rules.Set, seq rules.Sequence) *DAG {
	g := New()
	for i, it := range seq {
		_ = g.AddNode(Node{ID: it, Pos: i}) // repeated items keep their first position
	}
	for _, r := range rs.Applicable(seq) {
		_ = g.AddEdge(Edge{From: r.Before, To: r.After})
	}
	return g
}

// AddNode adds a node to the graph. Returns ErrDuplicateNodeID if the ID is
// already present.
func (d *DAG) AddNode(n Node) error {
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := n
	d.nodes[n.ID] = &node
	d.order = append(d.order, n.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// missing, and ErrSelfLoop if both endpoints are the same node.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.From == e.To {
		return ErrSelfLoop
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// RemoveEdge removes the edge from→to if it exists.
func (d *DAG) RemoveEdge(from, to rules.Item) {
	d.edges = slices.DeleteFunc(d.edges, func(e Edge) bool { return e.From == from && e.To == to })
	d.outgoing[from] = slices.DeleteFunc(d.outgoing[from], func(id rules.Item) bool { return id == to })
	d.incoming[to] = slices.DeleteFunc(d.incoming[to], func(id rules.Item) bool { return id == from })
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's own nodes.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.order))
	for i, id := range d.order {
		nodes[i] = d.nodes[id]
	}
	return nodes
}

// Node returns the node with the given ID.
func (d *DAG) Node(id rules.Item) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the IDs that must follow id. The slice is read-only.
func (d *DAG) Children(id rules.Item) []rules.Item { return d.outgoing[id] }

// InDegree returns the number of incoming edges to the node.
func (d *DAG) InDegree(id rules.Item) int { return len(d.incoming[id]) }

// OutDegree returns the number of outgoing edges from the node.
func (d *DAG) OutDegree(id rules.Item) int { return len(d.outgoing[id]) }

// Sources returns nodes with no incoming edges, in insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// SetRows updates row assignments. Nodes missing from rows keep their
// current row.
func (d *DAG) SetRows(rows map[rules.Item]int) {
	for id, row := range rows {
		if n, ok := d.nodes[id]; ok {
			n.Row = row
		}
	}
}

// RowIDs returns the distinct row indices in ascending order.
func (d *DAG) RowIDs() []int {
	seen := make(map[int]struct{})
	for _, n := range d.nodes {
		seen[n.Row] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// NodesInRow returns the nodes assigned to row, ordered by input position.
func (d *DAG) NodesInRow(row int) []*Node {
	var out []*Node
	for _, id := range d.order {
		if n := d.nodes[id]; n.Row == row {
			out = append(out, n)
		}
	}
	return out
}

// Validate returns ErrGraphHasCycle if the graph contains a directed cycle.
func (d *DAG) Validate() error {
	if d.FindCycle() != nil {
		return ErrGraphHasCycle
	}
	return nil
}

// FindCycle returns the node IDs of one directed cycle, starting and ending
// at the same node, or nil if the graph is acyclic. Detection uses
// depth-first search with white/gray/black coloring in insertion order, so
// the reported cycle is deterministic.
func (d *DAG) FindCycle() []rules.Item {
	const (
		white = iota
		gray
		black
	)

	color := make(map[rules.Item]int, len(d.nodes))
	var stack []rules.Item
	var cycle []rules.Item

	var dfs func(id rules.Item) bool
	dfs = func(id rules.Item) bool {
		color[id] = gray
		stack = append(stack, id)
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				start := slices.Index(stack, child)
				cycle = append(slices.Clone(stack[start:]), child)
				return true
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, id := range d.order {
		if color[id] == white && dfs(id) {
			return cycle
		}
	}
	return nil
}

// TopoOrder returns the node IDs in an order that satisfies every edge.
//
// TopoOrder uses Kahn's algorithm: nodes with no unsatisfied predecessor
// are ready, and the ready node with the smallest Pos is emitted next.
// The result is therefore deterministic and equal to the insertion order
// whenever that order already satisfies every edge.
//
// If the graph has a cycle, TopoOrder returns the nodes it could emit and
// ErrGraphHasCycle.
//
// Time complexity is O((V + E) log V).
func (d *DAG) TopoOrder() ([]rules.Item, error) {
	inDegree := make(map[rules.Item]int, len(d.nodes))
	var ready []*Node
	for _, id := range d.order {
		deg := len(d.incoming[id])
		inDegree[id] = deg
		if deg == 0 {
			ready = append(ready, d.nodes[id])
		}
	}
	slices.SortFunc(ready, byPos)

	out := make([]rules.Item, 0, len(d.nodes))
	for len(ready) > 0 {
		curr := ready[0]
		ready = ready[1:]
		out = append(out, curr.ID)

		for _, child := range d.outgoing[curr.ID] {
			inDegree[child]--
			if inDegree[child] == 0 {
				n := d.nodes[child]
				i, _ := slices.BinarySearchFunc(ready, n, byPos)
				ready = slices.Insert(ready, i, n)
			}
		}
	}

	if len(out) != len(d.nodes) {
		return out, ErrGraphHasCycle
	}
	return out, nil
}

func byPos(a, b *Node) int { return cmp.Compare(a.Pos, b.Pos) }
