package transform

import "github.com/matzehuels/pageorder/pkg/dag"

// BreakCycles removes back edges until the graph is acyclic and returns the
// removed edges in discovery order. Nodes are visited sources first, then
// in insertion order, so the result is deterministic. An acyclic graph is
// left untouched and nil is returned.
func BreakCycles(g *dag.DAG) []dag.Edge {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int)
	var backEdges []dag.Edge

	var dfs func(node int)
	dfs = func(node int) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, dag.Edge{From: node, To: child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		g.RemoveEdge(e.From, e.To)
	}
	return backEdges
}
