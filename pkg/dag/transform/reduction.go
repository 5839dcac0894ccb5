package transform

import "github.com/matzehuels/pageorder/pkg/dag"

// TransitiveReduction removes redundant edges from the graph and returns how
// many were removed.
//
// An edge (u, v) is redundant when u reaches v through some other child w
// of u. For example, with 97→75, 75→47 and 97→47, the edge 97→47 is
// removed because 97 reaches 47 via 75.
//
// # Algorithm
//
// TransitiveReduction computes full reachability with one depth-first
// search per node, then drops every edge (u, v) where some other child of
// u reaches v.
//
// TransitiveReduction assumes the graph is acyclic; run [BreakCycles]
// first otherwise.
//
// # Performance
//
// Time complexity is O(V·E) for the reachability pass plus O(E·d) for the
// edge scan, where d is the maximum out-degree. Space is O(V²). Sequences
// are short, so the quadratic matrix is never large.
func TransitiveReduction(g *dag.DAG) int {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0
	}

	nodeIndex := make(map[int]int, len(nodes))
	for i, n := range nodes {
		nodeIndex[n.ID] = i
	}
	adjacency := make([][]int, len(nodes))
	for _, e := range g.Edges() {
		adjacency[nodeIndex[e.From]] = append(adjacency[nodeIndex[e.From]], nodeIndex[e.To])
	}

	reachability := computeReachability(adjacency)

	removed := 0
	for _, e := range g.Edges() {
		src, dst := nodeIndex[e.From], nodeIndex[e.To]
		for _, intermediate := range adjacency[src] {
			if intermediate != dst && reachability[intermediate][dst] {
				g.RemoveEdge(e.From, e.To)
				removed++
				break
			}
		}
	}
	return removed
}

func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	var dfs func(source, current int)
	dfs = func(source, current int) {
		if reachable[source][current] {
			return
		}
		reachable[source][current] = true
		for _, next := range adjacency[current] {
			dfs(source, next)
		}
	}

	for i := range reachable {
		dfs(i, i)
	}
	return reachable
}
