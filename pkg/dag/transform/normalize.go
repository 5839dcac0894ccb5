package transform

import "github.com/matzehuels/pageorder/pkg/dag"

// Result contains metrics about the transformations applied by [Normalize].
type Result struct {
	// BrokenEdges are the back edges removed to make the graph acyclic.
	// Empty when the rules are consistent for the sequence.
	BrokenEdges []dag.Edge

	// TransitiveEdgesRemoved is the number of redundant edges removed.
	TransitiveEdgesRemoved int

	// MaxRow is the deepest row after layer assignment.
	MaxRow int
}

// Normalize breaks cycles, removes transitive edges, and assigns rows, in
// that order. The graph is modified in place.
func Normalize(g *dag.DAG) Result {
	broken := BreakCycles(g)
	reduced := TransitiveReduction(g)
	maxRow := AssignLayers(g)
	return Result{
		BrokenEdges:            broken,
		TransitiveEdgesRemoved: reduced,
		MaxRow:                 maxRow,
	}
}
