// Package dag provides the precedence graph used to order the items of a
// single sequence.
//
// # Overview
//
// Each node is an item of the sequence under repair and each edge is a
// precedence rule whose endpoints both occur in that sequence. Rules that
// touch absent items never enter the graph. The graph is built with
// [FromRules]:
//
//	g := dag.FromRules(rs, rules.Sequence{75, 97, 47, 61, 53})
//	order, err := g.TopoOrder()
//	// order == [97 75 47 61 53]
//
// # Ordering
//
// [DAG.TopoOrder] runs Kahn's algorithm. Among the nodes that are ready at
// any step, the one with the smallest input position is emitted first, so
// the result keeps the original relative order wherever the rules allow it.
// A graph whose nodes cannot all be emitted contains a cycle, and
// TopoOrder returns [ErrGraphHasCycle] together with the nodes that were
// left over.
//
// # Rows
//
// Every node carries a Row that [transform.AssignLayers] sets to its
// longest-path depth. Rows are only used for rendering: nodes in the same
// row are mutually unconstrained.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Each sequence builds its
// own graph, so the pipeline never shares one between goroutines.
//
// [transform.AssignLayers]: github.com/matzehuels/pageorder/pkg/dag/transform
package dag
