// Package transform provides graph transformations that prepare a
// precedence graph for display.
//
// # Overview
//
// The graph of a sequence usually carries many redundant rules: if 97 must
// precede 75 and 75 must precede 47, the rule 97|47 adds nothing to the
// ordering. [Normalize] strips such edges, removes back edges from
// contradictory rule sets, and assigns every node a row so that a renderer
// can draw the graph top to bottom.
//
// # Cycle Breaking
//
// [BreakCycles] removes one back edge per cycle found by depth-first search
// and returns the removed edges. Those edges are exactly the rules that
// make the rule set inconsistent for the sequence.
//
// # Transitive Reduction
//
// [TransitiveReduction] removes any edge (u, v) when v is reachable from u
// through another node. The reachable relation, and therefore every valid
// ordering, is unchanged.
//
// # Layer Assignment
//
// [AssignLayers] sets each node's Row to its longest-path depth from the
// sources. Nodes sharing a row have no rule between them.
//
// The transformations never change the set of valid orderings of an
// acyclic graph. They are not used by the corrector itself.
package transform
