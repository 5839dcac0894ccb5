package dag_test

import (
	"fmt"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/rules"
)

func ExampleFromRules() {
	rs := rules.New([]rules.Rule{
		{Before: 97, After: 75},
		{Before: 75, After: 47},
		{Before: 47, After: 61},
		{Before: 61, After: 53},
		{Before: 97, After: 13}, // inert: 13 is not in the sequence
	})

	g := dag.FromRules(rs, rules.Sequence{75, 97, 47, 61, 53})
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Children of 97:", g.Children(97))
	// Output:
	// Nodes: 5
	// Edges: 4
	// Children of 97: [75]
}

func ExampleDAG_TopoOrder() {
	rs := rules.New([]rules.Rule{
		{Before: 97, After: 75},
		{Before: 75, After: 47},
	})

	// 61 and 53 are unconstrained and keep their input order.
	g := dag.FromRules(rs, rules.Sequence{75, 61, 97, 53, 47})
	order, err := g.TopoOrder()
	fmt.Println(order, err)
	// Output:
	// [61 97 75 53 47] <nil>
}

func ExampleDAG_FindCycle() {
	g := dag.FromRules(rules.New([]rules.Rule{
		{Before: 1, After: 2},
		{Before: 2, After: 3},
		{Before: 3, After: 1},
	}), rules.Sequence{1, 2, 3})

	fmt.Println("Cycle:", g.FindCycle())
	fmt.Println("Valid:", g.Validate() == nil)
	// Output:
	// Cycle: [1 2 3 1]
	// Valid: false
}

func ExampleDisplacement() {
	before := rules.Sequence{75, 97, 47, 61, 53}
	after := rules.Sequence{97, 75, 47, 61, 53}
	fmt.Println("Moved pairs:", dag.Displacement(before, after))
	// Output:
	// Moved pairs: 1
}
