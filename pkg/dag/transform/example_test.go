package transform_test

import (
	"fmt"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/dag/transform"
	"github.com/matzehuels/pageorder/pkg/rules"
)

func ExampleNormalize() {
	rs := rules.New([]rules.Rule{
		{Before: 97, After: 75},
		{Before: 75, After: 47},
		{Before: 97, After: 47}, // implied by the two rules above
	})
	g := dag.FromRules(rs, rules.Sequence{75, 97, 47})

	res := transform.Normalize(g)
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Removed:", res.TransitiveEdgesRemoved)
	fmt.Println("Rows:", res.MaxRow+1)
	// Output:
	// Edges: 2
	// Removed: 1
	// Rows: 3
}

func ExampleBreakCycles() {
	rs := rules.New([]rules.Rule{
		{Before: 13, After: 47},
		{Before: 47, After: 13},
	})
	g := dag.FromRules(rs, rules.Sequence{13, 47})

	for _, e := range transform.BreakCycles(g) {
		fmt.Printf("removed %d|%d\n", e.From, e.To)
	}
	// Output:
	// removed 47|13
}
