// Package pkg provides the core libraries for pageorder.
//
// # Overview
//
// pageorder checks sequences of items against pairwise precedence rules
// ("47 must come before 53"), repairs the sequences that break a rule, and
// sums the middle items of the ordered and of the repaired sequences. The
// pkg directory is organized into three areas:
//
//  1. Domain logic: [rules], [order], [dag]
//  2. Input and output: [io], [render/nodelink]
//  3. Orchestration and infrastructure: [pipeline], [cache], [config],
//     [observability], [errors]
//
// # Architecture
//
// The typical data flow:
//
//	input file ("b|a" rules, "x,y,z" sequences)
//	         ↓
//	    [io] package (parse, collect warnings)
//	         ↓
//	    [pipeline] package (fan out over sequences, cache summary)
//	         ↓
//	    [order] package (check, then correct via [dag])
//	         ↓
//	    middle sums, JSON report, DOT/SVG graph
//
// # Quick Start
//
//	in, _ := io.Load("input.txt")
//	sum, _ := pipeline.NewRunner(nil, nil, nil).Run(ctx, in, pipeline.Options{})
//	fmt.Println(sum.OrderedMiddleSum, sum.CorrectedMiddleSum)
//
// Single sequences can be handled without the pipeline:
//
//	rs := rules.New([]rules.Rule{{Before: 97, After: 75}})
//	if !order.IsOrdered(seq, rs) {
//	    seq, err = order.MakeOrdered(seq, rs)
//	}
//
// # Main Packages
//
// [rules] - Items, sequences, rules, and the immutable rule set.
//
// [order] - The checker and the corrector, with topological and swap
// strategies and a tagged per-sequence result.
//
// [dag] - The precedence graph of one sequence: stable Kahn ordering,
// cycle detection, and the displacement between two orderings.
//
// [dag/transform] - Cycle breaking, transitive reduction, and layering,
// used to draw readable graphs.
//
// [dag/perm] - Permutations and exhaustive enumeration of valid orderings
// for short sequences.
//
// [render/nodelink] - Graphviz diagrams of a precedence graph.
//
// [pipeline] - The batch driver shared by every CLI command.
//
// [cache] - File and null caches for run summaries.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/order/...    # Specific package
//	go test -run Example       # Examples only
//
// [rules]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/rules
// [order]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/order
// [dag]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/dag/transform
// [dag/perm]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/dag/perm
// [io]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/pageorder/pkg/errors
package pkg
