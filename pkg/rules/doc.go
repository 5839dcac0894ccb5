// Package rules defines items, precedence rules, and the immutable rule set
// that sequences are validated against.
//
// # Overview
//
// A [Rule] is an ordered pair (Before, After) meaning "Before must appear
// ahead of After whenever both appear in a sequence". A [Set] is an
// unordered, deduplicated collection of rules indexed for fast lookup:
//
//	rs := rules.New([]rules.Rule{{Before: 47, After: 53}, {Before: 97, After: 13}})
//	rs.Has(47, 53)                      // true
//	rs.Applicable(rules.Sequence{47, 53, 29}) // [{47 53}]
//
// Rules whose endpoints are not both present in a sequence are inert for
// that sequence: they neither pass nor fail.
//
// # Text Forms
//
// [ParseRule] reads the "<before>|<after>" form and [ParseSequence] reads
// comma-separated items. Both are used by the input loader in
// [github.com/matzehuels/pageorder/pkg/io].
//
// # Concurrency
//
// A Set is never modified after [New] returns, so it can be shared across
// goroutines without synchronization. Sequences are plain slices owned by
// the caller.
package rules
