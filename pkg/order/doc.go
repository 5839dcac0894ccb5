// Package order checks sequences against a rule set and repairs the ones
// that violate it.
//
// # Checking
//
// [IsOrdered] reports whether every applicable rule holds: for each rule
// (Before, After) with both items present, Before sits at a smaller index
// than After. Rules touching absent items are skipped, so an empty rule set
// accepts every sequence. [Violations] lists the broken rules.
//
// # Correcting
//
// [MakeOrdered] returns an ordered permutation of a sequence without
// touching the input. Two strategies are available through [Corrector]:
//
//   - [StrategyTopological] (default) builds the precedence graph of the
//     sequence and emits a stable topological order. It always terminates
//     and reports a cycle among co-occurring items as an
//     INCONSISTENT_RULE_SET error.
//   - [StrategySwap] repeatedly swaps the two items of every violated rule
//     until the sequence checks clean. It gives up with the same error once
//     its pass budget is spent.
//
// For rule sets that induce a total order on each sequence, the puzzle
// input class, both strategies produce the same result.
//
// # Results
//
// [Corrector.Resolve] combines checking and correcting into a tagged
// [Result] whose Status says whether the sequence was already ordered, was
// corrected, or could not be ordered.
package order
