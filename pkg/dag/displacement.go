package dag

import "github.com/matzehuels/pageorder/pkg/rules"

// Displacement returns the number of item pairs whose relative order
// differs between from and to (the Kendall tau distance). Items of to that
// are absent from from are ignored, as are repeated items after their
// first occurrence.
//
// A corrected sequence with displacement 1 differs from its input by a
// single adjacent swap; an already-ordered sequence has displacement 0.
//
// Displacement counts inversions with a Fenwick tree (binary indexed tree)
// in O(N log N) time instead of comparing every pair.
func Displacement(from, to rules.Sequence) int {
	if len(from) < 2 || len(to) < 2 {
		return 0
	}

	pos := rules.PosMap(from)
	seen := make(map[rules.Item]struct{}, len(to))
	fenwick := make([]int, len(from)+1)
	inversions, total := 0, 0
	for _, it := range to {
		p, ok := pos[it]
		if !ok {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}

		// Query: items placed so far whose original position is <= p
		lessOrEqual := 0
		for q := p + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		// Inversions = items placed so far that came after it originally
		inversions += total - lessOrEqual

		total++
		for idx := p + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return inversions
}
