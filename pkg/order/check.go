package order

import (
	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// IsOrdered reports whether seq satisfies every rule of rs whose endpoints
// both occur in seq. It is vacuously true when no rule applies.
func IsOrdered(seq rules.Sequence, rs *rules.Set) bool {
	if rs.Len() == 0 || len(seq) < 2 {
		return true
	}
	pos := rules.PosMap(seq)
	for _, it := range seq {
		for _, after := range rs.Successors(it) {
			if p, ok := pos[after]; ok && p < pos[it] {
				return false
			}
		}
	}
	return true
}

// Violations returns the applicable rules that seq breaks, sorted by
// (Before, After). Returns nil for an ordered sequence.
func Violations(seq rules.Sequence, rs *rules.Set) []rules.Rule {
	pos := rules.PosMap(seq)
	var out []rules.Rule
	for _, r := range rs.Applicable(seq) {
		if pos[r.Before] > pos[r.After] {
			out = append(out, r)
		}
	}
	return out
}

// Validate rejects sequences the corrector cannot handle: empty ones and
// ones that repeat an item.
func Validate(seq rules.Sequence) error {
	if len(seq) == 0 {
		return errors.New(errors.ErrCodeInvalidSequence, "sequence is empty")
	}
	seen := make(map[rules.Item]int, len(seq))
	for i, it := range seq {
		if j, dup := seen[it]; dup {
			return errors.New(errors.ErrCodeDuplicateItem, "item %d appears at positions %d and %d", it, j, i)
		}
		seen[it] = i
	}
	return nil
}
