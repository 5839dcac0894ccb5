package perm

import (
	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// MaxItems is the longest sequence Orderings accepts. 9! is 362880
// permutations.
const MaxItems = 9

// Orderings returns the permutations of seq that satisfy every applicable
// rule of rs, in the order [All] produces them. If limit > 0, at most limit
// orderings are returned and the walk stops there.
//
// Sequences longer than MaxItems are rejected with INVALID_INPUT; invalid
// sequences fail like [order.Validate].
func Orderings(seq rules.Sequence, rs *rules.Set, limit int) ([]rules.Sequence, error) {
	var out []rules.Sequence
	err := walk(seq, rs, func(cand rules.Sequence) bool {
		out = append(out, cand.Clone())
		return limit <= 0 || len(out) < limit
	})
	return out, err
}

// Count returns the number of valid orderings of seq. Only the current
// candidate is held in memory.
func Count(seq rules.Sequence, rs *rules.Set) (int, error) {
	n := 0
	err := walk(seq, rs, func(rules.Sequence) bool {
		n++
		return true
	})
	return n, err
}

// walk calls fn with every valid ordering of seq until fn returns false.
// The candidate passed to fn is reused between calls.
func walk(seq rules.Sequence, rs *rules.Set, fn func(rules.Sequence) bool) error {
	if err := order.Validate(seq); err != nil {
		return err
	}
	if len(seq) > MaxItems {
		return errors.New(errors.ErrCodeInvalidInput, "cannot enumerate %d items (max %d)", len(seq), MaxItems)
	}

	cand := make(rules.Sequence, len(seq))
	for p := range All(len(seq)) {
		for i, idx := range p {
			cand[i] = seq[idx]
		}
		if order.IsOrdered(cand, rs) && !fn(cand) {
			break
		}
	}
	return nil
}
