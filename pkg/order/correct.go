package order

import (
	"fmt"
	"strings"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// Strategy selects the correction algorithm.
type Strategy string

const (
	// StrategyTopological emits a stable topological order of the
	// sequence's precedence graph.
	StrategyTopological Strategy = "topo"

	// StrategySwap repairs the sequence by swapping the items of violated
	// rules, pass after pass, until it checks clean.
	StrategySwap Strategy = "swap"
)

// DefaultStrategy is used when a Corrector has no strategy set.
const DefaultStrategy = StrategyTopological

// ParseStrategy converts a strategy name. The empty string selects
// DefaultStrategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultStrategy, nil
	case StrategyTopological, "topological":
		return StrategyTopological, nil
	case StrategySwap:
		return StrategySwap, nil
	}
	return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (want %q or %q)", s, StrategyTopological, StrategySwap)
}

// Corrector repairs sequences with a fixed strategy. The zero value uses
// DefaultStrategy and the default pass budget. A Corrector holds no state
// between calls and is safe for concurrent use.
type Corrector struct {
	Strategy Strategy

	// MaxPasses bounds the number of full rule passes made by
	// StrategySwap. Zero means len(seq)² + 1, which is more than a
	// consistent rule set ever needs.
	MaxPasses int
}

// MakeOrdered returns a permutation of seq that satisfies every applicable
// rule of rs, using the topological strategy. seq is not modified.
func MakeOrdered(seq rules.Sequence, rs *rules.Set) (rules.Sequence, error) {
	return (&Corrector{}).MakeOrdered(seq, rs)
}

// MakeOrdered returns a permutation of seq that satisfies every applicable
// rule of rs. seq is not modified and an already-ordered sequence comes back
// as an equal copy.
//
// Returns an INVALID_SEQUENCE or DUPLICATE_ITEM error for sequences that
// fail [Validate], and an INCONSISTENT_RULE_SET error wrapping
// [dag.ErrGraphHasCycle] when the rules restricted to seq are cyclic.
func (c *Corrector) MakeOrdered(seq rules.Sequence, rs *rules.Set) (rules.Sequence, error) {
	if err := Validate(seq); err != nil {
		return nil, err
	}
	if IsOrdered(seq, rs) {
		return seq.Clone(), nil
	}

	switch c.strategy() {
	case StrategySwap:
		return c.swap(seq, rs)
	default:
		return topological(seq, rs)
	}
}

func (c *Corrector) strategy() Strategy {
	if c == nil || c.Strategy == "" {
		return DefaultStrategy
	}
	return c.Strategy
}

func (c *Corrector) passBudget(n int) int {
	if c != nil && c.MaxPasses > 0 {
		return c.MaxPasses
	}
	return n*n + 1
}

func topological(seq rules.Sequence, rs *rules.Set) (rules.Sequence, error) {
	g := dag.FromRules(rs, seq)
	out, err := g.TopoOrder()
	if err != nil {
		return nil, inconsistent(g)
	}
	return out, nil
}

// swap is the repair-by-local-swap strategy. Every pass visits the
// applicable rules in (Before, After) order and swaps the two positions of
// each violated rule. Each such swap removes at least one inversion, so a
// consistent rule set finishes in at most n(n-1)/2 swaps.
func (c *Corrector) swap(seq rules.Sequence, rs *rules.Set) (rules.Sequence, error) {
	out := seq.Clone()
	applicable := rs.Applicable(out)
	pos := rules.PosMap(out)

	budget := c.passBudget(len(out))
	for pass := 0; pass < budget; pass++ {
		for _, r := range applicable {
			i, j := pos[r.After], pos[r.Before]
			if j < i {
				continue
			}
			out[i], out[j] = r.Before, r.After
			pos[r.Before], pos[r.After] = i, j
		}
		if IsOrdered(out, rs) {
			return out, nil
		}
	}
	return nil, inconsistent(dag.FromRules(rs, seq))
}

func inconsistent(g *dag.DAG) error {
	cycle := g.FindCycle()
	if cycle == nil {
		return errors.Wrap(errors.ErrCodeInconsistentRuleSet, dag.ErrGraphHasCycle,
			"no ordering found within the pass budget")
	}
	parts := make([]string, len(cycle))
	for i, it := range cycle {
		parts[i] = fmt.Sprint(it)
	}
	return errors.Wrap(errors.ErrCodeInconsistentRuleSet, dag.ErrGraphHasCycle,
		"rules form a cycle %s", strings.Join(parts, " -> "))
}
