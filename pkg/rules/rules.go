package rules

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Item is an opaque positive integer identifier. Items carry no meaning
// beyond identity and equality.
type Item = int

// Sequence is an ordered list of items. Items are expected to be unique
// within one sequence.
type Sequence []Item

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence { return slices.Clone(s) }

// String renders the sequence in its comma-separated input form.
func (s Sequence) String() string {
	buf := make([]byte, 0, len(s)*3)
	for i, it := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = fmt.Appendf(buf, "%d", it)
	}
	return string(buf)
}

// Rule is a precedence constraint: Before must appear ahead of After.
// A rule with Before == After is meaningless and is ignored by [New].
type Rule struct {
	Before Item `json:"before"`
	After  Item `json:"after"`
}

// String renders the rule in its "<before>|<after>" input form.
func (r Rule) String() string { return fmt.Sprintf("%d|%d", r.Before, r.After) }

// Set is an immutable collection of precedence rules.
//
// The zero value is an empty rule set that every sequence satisfies;
// use New to build a populated one.
type Set struct {
	after map[Item]map[Item]struct{} // before -> items that must follow it
	count int
}

// New builds a rule set from pairs. Insertion order is irrelevant and
// duplicate rules are stored once. Self-referencing rules are dropped.
func New(pairs []Rule) *Set {
	s := &Set{after: make(map[Item]map[Item]struct{}, len(pairs))}
	for _, r := range pairs {
		if r.Before == r.After {
			continue
		}
		succ, ok := s.after[r.Before]
		if !ok {
			succ = make(map[Item]struct{})
			s.after[r.Before] = succ
		}
		if _, dup := succ[r.After]; dup {
			continue
		}
		succ[r.After] = struct{}{}
		s.count++
	}
	return s
}

// Len returns the number of distinct rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Has reports whether the rule before|after is in the set.
func (s *Set) Has(before, after Item) bool {
	if s == nil {
		return false
	}
	_, ok := s.after[before][after]
	return ok
}

// Successors returns the items that must follow item, in ascending order.
// Returns nil if item has no outgoing rules.
func (s *Set) Successors(item Item) []Item {
	if s == nil || len(s.after[item]) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(s.after[item]))
}

// Rules returns every rule in the set sorted by (Before, After).
// The returned slice is a copy.
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, 0, s.count)
	for before, succ := range s.after {
		for after := range succ {
			out = append(out, Rule{Before: before, After: after})
		}
	}
	slices.SortFunc(out, compareRules)
	return out
}

// Applicable returns the rules whose endpoints both occur in seq, sorted
// by (Before, After). Rules touching absent items are inert and omitted.
func (s *Set) Applicable(seq Sequence) []Rule {
	if s.Len() == 0 || len(seq) < 2 {
		return nil
	}
	present := make(map[Item]struct{}, len(seq))
	for _, it := range seq {
		present[it] = struct{}{}
	}

	var out []Rule
	for before := range present {
		for after := range s.after[before] {
			if _, ok := present[after]; ok {
				out = append(out, Rule{Before: before, After: after})
			}
		}
	}
	slices.SortFunc(out, compareRules)
	return out
}

// Middle returns the element at index len(seq)/2. The second result is
// false for an empty sequence.
func Middle(seq Sequence) (Item, bool) {
	if len(seq) == 0 {
		return 0, false
	}
	return seq[len(seq)/2], true
}

// PosMap maps each item to its first index in seq.
func PosMap(seq Sequence) map[Item]int {
	m := make(map[Item]int, len(seq))
	for i, it := range seq {
		if _, seen := m[it]; !seen {
			m[it] = i
		}
	}
	return m
}

func compareRules(a, b Rule) int {
	if c := cmp.Compare(a.Before, b.Before); c != 0 {
		return c
	}
	return cmp.Compare(a.After, b.After)
}
