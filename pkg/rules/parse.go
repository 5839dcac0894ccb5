package rules

import (
	"strconv"
	"strings"

	"github.com/matzehuels/pageorder/pkg/errors"
)

// ParseRule parses the "<before>|<after>" form. Surrounding whitespace is
// ignored. Both items must be positive and distinct.
func ParseRule(s string) (Rule, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), "|")
	if !ok {
		return Rule{}, errors.New(errors.ErrCodeInvalidRule, "missing '|' separator in %q", s)
	}
	before, err := parseItem(left)
	if err != nil {
		return Rule{}, errors.Wrap(errors.ErrCodeInvalidRule, err, "bad rule %q", s)
	}
	after, err := parseItem(right)
	if err != nil {
		return Rule{}, errors.Wrap(errors.ErrCodeInvalidRule, err, "bad rule %q", s)
	}
	if before == after {
		return Rule{}, errors.New(errors.ErrCodeInvalidRule, "rule %q orders an item before itself", s)
	}
	return Rule{Before: before, After: after}, nil
}

// ParseSequence parses comma-separated items. Empty fields are rejected.
func ParseSequence(s string) (Sequence, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		it, err := parseItem(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSequence, err, "bad sequence %q", s)
		}
		seq = append(seq, it)
	}
	return seq, nil
}

func parseItem(s string) (Item, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if err := errors.ValidateItem(n); err != nil {
		return 0, err
	}
	return n, nil
}
