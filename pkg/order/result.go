package order

import (
	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// Status tags the outcome of resolving one sequence.
type Status int

const (
	// StatusOrdered means the sequence already satisfied every rule.
	StatusOrdered Status = iota
	// StatusCorrected means the sequence was repaired.
	StatusCorrected
	// StatusInconsistent means the rules admit no ordering of the sequence.
	StatusInconsistent
	// StatusInvalid means the sequence was empty or repeated an item.
	StatusInvalid
)

var statusNames = [...]string{
	StatusOrdered:      "ordered",
	StatusCorrected:    "corrected",
	StatusInconsistent: "inconsistent",
	StatusInvalid:      "invalid",
}

// String returns the lowercase status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler so statuses serialize by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a status name written by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown status %q", b)
}

// Result is the outcome of [Corrector.Resolve].
type Result struct {
	// Sequence is the ordered sequence: the input itself for
	// StatusOrdered, the repaired permutation for StatusCorrected, and nil
	// otherwise.
	Sequence rules.Sequence

	Status Status

	// Violations lists the rules the input broke. Empty for StatusOrdered.
	Violations []rules.Rule

	// Err is set for StatusInconsistent and StatusInvalid.
	Err error
}

// OK reports whether Sequence holds an ordered sequence.
func (r Result) OK() bool { return r.Status == StatusOrdered || r.Status == StatusCorrected }

// Resolve checks seq and corrects it if needed. Failures are reported in
// the Result rather than returned, so one bad sequence never stops a batch.
func (c *Corrector) Resolve(seq rules.Sequence, rs *rules.Set) Result {
	if err := Validate(seq); err != nil {
		return Result{Status: StatusInvalid, Err: err}
	}
	if IsOrdered(seq, rs) {
		return Result{Sequence: seq.Clone(), Status: StatusOrdered}
	}

	res := Result{Violations: Violations(seq, rs)}
	fixed, err := c.MakeOrdered(seq, rs)
	switch {
	case err == nil:
		res.Sequence, res.Status = fixed, StatusCorrected
	case errors.Is(err, errors.ErrCodeInconsistentRuleSet):
		res.Status, res.Err = StatusInconsistent, err
	default:
		res.Status, res.Err = StatusInvalid, err
	}
	return res
}
