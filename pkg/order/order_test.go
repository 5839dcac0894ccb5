package order

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// exampleRules are the precedence rules of the worked example.
var exampleRules = rules.New([]rules.Rule{
	{Before: 47, After: 53}, {Before: 97, After: 13}, {Before: 97, After: 61}, {Before: 97, After: 47}, {Before: 75, After: 29}, {Before: 61, After: 13}, {Before: 75, After: 53},
	{Before: 29, After: 13}, {Before: 97, After: 29}, {Before: 53, After: 29}, {Before: 61, After: 53}, {Before: 97, After: 53}, {Before: 61, After: 29}, {Before: 47, After: 13},
	{Before: 75, After: 47}, {Before: 97, After: 75}, {Before: 47, After: 61}, {Before: 75, After: 61}, {Before: 47, After: 29}, {Before: 75, After: 13}, {Before: 53, After: 13},
})

// reducedRules is the 17-rule subset that still orders the example.
var reducedRules = rules.New([]rules.Rule{
	{Before: 47, After: 53}, {Before: 97, After: 13}, {Before: 97, After: 61}, {Before: 97, After: 47}, {Before: 75, After: 29}, {Before: 61, After: 13}, {Before: 75, After: 53},
	{Before: 29, After: 13}, {Before: 97, After: 53}, {Before: 61, After: 53}, {Before: 75, After: 47}, {Before: 97, After: 75}, {Before: 47, After: 61}, {Before: 75, After: 61},
	{Before: 47, After: 29}, {Before: 75, After: 13}, {Before: 53, After: 13},
})

var exampleSequences = []rules.Sequence{
	{75, 47, 61, 53, 29},
	{97, 61, 53, 29, 13},
	{75, 29, 13},
	{75, 97, 47, 61, 53},
	{61, 13, 29},
	{97, 13, 75, 29, 47},
}

var strategies = []Strategy{StrategyTopological, StrategySwap}

func TestIsOrdered(t *testing.T) {
	want := []bool{true, true, true, false, false, false}
	for _, rs := range []*rules.Set{exampleRules, reducedRules} {
		for i, seq := range exampleSequences {
			if got := IsOrdered(seq, rs); got != want[i] {
				t.Errorf("IsOrdered(%v) = %v, want %v", seq, got, want[i])
			}
		}
	}
}

func TestIsOrdered_Deterministic(t *testing.T) {
	seq := rules.Sequence{75, 97, 47, 61, 53}
	before := seq.Clone()
	first := IsOrdered(seq, exampleRules)
	second := IsOrdered(seq, exampleRules)

	if first != second {
		t.Errorf("IsOrdered() not deterministic: %v then %v", first, second)
	}
	if !slices.Equal(seq, before) {
		t.Errorf("IsOrdered() modified input: %v", seq)
	}
}

func TestIsOrdered_Vacuous(t *testing.T) {
	tests := []struct {
		name string
		seq  rules.Sequence
		rs   *rules.Set
	}{
		{"empty rule set", rules.Sequence{3, 2, 1}, rules.New(nil)},
		{"nil rule set", rules.Sequence{3, 2, 1}, nil},
		{"inert rules", rules.Sequence{1, 2}, rules.New([]rules.Rule{{Before: 2, After: 9}, {Before: 8, After: 1}})},
		{"empty sequence", nil, exampleRules},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsOrdered(tt.seq, tt.rs) {
				t.Errorf("IsOrdered(%v) = false, want true", tt.seq)
			}
		})
	}
}

func TestViolations(t *testing.T) {
	got := Violations(rules.Sequence{75, 97, 47, 61, 53}, exampleRules)
	want := []rules.Rule{{Before: 97, After: 75}}
	if !slices.Equal(got, want) {
		t.Errorf("Violations() = %v, want %v", got, want)
	}

	if got := Violations(rules.Sequence{75, 47, 61, 53, 29}, exampleRules); got != nil {
		t.Errorf("Violations() on ordered sequence = %v, want nil", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		seq  rules.Sequence
		code errors.Code
	}{
		{"valid", rules.Sequence{1, 2, 3}, ""},
		{"single", rules.Sequence{1}, ""},
		{"empty", nil, errors.ErrCodeInvalidSequence},
		{"duplicate", rules.Sequence{1, 2, 1}, errors.ErrCodeDuplicateItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetCode(Validate(tt.seq)); got != tt.code {
				t.Errorf("Validate(%v) code = %q, want %q", tt.seq, got, tt.code)
			}
		})
	}
}

func TestMakeOrdered_Example(t *testing.T) {
	want := map[int]rules.Sequence{
		3: {97, 75, 47, 61, 53},
		4: {61, 29, 13},
		5: {97, 75, 47, 29, 13},
	}

	for _, s := range strategies {
		c := &Corrector{Strategy: s}
		for _, rs := range []*rules.Set{exampleRules, reducedRules} {
			for i, w := range want {
				got, err := c.MakeOrdered(exampleSequences[i], rs)
				if err != nil {
					t.Errorf("%s: MakeOrdered(%v) error: %v", s, exampleSequences[i], err)
					continue
				}
				if !slices.Equal(got, w) {
					t.Errorf("%s: MakeOrdered(%v) = %v, want %v", s, exampleSequences[i], got, w)
				}
			}
		}
	}
}

func TestMakeOrdered_Properties(t *testing.T) {
	// A partial order: several valid outputs exist for most inputs.
	rs := rules.New([]rules.Rule{
		{Before: 1, After: 5}, {Before: 2, After: 5}, {Before: 5, After: 9}, {Before: 3, After: 4}, {Before: 4, After: 8}, {Before: 2, After: 8}, {Before: 7, After: 1}, {Before: 6, After: 3},
	})
	inputs := []rules.Sequence{
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{5, 1, 2},
		{4, 3},
		{8, 2, 6, 4, 3},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{11, 9, 12, 1},
	}

	for _, s := range strategies {
		c := &Corrector{Strategy: s}
		for _, in := range inputs {
			orig := in.Clone()
			got, err := c.MakeOrdered(in, rs)
			if err != nil {
				t.Errorf("%s: MakeOrdered(%v) error: %v", s, in, err)
				continue
			}
			if !IsOrdered(got, rs) {
				t.Errorf("%s: MakeOrdered(%v) = %v, not ordered", s, in, got)
			}
			if !isPermutation(got, in) {
				t.Errorf("%s: MakeOrdered(%v) = %v, not a permutation", s, in, got)
			}
			if !slices.Equal(in, orig) {
				t.Errorf("%s: MakeOrdered modified input to %v", s, in)
			}
		}
	}
}

func TestMakeOrdered_NoOpOnOrdered(t *testing.T) {
	for _, s := range strategies {
		c := &Corrector{Strategy: s}
		for _, seq := range exampleSequences[:3] {
			got, err := c.MakeOrdered(seq, exampleRules)
			if err != nil {
				t.Fatalf("%s: MakeOrdered(%v) error: %v", s, seq, err)
			}
			if !slices.Equal(got, seq) {
				t.Errorf("%s: MakeOrdered(%v) = %v, want unchanged", s, seq, got)
			}
		}
	}
}

func TestMakeOrdered_StableTopological(t *testing.T) {
	// Only 3|1 constrains the sequence; everything else keeps its place.
	rs := rules.New([]rules.Rule{{Before: 3, After: 1}})
	got, err := MakeOrdered(rules.Sequence{4, 1, 5, 3, 2}, rs)
	if err != nil {
		t.Fatalf("MakeOrdered() error: %v", err)
	}
	if want := (rules.Sequence{4, 5, 3, 1, 2}); !slices.Equal(got, want) {
		t.Errorf("MakeOrdered() = %v, want %v", got, want)
	}
}

func TestMakeOrdered_Inconsistent(t *testing.T) {
	rs := rules.New([]rules.Rule{{Before: 1, After: 2}, {Before: 2, After: 3}, {Before: 3, After: 1}})

	for _, s := range strategies {
		c := &Corrector{Strategy: s}
		_, err := c.MakeOrdered(rules.Sequence{3, 2, 1}, rs)
		if !errors.Is(err, errors.ErrCodeInconsistentRuleSet) {
			t.Errorf("%s: MakeOrdered() error = %v, want %s", s, err, errors.ErrCodeInconsistentRuleSet)
		}
		if !stderrors.Is(err, dag.ErrGraphHasCycle) {
			t.Errorf("%s: MakeOrdered() error should wrap dag.ErrGraphHasCycle", s)
		}
	}
}

func TestMakeOrdered_SwapBudget(t *testing.T) {
	rs := rules.New([]rules.Rule{{Before: 1, After: 2}, {Before: 2, After: 1}})
	c := &Corrector{Strategy: StrategySwap, MaxPasses: 3}

	_, err := c.MakeOrdered(rules.Sequence{2, 1}, rs)
	if !errors.Is(err, errors.ErrCodeInconsistentRuleSet) {
		t.Errorf("MakeOrdered() error = %v, want %s", err, errors.ErrCodeInconsistentRuleSet)
	}
}

func TestMakeOrdered_Duplicates(t *testing.T) {
	_, err := MakeOrdered(rules.Sequence{75, 47, 75}, exampleRules)
	if !errors.Is(err, errors.ErrCodeDuplicateItem) {
		t.Errorf("MakeOrdered() error = %v, want %s", err, errors.ErrCodeDuplicateItem)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyTopological, false},
		{"topo", StrategyTopological, false},
		{"Topological", StrategyTopological, false},
		{" swap ", StrategySwap, false},
		{"bubble", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	cyclic := rules.New([]rules.Rule{{Before: 1, After: 2}, {Before: 2, After: 1}})

	tests := []struct {
		name   string
		seq    rules.Sequence
		rs     *rules.Set
		status Status
		middle rules.Item
	}{
		{"ordered", rules.Sequence{75, 47, 61, 53, 29}, exampleRules, StatusOrdered, 61},
		{"corrected", rules.Sequence{75, 97, 47, 61, 53}, exampleRules, StatusCorrected, 47},
		{"inconsistent", rules.Sequence{1, 2}, cyclic, StatusInconsistent, 0},
		{"invalid", rules.Sequence{5, 5}, exampleRules, StatusInvalid, 0},
	}

	c := &Corrector{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Resolve(tt.seq, tt.rs)
			if res.Status != tt.status {
				t.Fatalf("Resolve() status = %v, want %v (err: %v)", res.Status, tt.status, res.Err)
			}
			if res.OK() != (res.Err == nil) {
				t.Errorf("Resolve() OK() = %v with err %v", res.OK(), res.Err)
			}
			if !res.OK() {
				return
			}
			if m, _ := rules.Middle(res.Sequence); m != tt.middle {
				t.Errorf("Resolve() middle = %d, want %d", m, tt.middle)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	if got := StatusCorrected.String(); got != "corrected" {
		t.Errorf("String() = %q, want %q", got, "corrected")
	}
	if got := Status(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}

func TestStatus_TextRoundTrip(t *testing.T) {
	for _, st := range []Status{StatusOrdered, StatusCorrected, StatusInconsistent, StatusInvalid} {
		b, _ := st.MarshalText()
		var got Status
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", b, err)
		}
		if got != st {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, got, st)
		}
	}

	var s Status
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
}

func isPermutation(a, b rules.Sequence) bool {
	x, y := a.Clone(), b.Clone()
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
