package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pageorder/pkg/dag/perm"
	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// checkCommand creates the check command, which lists each sequence with
// the rules it breaks. Nothing is corrected.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		onlyViolated bool
		strict       bool
		count        bool
	)

	cmd := &cobra.Command{
		Use:   "check <input>",
		Short: "Show which sequences violate which rules",
		Example: `  pageorder check input.txt
  pageorder check input.txt --violated --strict
  pageorder check input.txt --count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var ordered, violated, invalid int
			for i, seq := range in.Sequences {
				state, broken, err := classify(seq, in.Rules)
				switch state {
				case checkInvalid:
					invalid++
					printSequence(i, seq, state)
					printDetail("%s", errors.UserMessage(err))
					continue
				case checkOrdered:
					ordered++
					if onlyViolated {
						continue
					}
					printSequence(i, seq, state)
				case checkViolating:
					violated++
					printSequence(i, seq, state)
					printDetail("breaks %s", joinRules(broken))
				}
				if count {
					printOrderingCount(seq, in.Rules)
				}
			}

			printNewline()
			printInfo("%d ordered, %d violating, %d invalid", ordered, violated, invalid)

			if strict && violated+invalid > 0 {
				return errors.New(errors.ErrCodeInvalidSequence, "%d of %d sequences are not ordered", violated+invalid, len(in.Sequences))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyViolated, "violated", false, "list only sequences that break a rule")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any sequence is not ordered")
	cmd.Flags().BoolVar(&count, "count", false, fmt.Sprintf("count the valid orderings of sequences up to %d items", perm.MaxItems))

	return cmd
}

// checkState is the outcome of checking one sequence without correcting
// it.
type checkState int

const (
	checkOrdered checkState = iota
	checkViolating
	checkInvalid
)

// icon returns the listing icon. Violating sequences can be repaired, so
// they get a warning rather than the error icon of invalid ones.
func (s checkState) icon() string {
	switch s {
	case checkOrdered:
		return statusIcon(order.StatusOrdered)
	case checkViolating:
		return styleIconWarning.Render(iconWarning)
	default:
		return statusIcon(order.StatusInvalid)
	}
}

// classify checks seq against rs. The rules it breaks are returned for
// violating sequences, the validation error for invalid ones.
func classify(seq rules.Sequence, rs *rules.Set) (checkState, []rules.Rule, error) {
	if err := order.Validate(seq); err != nil {
		return checkInvalid, nil, err
	}
	if broken := order.Violations(seq, rs); len(broken) > 0 {
		return checkViolating, broken, nil
	}
	return checkOrdered, nil, nil
}

// printSequence prints one numbered sequence with its state icon.
func printSequence(index int, seq rules.Sequence, state checkState) {
	printLine("%s %s %s", state.icon(), StyleDim.Render(padIndex(index)), StyleValue.Render(seq.String()))
}

// printOrderingCount prints how many permutations of seq satisfy rs, for
// sequences short enough to enumerate.
func printOrderingCount(seq rules.Sequence, rs *rules.Set) {
	if len(seq) > perm.MaxItems {
		printDetail("too long to count orderings")
		return
	}
	n, err := perm.Count(seq, rs)
	if err != nil {
		printDetail("%s", errors.UserMessage(err))
		return
	}
	printDetail("%d valid orderings", n)
}

func joinRules(rs []rules.Rule) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}
