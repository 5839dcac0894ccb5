package cli

import (
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/pageorder/pkg/io"
	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// fixCommand creates the fix command, which prints corrected sequences in
// the input format.
func (c *CLI) fixCommand() *cobra.Command {
	var (
		flags     runFlags
		output    string
		all       bool
		withRules bool
	)

	cmd := &cobra.Command{
		Use:   "fix <input>",
		Short: "Print corrected versions of unordered sequences",
		Long: `Fix repairs every sequence that violates a rule and prints the result,
one comma-separated sequence per line.

With --all, already ordered sequences are printed too, so the output lists
every valid sequence of the input in order. With --rules, the rules are
written first and the output is itself a valid input file.`,
		Example: `  pageorder fix input.txt
  pageorder fix input.txt --all --rules -o fixed.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			in, err := loadInput(ctx, args[0])
			if err != nil {
				return err
			}

			opts := c.pipelineOptions(cmd, &flags)
			sum, err := c.resolve(ctx, in, opts, flags.noCache)
			if err != nil {
				return err
			}

			var seqs []rules.Sequence
			for _, res := range sum.Results {
				switch {
				case res.Failed():
					logger.Warn("cannot fix sequence", "index", res.Index, "code", res.Code, "error", res.Error)
				case res.Status == order.StatusCorrected || all:
					seqs = append(seqs, res.Output)
				}
			}

			var rs *rules.Set
			if withRules {
				rs = in.Rules
			}

			if output == "" {
				return pkgio.WriteText(os.Stdout, rs, seqs)
			}
			if err := pkgio.ExportText(output, rs, seqs); err != nil {
				return err
			}
			printSuccess("Wrote %d sequences", len(seqs))
			printFile(output)
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&all, "all", false, "include sequences that were already ordered")
	cmd.Flags().BoolVar(&withRules, "rules", false, "write the rules ahead of the sequences")

	return cmd
}
