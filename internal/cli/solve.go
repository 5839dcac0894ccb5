package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pageorder/pkg/pipeline"
)

// solveCommand creates the solve command, which prints both middle sums.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags  runFlags
		format string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Sum the middle items of ordered and corrected sequences",
		Long: `Solve checks every sequence of the input against the rules.

Sequences that already respect every applicable rule contribute their middle
item to the ordered sum. The others are repaired and contribute the middle
item of the repaired sequence to the corrected sum.`,
		Example: `  pageorder solve input.txt
  pageorder solve input.txt --strategy swap --workers 1
  pageorder solve input.txt --format json > report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}

			opts := c.pipelineOptions(cmd, &flags)
			sum, err := c.runPipeline(cmd.Context(), args[0], opts, flags.noCache)
			if err != nil {
				return err
			}

			switch {
			case format == pipeline.FormatJSON:
				return pipeline.WriteReport(os.Stdout, sum)
			case quiet:
				return pipeline.WriteSums(os.Stdout, sum)
			}
			printSummary(sum)
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "output format: text or json")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the two sums, one per line")

	return cmd
}

// printSummary prints the sums and counters of a run.
func printSummary(sum *pipeline.Summary) {
	printKeyValue("Ordered", StyleNumber.Render(strconv.Itoa(sum.OrderedMiddleSum)))
	printKeyValue("Corrected", StyleNumber.Render(strconv.Itoa(sum.CorrectedMiddleSum)))
	printStats(sum.Stats, sum.Cached)

	if sum.Stats.Failed > 0 {
		printWarning("%d sequences could not be corrected", sum.Stats.Failed)
		printNextStep("Inspect them with", fmt.Sprintf("%s check <input>", appName))
	}
	if n := len(sum.Warnings); n > 0 {
		printWarning("%d input lines were skipped", n)
	}
}
