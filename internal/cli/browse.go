package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive view of a run.
func (c *CLI) browseCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "browse <input>",
		Short: "Browse sequences and their corrections interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := c.pipelineOptions(cmd, &flags)
			sum, err := c.runPipeline(ctx, args[0], opts, flags.noCache)
			if err != nil {
				return err
			}
			if len(sum.Results) == 0 {
				printInfo("No sequences in input")
				return nil
			}

			p := tea.NewProgram(NewBrowseModel(sum), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}

	addRunFlags(cmd, &flags)

	return cmd
}
