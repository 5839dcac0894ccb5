package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/dag/transform"
	"github.com/matzehuels/pageorder/pkg/errors"
	pkgio "github.com/matzehuels/pageorder/pkg/io"
	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/render/nodelink"
)

// graphCommand creates the graph command, which renders the precedence
// graph of one sequence.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		index    int
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph <input>",
		Short: "Render the precedence graph of one sequence",
		Long: `Graph builds the precedence graph of the sequence at --index (0-based):
one node per item and one arrow per rule that applies to the sequence.
Redundant arrows implied by others are dropped, rules the sequence breaks
are drawn in red, and rules that close a cycle are drawn dashed.

The output format follows the extension of --output: .svg renders with
Graphviz, .json writes nodes and edges, and .dot or no --output writes DOT.`,
		Example: `  pageorder graph input.txt --index 3
  pageorder graph input.txt --index 3 -o seq3.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			in, err := loadInput(ctx, args[0])
			if err != nil {
				return err
			}
			if index < 0 || index >= len(in.Sequences) {
				return errors.New(errors.ErrCodeInvalidInput, "index %d out of range: input has %d sequences", index, len(in.Sequences))
			}
			seq := in.Sequences[index]
			if err := order.Validate(seq); err != nil {
				return err
			}

			g := dag.FromRules(in.Rules, seq)
			res := transform.Normalize(g)
			if len(res.BrokenEdges) > 0 {
				logger.Warn("rules contain a cycle", "index", index, "dashed_edges", len(res.BrokenEdges))
			}
			logger.Debug("built precedence graph",
				"nodes", g.NodeCount(),
				"edges", g.EdgeCount(),
				"transitive_removed", res.TransitiveEdgesRemoved,
				"rows", res.MaxRow+1)

			opts := nodelink.Options{
				Detailed:   detailed,
				Violations: order.Violations(seq, in.Rules),
				Broken:     res.BrokenEdges,
			}

			var data []byte
			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case "", ".dot", ".gv":
				data = []byte(nodelink.ToDOT(g, opts))
			case ".svg":
				spin := newSpinnerWithContext(ctx, "Rendering SVG...")
				spin.Start()
				data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(g, opts))
				spin.Stop()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
				}
			case ".json":
				var buf bytes.Buffer
				if err := pkgio.WriteGraphJSON(g, &buf); err != nil {
					return err
				}
				data = buf.Bytes()
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported output extension %q (want .dot, .svg or .json)", ext)
			}

			if output == "" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered sequence #%d (%d items, %d rules)", index, g.NodeCount(), g.EdgeCount())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "0-based index of the sequence to render")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .svg or .json); DOT to stdout when empty")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show input position and row in node labels")

	return cmd
}
