package cli

import (
	"context"
	"fmt"

	pkgio "github.com/matzehuels/pageorder/pkg/io"
	"github.com/matzehuels/pageorder/pkg/pipeline"
)

// loadInput reads the input file and logs any skipped lines.
func loadInput(ctx context.Context, path string) (*pkgio.Input, error) {
	logger := loggerFromContext(ctx)

	in, err := pkgio.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range in.Warnings {
		logger.Warn("skipped input line", "line", w.Line, "reason", w.Reason)
	}
	logger.Debug("loaded input",
		"path", path,
		"rules", in.Rules.Len(),
		"sequences", len(in.Sequences))
	return in, nil
}

// runPipeline loads path and runs the pipeline with the merged options.
func (c *CLI) runPipeline(ctx context.Context, path string, opts pipeline.Options, noCache bool) (*pipeline.Summary, error) {
	in, err := loadInput(ctx, path)
	if err != nil {
		return nil, err
	}
	return c.resolve(ctx, in, opts, noCache)
}

// resolve runs the pipeline over in while a spinner counts the resolved
// sequences.
func (c *CLI) resolve(ctx context.Context, in *pkgio.Input, opts pipeline.Options, noCache bool) (*pipeline.Summary, error) {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spin := newCountingSpinner(ctx, "Resolving sequences", len(in.Sequences))
	restore := trackSequences(spin)
	spin.Start()
	sum, err := runner.Run(ctx, in, opts)
	spin.Stop()
	restore()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Resolved %d sequences", sum.Stats.Sequences))
	return sum, nil
}
