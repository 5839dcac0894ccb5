package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pageorder/pkg/cache"
	"github.com/matzehuels/pageorder/pkg/dag"
	"github.com/matzehuels/pageorder/pkg/errors"
	pkgio "github.com/matzehuels/pageorder/pkg/io"
	"github.com/matzehuels/pageorder/pkg/observability"
	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run resolves every sequence of in and returns the summary.
//
// Parse warnings of in are copied to the summary but not logged; the
// caller that loaded the input reports them. Per-sequence failures are
// recorded in the summary. The returned error is
// non-nil only for invalid options or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, in *pkgio.Input, opts Options) (*Summary, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	start := time.Now()
	runID := uuid.NewString()
	hooks := observability.Pipeline()
	hooks.OnBatchStart(ctx, runID, len(in.Sequences))

	inputHash, err := hashInput(in)
	if err != nil {
		return nil, err
	}
	cacheKey := r.Keyer.SummaryKey(inputHash, opts.SummaryKeyOpts())

	if !opts.Refresh {
		if sum, ok := r.cached(ctx, cacheKey); ok {
			sum.RunID = runID
			sum.Warnings = in.Warnings
			sum.Cached = true
			logger.Debug("summary cache hit", "key", cacheKey)
			hooks.OnBatchComplete(ctx, runID, batchStats(sum), time.Since(start), nil)
			return sum, nil
		}
	}

	results, err := r.resolveAll(ctx, in, opts)
	if err != nil {
		hooks.OnBatchComplete(ctx, runID, observability.BatchStats{Sequences: len(in.Sequences)}, time.Since(start), err)
		return nil, err
	}

	sum := &Summary{
		RunID:     runID,
		InputHash: inputHash,
		Strategy:  opts.Strategy,
		Results:   results,
		Warnings:  in.Warnings,
		Stats: Stats{
			Rules:     in.Rules.Len(),
			Sequences: len(results),
		},
	}
	for _, res := range results {
		switch res.Status {
		case order.StatusOrdered:
			sum.Stats.Ordered++
			sum.OrderedMiddleSum += res.Middle
		case order.StatusCorrected:
			sum.Stats.Corrected++
			sum.CorrectedMiddleSum += res.Middle
		default:
			sum.Stats.Failed++
			logger.Warn("sequence not resolved",
				"index", res.Index,
				"code", res.Code,
				"error", res.Error)
		}
	}
	sum.Stats.Duration = time.Since(start)

	logger.Info("resolved sequences",
		"sequences", sum.Stats.Sequences,
		"ordered", sum.Stats.Ordered,
		"corrected", sum.Stats.Corrected,
		"failed", sum.Stats.Failed,
		"duration", sum.Stats.Duration)

	if data, err := json.Marshal(sum); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, opts.CacheTTL); err != nil {
			logger.Debug("summary not cached", "error", err)
		}
	}

	hooks.OnBatchComplete(ctx, runID, batchStats(sum), sum.Stats.Duration, nil)
	return sum, nil
}

// Resolve checks and, if needed, corrects a single sequence.
func Resolve(index int, seq rules.Sequence, rs *rules.Set, c *order.Corrector) SequenceResult {
	res := c.Resolve(seq, rs)
	out := SequenceResult{
		Index:      index,
		Input:      seq,
		Output:     res.Sequence,
		Status:     res.Status,
		Violations: res.Violations,
	}
	if res.Err != nil {
		out.Code = errors.GetCode(res.Err)
		out.Error = errors.UserMessage(res.Err)
		return out
	}
	out.Middle, _ = rules.Middle(res.Sequence)
	if res.Status == order.StatusCorrected {
		out.Displacement = dag.Displacement(seq, res.Sequence)
	}
	return out
}

// resolveAll resolves the sequences with at most opts.Workers goroutines.
// Results are stored by index so their order matches the input.
func (r *Runner) resolveAll(ctx context.Context, in *pkgio.Input, opts Options) ([]SequenceResult, error) {
	corrector := opts.Corrector()
	results := make([]SequenceResult, len(in.Sequences))
	hooks := observability.Pipeline()

	resolve := func(i int) {
		start := time.Now()
		res := Resolve(i, in.Sequences[i], in.Rules, corrector)
		results[i] = res

		var err error
		if res.Failed() {
			err = errors.New(res.Code, "%s", res.Error)
		}
		hooks.OnSequence(ctx, i, res.Status.String(), time.Since(start), err)
	}

	if opts.Workers <= 1 {
		for i := range in.Sequences {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			resolve(i)
		}
		return results, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i := range in.Sequences {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			resolve(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) cached(ctx context.Context, key string) (*Summary, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil, false
	}
	var sum Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		return nil, false
	}
	return &sum, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// hashInput hashes the canonical text form of in. Rule order and
// duplicate rules in the original file do not change the hash.
func hashInput(in *pkgio.Input) (string, error) {
	var buf bytes.Buffer
	if err := pkgio.WriteText(&buf, in.Rules, in.Sequences); err != nil {
		return "", fmt.Errorf("hash input: %w", err)
	}
	return cache.Hash(buf.Bytes()), nil
}

func batchStats(s *Summary) observability.BatchStats {
	return observability.BatchStats{
		Sequences: s.Stats.Sequences,
		Ordered:   s.Stats.Ordered,
		Corrected: s.Stats.Corrected,
		Failed:    s.Stats.Failed,
		Cached:    s.Cached,
	}
}
