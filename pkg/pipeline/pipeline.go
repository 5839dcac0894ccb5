// Package pipeline runs the check → correct → sum pipeline over a batch of
// sequences.
//
// This package is the single place where an [io.Input] becomes a
// [Summary]: the CLI commands and tests all go through it, so every entry
// point resolves sequences, counts failures, and sums middle elements the
// same way.
//
// # Stages
//
// For each sequence of the input:
//
//  1. Check: test the sequence against the rules that apply to it
//  2. Correct: repair violating sequences with the configured strategy
//  3. Sum: add the middle element to the ordered or corrected total
//
// Sequences are independent, so the runner fans them out over a bounded
// number of goroutines. Results keep their input order regardless.
//
// # Usage
//
//	in, err := io.Load("input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(cache, nil, logger)
//	sum, err := runner.Run(ctx, in, pipeline.Options{Strategy: "topo"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum.OrderedMiddleSum, sum.CorrectedMiddleSum)
//
// A sequence that cannot be corrected (contradictory rules, duplicate
// items) is recorded as failed in its [SequenceResult]; it never aborts the
// run. Run only returns an error for invalid options or a cancelled
// context.
//
// [io.Input]: github.com/matzehuels/pageorder/pkg/io
package pipeline

import (
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pageorder/pkg/cache"
	"github.com/matzehuels/pageorder/pkg/errors"
	pkgio "github.com/matzehuels/pageorder/pkg/io"
	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/rules"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultStrategy is the correction strategy used when none is given.
	DefaultStrategy = string(order.DefaultStrategy)

	// MaxWorkers caps the worker count. Sequences are tiny; more goroutines
	// than this only add scheduling overhead.
	MaxWorkers = 256
)

// DefaultWorkers returns the worker count used when Options.Workers is 0.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Format constants for report output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Strategy names the correction strategy ("topo" or "swap").
	Strategy string `json:"strategy,omitempty"`

	// MaxPasses bounds the swap strategy. Zero uses the per-sequence
	// default of len(seq)² + 1.
	MaxPasses int `json:"max_passes,omitempty"`

	// Workers is the number of sequences resolved concurrently.
	// Zero means DefaultWorkers(); 1 runs sequentially.
	Workers int `json:"workers,omitempty"`

	// Refresh bypasses cached summaries and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// CacheTTL is how long the summary stays cached. Zero means
	// cache.DefaultTTL.
	CacheTTL time.Duration `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateFormat checks that a report format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	strategy, err := order.ParseStrategy(o.Strategy)
	if err != nil {
		return err
	}
	o.Strategy = string(strategy)

	if o.MaxPasses < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_passes must be >= 0, got %d", o.MaxPasses)
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be >= 0, got %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers()
	}
	if o.Workers > MaxWorkers {
		o.Workers = MaxWorkers
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = cache.DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Corrector returns the corrector described by the options.
func (o *Options) Corrector() *order.Corrector {
	return &order.Corrector{Strategy: order.Strategy(o.Strategy), MaxPasses: o.MaxPasses}
}

// SummaryKeyOpts returns cache key options for the run summary.
func (o *Options) SummaryKeyOpts() cache.SummaryKeyOpts {
	return cache.SummaryKeyOpts{Strategy: o.Strategy, MaxPasses: o.MaxPasses}
}

// =============================================================================
// Results
// =============================================================================

// SequenceResult is the outcome for one input sequence.
type SequenceResult struct {
	// Index is the position of the sequence in the input.
	Index int `json:"index"`

	Input  rules.Sequence `json:"input"`
	Output rules.Sequence `json:"output,omitempty"`
	Status order.Status   `json:"status"`

	// Middle is the middle element of Output. Zero for failed sequences.
	Middle rules.Item `json:"middle,omitempty"`

	// Displacement is the number of item pairs whose relative order the
	// correction reversed.
	Displacement int `json:"displacement,omitempty"`

	Violations []rules.Rule `json:"violations,omitempty"`

	// Code and Error describe the failure of a sequence that could not be
	// resolved.
	Code  errors.Code `json:"code,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Failed reports whether the sequence could not be resolved.
func (r SequenceResult) Failed() bool { return r.Error != "" }

// Summary is the outcome of a pipeline run.
type Summary struct {
	// RunID identifies this run. Cached summaries get a fresh ID.
	RunID string `json:"run_id"`

	// InputHash is the content hash of the canonicalized input.
	InputHash string `json:"input_hash"`

	Strategy string `json:"strategy"`

	// OrderedMiddleSum adds the middle elements of the sequences that
	// already satisfied every rule.
	OrderedMiddleSum int `json:"ordered_middle_sum"`

	// CorrectedMiddleSum adds the middle elements of the sequences that
	// were repaired.
	CorrectedMiddleSum int `json:"corrected_middle_sum"`

	Stats Stats `json:"stats"`

	Results  []SequenceResult      `json:"results"`
	Warnings []pkgio.ParseWarning `json:"warnings,omitempty"`

	// Cached is true when the summary was served from the cache.
	Cached bool `json:"cached"`
}

// Stats contains run counters and timing.
type Stats struct {
	Rules     int           `json:"rules"`
	Sequences int           `json:"sequences"`
	Ordered   int           `json:"ordered"`
	Corrected int           `json:"corrected"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration_ns"`
}
