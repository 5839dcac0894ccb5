package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pageorder/pkg/cache"
	"github.com/matzehuels/pageorder/pkg/config"
	"github.com/matzehuels/pageorder/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pageorder"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config holds the file defaults, loaded before any command runs.
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache || !c.Config.Cache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pageorder/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// runFlags holds the flags shared by every command that runs the pipeline.
type runFlags struct {
	strategy  string
	workers   int
	maxPasses int
	noCache   bool
	refresh   bool
}

// addRunFlags registers the pipeline flags on cmd.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "correction strategy: topo or swap (default from config, else topo)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "sequences resolved in parallel (0 = number of CPUs)")
	cmd.Flags().IntVar(&f.maxPasses, "max-passes", 0, "pass budget for the swap strategy (0 = n²+1)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute and overwrite a cached result")
}

// pipelineOptions merges config file defaults with the flags that were set
// explicitly on cmd. Flags win.
func (c *CLI) pipelineOptions(cmd *cobra.Command, f *runFlags) pipeline.Options {
	opts := pipeline.Options{
		Strategy:  c.Config.Strategy,
		Workers:   c.Config.Workers,
		MaxPasses: c.Config.MaxPasses,
		CacheTTL:  c.Config.CacheTTL.Duration,
		Refresh:   f.refresh,
		Logger:    c.Logger,
	}
	if cmd.Flags().Changed("strategy") {
		opts.Strategy = f.strategy
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = f.workers
	}
	if cmd.Flags().Changed("max-passes") {
		opts.MaxPasses = f.maxPasses
	}
	return opts
}
