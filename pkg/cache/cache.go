// Package cache stores computed run summaries so that re-solving an
// unchanged input with unchanged options skips the work.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, used by the CLI
//     (~/.cache/pageorder by default)
//   - [NullCache]: stores nothing; selected by --no-cache
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the input content
// together with every option that can change the result, so a cached
// summary is only reused when it would be recomputed identically.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get returns the value for key. The bool is false on a miss; an
	// expired or unreadable entry counts as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long summaries stay cached when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// SummaryKeyOpts lists the options that affect a run summary.
type SummaryKeyOpts struct {
	Strategy  string `json:"strategy"`
	MaxPasses int    `json:"max_passes"`
}

// Keyer builds cache keys.
type Keyer interface {
	// SummaryKey returns the key for the summary of an input whose content
	// hashes to inputHash.
	SummaryKey(inputHash string, opts SummaryKeyOpts) string
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SummaryKey returns "summary:<sha256 of hash and options>".
func (DefaultKeyer) SummaryKey(inputHash string, opts SummaryKeyOpts) string {
	return hashKey("summary", inputHash, opts)
}
