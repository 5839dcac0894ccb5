// Package config loads user defaults for the pageorder CLI from a TOML
// file.
//
// A config file looks like:
//
//	strategy   = "swap"
//	workers    = 4
//	max_passes = 0
//	cache      = true
//	cache_ttl  = "24h"
//	verbose    = false
//
// Every key is optional. Unknown keys are rejected so that typos surface
// instead of being silently ignored. Command-line flags override file
// values.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pageorder/pkg/errors"
	"github.com/matzehuels/pageorder/pkg/order"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.toml"

// Config holds the user-configurable defaults.
type Config struct {
	Strategy  string   `toml:"strategy"`
	Workers   int      `toml:"workers"`
	MaxPasses int      `toml:"max_passes"`
	Cache     bool     `toml:"cache"`
	CacheTTL  Duration `toml:"cache_ttl"`
	Verbose   bool     `toml:"verbose"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

// Duration is a time.Duration that decodes from a TOML string like "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Strategy: string(order.DefaultStrategy),
		Cache:    true,
	}
}

// Validate checks value ranges and the strategy name.
func (c *Config) Validate() error {
	if _, err := order.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be >= 0, got %d", c.Workers)
	}
	if c.MaxPasses < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_passes must be >= 0, got %d", c.MaxPasses)
	}
	if c.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	return nil
}

// LoadFile reads the config at path on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Load resolves the config file and reads it.
//
// An explicit path must exist. Otherwise the first existing file of
// [SearchPaths] is used, and the defaults are returned when there is none.
func Load(explicit string) (Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return Default(), nil
}

// SearchPaths returns the candidate config locations in lookup order:
// $XDG_CONFIG_HOME/pageorder/config.toml, then
// ~/.config/pageorder/config.toml.
func SearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pageorder", FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "pageorder", FileName)
		if len(paths) == 0 || paths[0] != p {
			paths = append(paths, p)
		}
	}
	return paths
}
