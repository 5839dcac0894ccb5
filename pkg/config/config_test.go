package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/pageorder/pkg/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Strategy != "topo" {
		t.Errorf("Strategy = %q, want %q", cfg.Strategy, "topo")
	}
	if !cfg.Cache {
		t.Error("Cache should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
strategy   = "swap"
workers    = 4
max_passes = 50
cache      = false
cache_ttl  = "36h"
verbose    = true
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Strategy != "swap" {
		t.Errorf("Strategy = %q, want swap", cfg.Strategy)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.MaxPasses != 50 {
		t.Errorf("MaxPasses = %d, want 50", cfg.MaxPasses)
	}
	if cfg.Cache {
		t.Error("Cache = true, want false")
	}
	if cfg.CacheTTL.Duration != 36*time.Hour {
		t.Errorf("CacheTTL = %v, want 36h", cfg.CacheTTL)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `workers = 2`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Strategy != "topo" || !cfg.Cache {
		t.Errorf("LoadFile() = %+v, want defaults for unset keys", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"bad toml", `strategy = `, errors.ErrCodeInvalidConfig},
		{"unknown key", `stratgy = "swap"`, errors.ErrCodeInvalidConfig},
		{"bad strategy", `strategy = "bubble"`, errors.ErrCodeInvalidStrategy},
		{"negative workers", `workers = -1`, errors.ErrCodeInvalidConfig},
		{"bad duration", `cache_ttl = "soon"`, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := LoadFile(path)
			if !errors.Is(err, tt.code) {
				t.Errorf("LoadFile() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoad_Explicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoad_Search(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	// No file: defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}

	dir := filepath.Join(xdg, "pageorder")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, `strategy = "swap"`)

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Strategy != "swap" {
		t.Errorf("Strategy = %q, want swap from XDG config", cfg.Strategy)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/u")

	paths := SearchPaths()
	if len(paths) != 2 {
		t.Fatalf("SearchPaths() = %v, want 2 entries", paths)
	}
	if paths[0] != filepath.Join("/xdg", "pageorder", FileName) {
		t.Errorf("paths[0] = %q", paths[0])
	}
	if paths[1] != filepath.Join("/home/u", ".config", "pageorder", FileName) {
		t.Errorf("paths[1] = %q", paths[1])
	}
}
