// Package testenv provides isolated test environments with temp directories
// and environment variable overrides. It creates cache, profiles and data
// directories and points MCRUNTIME_CACHE_DIR at the cache (restored on test
// cleanup), so update checks never touch the real user cache.
//
// Usage:
//
//	env := testenv.New(t)
//	env.Dirs.Cache    // MCRUNTIME_CACHE_DIR
//	env.Dirs.Profiles // target for `mcruntime render`
//
//	env := testenv.New(t, testenv.WithConfig(yamlString), testenv.WithCatalog(manifestJSON))
//	env.Config      // *config.FileConfig
//	env.CatalogFile // path to the seeded manifest
package testenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/mcruntime/internal/config"
)

// IsolatedDirs holds the directory paths created for the test.
type IsolatedDirs struct {
	Base     string // temp root (parent of all dirs)
	Cache    string
	Profiles string
	Data     string
}

// Env is a unified test environment with isolated directories and optional
// seeded config and catalog.
type Env struct {
	Dirs        IsolatedDirs
	Config      *config.FileConfig
	ConfigFile  string
	CatalogFile string
}

// Option configures an Env during construction.
type Option func(t *testing.T, e *Env)

// WithConfig parses yaml into Env.Config and writes it to Env.ConfigFile.
func WithConfig(yaml string) Option {
	return func(t *testing.T, e *Env) {
		t.Helper()
		cfg, err := config.FromString(yaml)
		if err != nil {
			t.Fatalf("testenv: creating config: %v", err)
		}
		e.Config = &cfg
		e.ConfigFile = writeFile(t, filepath.Join(e.Dirs.Data, "mcruntime.yaml"), yaml)
	}
}

// WithCatalog writes a version manifest document to Env.CatalogFile.
func WithCatalog(manifestJSON string) Option {
	return func(t *testing.T, e *Env) {
		t.Helper()
		e.CatalogFile = writeFile(t, filepath.Join(e.Dirs.Data, "version_manifest.json"), manifestJSON)
	}
}

// New creates an isolated test environment. It:
//  1. Creates a temp directory with cache, profiles and data subdirectories
//  2. Sets MCRUNTIME_CACHE_DIR (restored on test cleanup)
//  3. Applies any options (e.g. WithConfig)
func New(t *testing.T, opts ...Option) *Env {
	t.Helper()

	// Resolve symlinks on the base temp dir so paths match os.Getwd()
	// after chdir (macOS: /var → /private/var).
	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("testenv: resolving temp dir symlinks: %v", err)
	}

	dirs := IsolatedDirs{
		Base:     base,
		Cache:    filepath.Join(base, "cache"),
		Profiles: filepath.Join(base, "profiles"),
		Data:     filepath.Join(base, "data"),
	}

	for _, dir := range []string{dirs.Cache, dirs.Data} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("testenv: creating dir %s: %v", dir, err)
		}
	}

	t.Setenv("MCRUNTIME_CACHE_DIR", dirs.Cache)

	env := &Env{Dirs: dirs}

	for _, opt := range opts {
		opt(t, env)
	}

	return env
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testenv: writing %s: %v", path, err)
	}
	return path
}
