package harness

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/mcruntime/internal/cmd"
	"github.com/schmitthub/mcruntime/internal/testenv"
)

// Harness provides an isolated filesystem environment for integration tests
// and runs the CLI in-process.
type Harness struct {
	T *testing.T
}

// RunResult holds the outcome of a CLI command execution.
type RunResult struct {
	ExitCode int
	Err      error
	Stdout   string
	Stderr   string
}

// SetupResult holds the resolved paths from NewIsolatedFS.
type SetupResult struct {
	BaseDir     string
	ProjectDir  string
	CacheDir    string
	ProfilesDir string
	CatalogFile string
}

// FSOptions configures NewIsolatedFS.
type FSOptions struct {
	ProjectDir string // subdirectory name under base (default: "testproject")
	Catalog    string // manifest JSON seeded into SetupResult.CatalogFile
}

// NewIsolatedFS creates an isolated test environment.
//
// Delegates directory setup to testenv.New, then adds a project directory
// and chdirs into it (restored on cleanup) so default output paths land in
// the temp tree.
func (h *Harness) NewIsolatedFS(opts *FSOptions) *SetupResult {
	h.T.Helper()

	if opts == nil {
		opts = &FSOptions{}
	}
	if opts.ProjectDir == "" {
		opts.ProjectDir = "testproject"
	}

	var envOpts []testenv.Option
	if opts.Catalog != "" {
		envOpts = append(envOpts, testenv.WithCatalog(opts.Catalog))
	}
	env := testenv.New(h.T, envOpts...)

	projectDir := filepath.Join(env.Dirs.Base, opts.ProjectDir)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		h.T.Fatalf("harness: creating project dir %s: %v", projectDir, err)
	}

	prevDir, err := os.Getwd()
	if err != nil {
		h.T.Fatalf("harness: getting cwd: %v", err)
	}
	if err := os.Chdir(projectDir); err != nil {
		h.T.Fatalf("harness: chdir to project dir: %v", err)
	}
	h.T.Cleanup(func() {
		_ = os.Chdir(prevDir)
	})

	return &SetupResult{
		BaseDir:     env.Dirs.Base,
		ProjectDir:  projectDir,
		CacheDir:    env.Dirs.Cache,
		ProfilesDir: env.Dirs.Profiles,
		CatalogFile: env.CatalogFile,
	}
}

// Run executes a CLI command through the full cmd.NewRootCmd Cobra pipeline.
func (h *Harness) Run(args ...string) *RunResult {
	h.T.Helper()

	rootCmd := cmd.NewRootCmd("test", "test")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	exitCode := 0
	if err != nil {
		exitCode = 1
	}

	return &RunResult{ExitCode: exitCode, Err: err, Stdout: stdout.String(), Stderr: stderr.String()}
}
