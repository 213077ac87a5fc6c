package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/schmitthub/mcruntime/internal/versions"
)

const (
	argsFileName    = "jvm.args"
	runtimeFileName = "runtime.yaml"
)

type Options struct {
	Analysis     versions.Analysis
	OutputDir    string
	Cleanup      bool
	Requested    []string
	Logger       klog.Logger
	ConfirmWrite func(path string) error
}

type runtimeProfile struct {
	ID          string               `yaml:"id"`
	Type        string               `yaml:"type"`
	JavaVersion versions.JavaVersion `yaml:"java_version"`
	NeedsX86_64 bool                 `yaml:"needs_x86_64"`
	ReleaseTime string               `yaml:"release_time"`
	JVMFlags    []string             `yaml:"jvm_flags"`
}

// Profiles writes one directory per selected version holding jvm.args (one
// flag per line, placeholders untouched) and runtime.yaml. It returns the
// identifiers that were written.
func Profiles(opts Options) ([]string, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	selected := selectVersions(opts.Analysis, opts.Requested)
	selectedSet := make(map[string]struct{}, len(selected))
	written := make([]string, 0, len(selected))

	for _, id := range selected {
		if !safePathElement(id) {
			opts.Logger.Info("skipping version with unsafe directory name", "id", id)
			continue
		}
		selectedSet[id] = struct{}{}
		info := opts.Analysis.Entries[id]

		target := filepath.Join(opts.OutputDir, id)
		if err := os.MkdirAll(target, 0o755); err != nil {
			return written, fmt.Errorf("create profile path %q: %w", target, err)
		}

		argsPath := filepath.Join(target, argsFileName)
		if err := writeFile(opts, argsPath, []byte(strings.Join(info.JVMFlags, "\n")+"\n")); err != nil {
			return written, err
		}

		profile, err := yaml.Marshal(runtimeProfile{
			ID:          id,
			Type:        info.Type,
			JavaVersion: info.JavaVersion,
			NeedsX86_64: info.NeedsX86_64,
			ReleaseTime: info.ReleaseTime,
			JVMFlags:    info.JVMFlags,
		})
		if err != nil {
			return written, fmt.Errorf("encode runtime profile %q: %w", id, err)
		}
		if err := writeFile(opts, filepath.Join(target, runtimeFileName), profile); err != nil {
			return written, err
		}

		written = append(written, id)
	}

	if opts.Cleanup {
		if err := cleanupObsolete(opts.OutputDir, selectedSet); err != nil {
			return written, err
		}
	}

	return written, nil
}

func writeFile(opts Options, path string, content []byte) error {
	if opts.ConfirmWrite != nil {
		if err := opts.ConfirmWrite(path); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// selectVersions keeps requested identifiers present in the analysis, in
// analysis order. An empty or fully unknown request selects everything.
func selectVersions(analysis versions.Analysis, requested []string) []string {
	if len(requested) == 0 {
		return append([]string(nil), analysis.Order...)
	}

	selectionSet := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if _, ok := analysis.Entries[id]; !ok {
			continue
		}
		selectionSet[id] = struct{}{}
	}

	if len(selectionSet) == 0 {
		return append([]string(nil), analysis.Order...)
	}

	ordered := make([]string, 0, len(selectionSet))
	for _, id := range analysis.Order {
		if _, ok := selectionSet[id]; ok {
			ordered = append(ordered, id)
		}
	}
	return ordered
}

func safePathElement(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && filepath.Base(id) == id
}

func cleanupObsolete(outputDir string, keep map[string]struct{}) error {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return fmt.Errorf("read output directory for cleanup: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, ok := keep[entry.Name()]; ok {
			continue
		}

		if err := os.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
			return fmt.Errorf("remove obsolete profile dir %q: %w", entry.Name(), err)
		}
	}

	return nil
}
