package cmd

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/schmitthub/mcruntime/internal/catalog"
	"github.com/schmitthub/mcruntime/internal/versions"
)

// commandContext returns the command's context carrying a klog logger whose
// verbosity follows --debug.
func commandContext(cmd *cobra.Command, opts runtimeOptions) context.Context {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	verbosity := "0"
	if opts.Debug {
		verbosity = "2"
	}
	_ = fs.Set("v", verbosity)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return klog.NewContext(ctx, klog.Background().WithName("mcruntime"))
}

func newResolver(ctx context.Context, opts runtimeOptions) (*versions.Resolver, error) {
	return versions.NewResolver(
		versions.WithSnapshotYearThreshold(opts.SnapshotYearThreshold),
		versions.WithLogger(klog.FromContext(ctx).WithName("resolver")),
	)
}

func loadManifest(ctx context.Context, opts runtimeOptions) (catalog.Manifest, error) {
	if opts.CatalogFile != "" {
		klog.FromContext(ctx).V(1).Info("loading version manifest from file", "path", opts.CatalogFile)
		return catalog.Load(opts.CatalogFile)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	return catalog.Fetch(ctx, catalog.FetchOptions{
		URL:       opts.ManifestURL,
		Client:    &http.Client{Timeout: opts.Timeout},
		UserAgent: "mcruntime",
	})
}

// analyzeCatalog loads the manifest and resolves every version in it.
func analyzeCatalog(ctx context.Context, opts runtimeOptions) (versions.Analysis, error) {
	resolver, err := newResolver(ctx, opts)
	if err != nil {
		return versions.Analysis{}, err
	}

	manifest, err := loadManifest(ctx, opts)
	if err != nil {
		return versions.Analysis{}, err
	}

	analysis := resolver.Analyze(manifest.Latest, manifest.Versions, time.Now())
	klog.FromContext(ctx).Info("resolved version catalog", "versions", analysis.TotalVersions, "latestRelease", analysis.Latest.Release)
	return analysis, nil
}

// analysisFrom reads a saved analysis when path is set and resolves the
// catalog live otherwise.
func analysisFrom(ctx context.Context, opts runtimeOptions, path string) (versions.Analysis, error) {
	if path != "" {
		return versions.ReadAnalysis(path)
	}
	return analyzeCatalog(ctx, opts)
}
