package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/schmitthub/mcruntime/internal/versions"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve the catalog if needed and write launch profiles",
		RunE:  runGenerate,
	}

	cmd.Flags().StringVarP(&rootOpts.Output, "output", "o", "", "Analysis JSON to reuse or write (default ./minecraft_versions.json)")
	cmd.Flags().BoolVar(&rootOpts.Refresh, "refresh", false, "Resolve the catalog even when a saved analysis exists")
	addProfileFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts, err := mergedOptions(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd, opts)
	log := klog.FromContext(ctx)

	var analysis versions.Analysis
	haveAnalysis := false

	// Reuse a saved analysis unless a refresh was requested.
	if !opts.Refresh {
		if _, err := os.Stat(opts.Output); err == nil {
			analysis, err = versions.ReadAnalysis(opts.Output)
			if err != nil {
				return err
			}
			haveAnalysis = true
			log.V(1).Info("reusing saved analysis", "path", opts.Output)
		}
	}

	if !haveAnalysis {
		analysis, err = analyzeCatalog(ctx, opts)
		if err != nil {
			return err
		}

		if err := confirmWrite(cmd, opts.DangerousInline, opts.Output); err != nil {
			return err
		}
		if err := versions.WriteAnalysis(opts.Output, analysis); err != nil {
			return err
		}
	}

	return renderProfiles(cmd, opts, analysis, log)
}
