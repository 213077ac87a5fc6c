package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/schmitthub/mcruntime/internal/render"
	"github.com/schmitthub/mcruntime/internal/versions"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write per-version launch profiles from a saved analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd, opts)

			path := opts.AnalysisFile
			if path == "" {
				path = opts.Output
			}

			analysis, err := versions.ReadAnalysis(path)
			if err != nil {
				return err
			}

			return renderProfiles(cmd, opts, analysis, klog.FromContext(ctx))
		},
	}

	cmd.Flags().StringVar(&rootOpts.AnalysisFile, "analysis", "", "Saved analysis to render (default ./minecraft_versions.json)")
	addProfileFlags(cmd)

	return cmd
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rootOpts.ProfilesDir, "profiles-dir", "", "Directory for per-version launch profiles (default ./profiles)")
	cmd.Flags().StringSliceVar(&rootOpts.Versions, "versions", nil, "Only render these version ids")
	cmd.Flags().BoolVar(&rootOpts.Cleanup, "cleanup", false, "Remove profile directories outside the selection")
}

func renderProfiles(cmd *cobra.Command, opts runtimeOptions, analysis versions.Analysis, log klog.Logger) error {
	written, err := render.Profiles(render.Options{
		Analysis:  analysis,
		OutputDir: opts.ProfilesDir,
		Cleanup:   opts.Cleanup,
		Requested: opts.Versions,
		Logger:    log,
		ConfirmWrite: func(path string) error {
			return confirmWrite(cmd, opts.DangerousInline, path)
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d launch profiles to %s\n", len(written), opts.ProfilesDir)
	return nil
}
