package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/mcruntime/internal/versions"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve runtime requirements for the whole catalog and write the analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd, opts)

			analysis, err := analyzeCatalog(ctx, opts)
			if err != nil {
				return err
			}

			if err := confirmWrite(cmd, opts.DangerousInline, opts.Output); err != nil {
				return err
			}

			if err := versions.WriteAnalysis(opts.Output, analysis); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Resolved %d versions (latest release %s, snapshot %s)\nWrote analysis: %s\n",
				analysis.TotalVersions, analysis.Latest.Release, analysis.Latest.Snapshot, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rootOpts.Output, "output", "o", "", "Path to write the analysis JSON (default ./minecraft_versions.json)")

	return cmd
}
