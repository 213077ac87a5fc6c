package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/mcruntime/internal/render"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print runtime requirements, newest version first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd, opts)

			analysis, err := analysisFrom(ctx, opts, opts.AnalysisFile)
			if err != nil {
				return err
			}

			return render.Report(cmd.OutOrStdout(), analysis, opts.Format, opts.ShowFlags)
		},
	}

	cmd.Flags().StringVar(&rootOpts.AnalysisFile, "analysis", "", "Read a saved analysis instead of resolving the catalog")
	cmd.Flags().StringVar(&rootOpts.Format, "format", render.FormatTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&rootOpts.ShowFlags, "flags", false, "Print each version's JVM flags in table output")

	return cmd
}
