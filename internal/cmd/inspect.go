package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/mcruntime/internal/versions"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <version-id>...",
		Short: "Explain the runtime requirement of individual version identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd, opts)

			resolver, err := newResolver(ctx, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, id := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}

				_, rule := resolver.JavaVersionFor(id)
				req := resolver.Resolve(versions.VersionDescriptor{ID: id, Kind: "unknown"})

				parsed := "none"
				if p, ok := versions.ParseVersion(id); ok {
					parsed = p.String()
				}
				era := string(rule)
				if rule == versions.RuleNone {
					era = "none"
				}

				fmt.Fprintf(out, "%s\n", id)
				fmt.Fprintf(out, "  java:       %d\n", req.JavaVersion)
				fmt.Fprintf(out, "  x86_64:     %t\n", req.NeedsX86_64)
				fmt.Fprintf(out, "  parsed:     %s\n", parsed)
				fmt.Fprintf(out, "  era rule:   %s\n", era)
				fmt.Fprintf(out, "  historical: %t\n", versions.IsHistorical(id))
				fmt.Fprintln(out, "  flags:")
				for _, flag := range req.JVMFlags {
					fmt.Fprintf(out, "    %s\n", flag)
				}
			}
			return nil
		},
	}

	return cmd
}
