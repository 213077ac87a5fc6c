package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/schmitthub/mcruntime/internal/catalog"
	"github.com/schmitthub/mcruntime/internal/config"
	"github.com/schmitthub/mcruntime/internal/render"
	"github.com/schmitthub/mcruntime/internal/versions"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultAnalysisFile = "minecraft_versions.json"
	defaultProfilesDir  = "profiles"
)

type runtimeOptions struct {
	ConfigPath            string
	ManifestURL           string
	CatalogFile           string
	Output                string
	AnalysisFile          string
	ProfilesDir           string
	SnapshotYearThreshold int
	Timeout               time.Duration
	Format                string
	Cleanup               bool
	Debug                 bool
	DangerousInline       bool
	Versions              []string
	ShowFlags             bool
	Refresh               bool
}

var rootOpts runtimeOptions

func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	showVersion := false

	cmd := &cobra.Command{
		Use:           "mcruntime",
		Short:         "Resolve Java runtime requirements for Minecraft versions",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprint(cmd.OutOrStdout(), formatVersion(buildVersion, buildDate))
				return nil
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigPath, "config", "f", "", "Path to YAML config file")
	cmd.Flags().BoolVar(&showVersion, "version", false, "Print CLI version")
	cmd.PersistentFlags().BoolVar(&rootOpts.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&rootOpts.DangerousInline, "dangerous-inline", false, "Skip write confirmation prompts and perform writes inline")
	cmd.PersistentFlags().StringVar(&rootOpts.ManifestURL, "manifest-url", catalog.DefaultManifestURL, "Version manifest URL")
	cmd.PersistentFlags().StringVar(&rootOpts.CatalogFile, "catalog-file", "", "Read the version manifest from a local file instead of the network")
	cmd.PersistentFlags().IntVar(&rootOpts.SnapshotYearThreshold, "snapshot-year-threshold", versions.DefaultSnapshotYearThreshold, "First two-digit year whose weekly snapshots need the newest Java")
	cmd.PersistentFlags().DurationVar(&rootOpts.Timeout, "timeout", defaultTimeout, "Network timeout for fetching the manifest")

	cmd.AddCommand(newVersionCmd(buildVersion, buildDate))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

func mergedOptions(cmd *cobra.Command) (runtimeOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return runtimeOptions{}, fmt.Errorf("get cwd: %w", err)
	}

	merged := runtimeOptions{
		ConfigPath:            rootOpts.ConfigPath,
		ManifestURL:           catalog.DefaultManifestURL,
		Output:                filepath.Join(cwd, defaultAnalysisFile),
		ProfilesDir:           filepath.Join(cwd, defaultProfilesDir),
		SnapshotYearThreshold: versions.DefaultSnapshotYearThreshold,
		Timeout:               defaultTimeout,
		Format:                render.FormatTable,
	}

	if rootOpts.ConfigPath != "" {
		fileCfg, err := config.Load(rootOpts.ConfigPath)
		if err != nil {
			return runtimeOptions{}, err
		}
		if err := applyFileConfig(&merged, fileCfg); err != nil {
			return runtimeOptions{}, err
		}
	}

	if err := applyEnvOverrides(&merged); err != nil {
		return runtimeOptions{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("manifest-url") {
		merged.ManifestURL = rootOpts.ManifestURL
	}
	if flags.Changed("catalog-file") {
		merged.CatalogFile = rootOpts.CatalogFile
	}
	if flags.Changed("output") {
		merged.Output = rootOpts.Output
	}
	if flags.Changed("analysis") {
		merged.AnalysisFile = rootOpts.AnalysisFile
	}
	if flags.Changed("profiles-dir") {
		merged.ProfilesDir = rootOpts.ProfilesDir
	}
	if flags.Changed("snapshot-year-threshold") {
		merged.SnapshotYearThreshold = rootOpts.SnapshotYearThreshold
	}
	if flags.Changed("timeout") {
		merged.Timeout = rootOpts.Timeout
	}
	if flags.Changed("format") {
		merged.Format = rootOpts.Format
	}
	if flags.Changed("cleanup") {
		merged.Cleanup = rootOpts.Cleanup
	}
	if flags.Changed("debug") {
		merged.Debug = rootOpts.Debug
	}
	if flags.Changed("dangerous-inline") {
		merged.DangerousInline = rootOpts.DangerousInline
	}
	if flags.Changed("versions") {
		merged.Versions = rootOpts.Versions
	}
	if flags.Changed("flags") {
		merged.ShowFlags = rootOpts.ShowFlags
	}
	if flags.Changed("refresh") {
		merged.Refresh = rootOpts.Refresh
	}

	merged.ManifestURL = strings.TrimSpace(merged.ManifestURL)
	merged.CatalogFile = strings.TrimSpace(merged.CatalogFile)
	merged.Output = strings.TrimSpace(merged.Output)
	merged.AnalysisFile = strings.TrimSpace(merged.AnalysisFile)
	merged.ProfilesDir = strings.TrimSpace(merged.ProfilesDir)
	merged.Format = strings.ToLower(strings.TrimSpace(merged.Format))

	if merged.ManifestURL == "" {
		merged.ManifestURL = catalog.DefaultManifestURL
	}
	if merged.Format == "" {
		merged.Format = render.FormatTable
	}
	if !render.ValidFormat(merged.Format) {
		return runtimeOptions{}, fmt.Errorf("unknown format %q (want table, json or yaml)", merged.Format)
	}
	if merged.Timeout <= 0 {
		return runtimeOptions{}, fmt.Errorf("timeout must be positive, got %s", merged.Timeout)
	}

	return merged, nil
}

func applyFileConfig(opts *runtimeOptions, fileCfg config.FileConfig) error {
	if fileCfg.ManifestURL != "" {
		opts.ManifestURL = fileCfg.ManifestURL
	}
	if fileCfg.CatalogFile != "" {
		opts.CatalogFile = fileCfg.CatalogFile
	}
	if fileCfg.Output != "" {
		opts.Output = fileCfg.Output
	}
	if fileCfg.ProfilesDir != "" {
		opts.ProfilesDir = fileCfg.ProfilesDir
	}
	if fileCfg.SnapshotYearThreshold != nil {
		opts.SnapshotYearThreshold = *fileCfg.SnapshotYearThreshold
	}
	if fileCfg.Timeout != "" {
		timeout, err := time.ParseDuration(fileCfg.Timeout)
		if err != nil {
			return fmt.Errorf("parse config timeout: %w", err)
		}
		opts.Timeout = timeout
	}
	if fileCfg.Format != "" {
		opts.Format = fileCfg.Format
	}
	if fileCfg.Cleanup != nil {
		opts.Cleanup = *fileCfg.Cleanup
	}
	if fileCfg.Debug != nil {
		opts.Debug = *fileCfg.Debug
	}
	return nil
}

func applyEnvOverrides(opts *runtimeOptions) error {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	if envCfg.ManifestURL != nil {
		opts.ManifestURL = *envCfg.ManifestURL
	}
	if envCfg.CatalogFile != nil {
		opts.CatalogFile = *envCfg.CatalogFile
	}
	if envCfg.Output != nil {
		opts.Output = *envCfg.Output
	}
	if envCfg.ProfilesDir != nil {
		opts.ProfilesDir = *envCfg.ProfilesDir
	}
	if envCfg.SnapshotYearThreshold != nil {
		opts.SnapshotYearThreshold = *envCfg.SnapshotYearThreshold
	}
	if envCfg.Timeout != nil {
		timeout, err := time.ParseDuration(strings.TrimSpace(*envCfg.Timeout))
		if err != nil {
			return fmt.Errorf("parse MCRUNTIME_TIMEOUT: %w", err)
		}
		opts.Timeout = timeout
	}
	if envCfg.Format != nil {
		opts.Format = *envCfg.Format
	}
	if envCfg.Cleanup != nil {
		opts.Cleanup = *envCfg.Cleanup
	}
	if envCfg.Debug != nil {
		opts.Debug = *envCfg.Debug
	}
	if envCfg.DangerousInline != nil {
		opts.DangerousInline = *envCfg.DangerousInline
	}
	return nil
}
