package config

func DefaultTemplate() string {
	return `# mcruntime configuration
#
# Precedence: flags > environment variables > config file > defaults
# Environment prefix: MCRUNTIME_

# Launcher version manifest to resolve
manifest_url: https://launchermeta.mojang.com/mc/game/version_manifest.json

# Read the manifest from this file instead of the network (offline mode)
catalog_file: ""

# Where "resolve" writes the analysis document
output: ./minecraft_versions.json

# Where "render" writes per-version launch profiles
profiles_dir: ./profiles

# Weekly snapshots (e.g. 23w45a) from this two-digit year onward need the
# newest Java release. Raise it when a new snapshot era starts.
snapshot_year_threshold: 23

# Network timeout for fetching the manifest
timeout: 10s

# Output format for "list": table, json or yaml
format: table

# Remove profile directories that are not part of the current selection
cleanup: false

# Enable debug logging
debug: false
`
}
