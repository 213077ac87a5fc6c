package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type FileConfig struct {
	ManifestURL           string `yaml:"manifest_url"`
	CatalogFile           string `yaml:"catalog_file"`
	Output                string `yaml:"output"`
	ProfilesDir           string `yaml:"profiles_dir"`
	SnapshotYearThreshold *int   `yaml:"snapshot_year_threshold"`
	Timeout               string `yaml:"timeout"`
	Format                string `yaml:"format"`
	Cleanup               *bool  `yaml:"cleanup"`
	Debug                 *bool  `yaml:"debug"`
}

// EnvConfig holds MCRUNTIME_* overrides. A nil field means the variable is
// unset.
type EnvConfig struct {
	ManifestURL           *string `env:"MCRUNTIME_MANIFEST_URL"`
	CatalogFile           *string `env:"MCRUNTIME_CATALOG_FILE"`
	Output                *string `env:"MCRUNTIME_OUTPUT"`
	ProfilesDir           *string `env:"MCRUNTIME_PROFILES_DIR"`
	SnapshotYearThreshold *int    `env:"MCRUNTIME_SNAPSHOT_YEAR_THRESHOLD"`
	Timeout               *string `env:"MCRUNTIME_TIMEOUT"`
	Format                *string `env:"MCRUNTIME_FORMAT"`
	Cleanup               *bool   `env:"MCRUNTIME_CLEANUP"`
	Debug                 *bool   `env:"MCRUNTIME_DEBUG"`
	DangerousInline       *bool   `env:"MCRUNTIME_DANGEROUS_INLINE"`
	CacheDir              *string `env:"MCRUNTIME_CACHE_DIR"`
}

func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}

	return FromString(string(raw))
}

func FromString(s string) (FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal([]byte(s), &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config YAML: %w", err)
	}
	return cfg, nil
}

func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
