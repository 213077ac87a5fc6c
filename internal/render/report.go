package render

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/schmitthub/mcruntime/internal/versions"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidFormat reports whether format is one Report understands.
func ValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	}
	return false
}

type yamlVersion struct {
	ID                   string `yaml:"id"`
	versions.VersionInfo `yaml:",inline"`
}

type yamlDocument struct {
	Latest        versions.Latest `yaml:"latest"`
	AnalyzedAt    string          `yaml:"analyzed_at"`
	TotalVersions int             `yaml:"total_versions"`
	Versions      []yamlVersion   `yaml:"versions"`
}

// Report writes the analysis to w in the given format.
func Report(w io.Writer, analysis versions.Analysis, format string, showFlags bool) error {
	switch format {
	case FormatTable, "":
		return Table(w, analysis.Resolved(), showFlags)
	case FormatJSON:
		payload, err := versions.EncodeAnalysis(analysis)
		if err != nil {
			return err
		}
		_, err = w.Write(payload)
		return err
	case FormatYAML:
		doc := yamlDocument{
			Latest:        analysis.Latest,
			AnalyzedAt:    analysis.AnalyzedAt,
			TotalVersions: analysis.TotalVersions,
			Versions:      make([]yamlVersion, 0, len(analysis.Order)),
		}
		for _, id := range analysis.Order {
			doc.Versions = append(doc.Versions, yamlVersion{ID: id, VersionInfo: analysis.Entries[id]})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode YAML report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

// Table prints one row per resolved version. With showFlags, each row is
// followed by its invocation flags.
func Table(w io.Writer, resolved []versions.ResolvedVersion, showFlags bool) error {
	if _, err := fmt.Fprintf(w, "%-20s %-10s %-6s %-8s %-10s %s\n", "Version", "Type", "Java", "x86_64", "Release", "Flags"); err != nil {
		return err
	}

	for _, rv := range resolved {
		release := rv.Requirement.ReleaseTime
		if len(release) > 10 {
			release = release[:10]
		}

		if _, err := fmt.Fprintf(w, "%-20s %-10s %-6d %-8t %-10s %d flags\n",
			rv.Descriptor.ID,
			rv.Descriptor.Kind,
			rv.Requirement.JavaVersion,
			rv.Requirement.NeedsX86_64,
			release,
			len(rv.Requirement.JVMFlags),
		); err != nil {
			return err
		}

		if showFlags {
			for _, flag := range rv.Requirement.JVMFlags {
				if _, err := fmt.Fprintf(w, "    %s\n", flag); err != nil {
					return err
				}
			}
		}
	}

	_, err := message.NewPrinter(language.English).Fprintf(w, "\n%d versions\n", len(resolved))
	return err
}
