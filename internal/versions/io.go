package versions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type analysisHeader struct {
	Latest        Latest `json:"latest"`
	AnalyzedAt    string `json:"analyzed_at"`
	TotalVersions int    `json:"total_versions"`
}

type analysisDocument struct {
	analysisHeader
	Versions map[string]VersionInfo `json:"versions"`
}

// EncodeAnalysis renders the analysis as indented JSON. Keys under
// "versions" follow analysis.Order, which encoding/json would not keep.
func EncodeAnalysis(analysis Analysis) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("{\n")

	latest, err := json.MarshalIndent(analysis.Latest, "  ", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode latest: %w", err)
	}
	analyzedAt, err := json.Marshal(analysis.AnalyzedAt)
	if err != nil {
		return nil, fmt.Errorf("encode analyzed_at: %w", err)
	}

	fmt.Fprintf(buf, "  \"latest\": %s,\n", latest)
	fmt.Fprintf(buf, "  \"analyzed_at\": %s,\n", analyzedAt)
	fmt.Fprintf(buf, "  \"total_versions\": %d,\n", analysis.TotalVersions)
	buf.WriteString("  \"versions\": {")

	written := 0
	for _, id := range analysis.Order {
		info, ok := analysis.Entries[id]
		if !ok {
			continue
		}

		key, err := json.Marshal(id)
		if err != nil {
			return nil, fmt.Errorf("encode version key: %w", err)
		}

		value, err := json.MarshalIndent(info, "    ", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode version %s: %w", id, err)
		}

		if written > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		written++
	}

	if written > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("}\n}\n")

	return buf.Bytes(), nil
}

func WriteAnalysis(path string, analysis Analysis) error {
	payload, err := EncodeAnalysis(analysis)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create analysis directory: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}

	return nil
}

// ReadAnalysis loads a document written by WriteAnalysis. Order is rebuilt
// by release time, newest first, with identifiers breaking ties.
func ReadAnalysis(path string) (Analysis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("read analysis: %w", err)
	}

	var doc analysisDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Analysis{}, fmt.Errorf("parse analysis JSON: %w", err)
	}

	entries := doc.Versions
	if entries == nil {
		entries = make(map[string]VersionInfo)
	}

	order := sortedKeys(entries)
	sortOrderByReleaseTime(order, entries)

	return Analysis{
		Latest:        doc.Latest,
		AnalyzedAt:    doc.AnalyzedAt,
		TotalVersions: doc.TotalVersions,
		Order:         order,
		Entries:       entries,
	}, nil
}
