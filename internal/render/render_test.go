package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/schmitthub/mcruntime/internal/versions"
)

func testAnalysis(t *testing.T) versions.Analysis {
	t.Helper()
	r, err := versions.NewResolver()
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r.Analyze(versions.Latest{Release: "1.21", Snapshot: "23w45a"}, []versions.VersionDescriptor{
		{ID: "1.21", Kind: "release", ReleaseTime: "2024-06-13T08:24:03+00:00"},
		{ID: "23w45a", Kind: "snapshot", ReleaseTime: "2023-11-08T12:13:03+00:00"},
		{ID: "1.12.2", Kind: "release", ReleaseTime: "2017-09-18T08:39:46+00:00"},
		{ID: "bad/../id", Kind: "release", ReleaseTime: "2010-01-01T00:00:00+00:00"},
	}, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
}

func TestProfilesWritesArgsAndRuntime(t *testing.T) {
	out := t.TempDir()
	analysis := testAnalysis(t)

	written, err := Profiles(Options{Analysis: analysis, OutputDir: out})
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}

	if want := []string{"1.21", "23w45a", "1.12.2"}; !slices.Equal(written, want) {
		t.Errorf("written = %v, want %v", written, want)
	}

	args, err := os.ReadFile(filepath.Join(out, "1.21", "jvm.args"))
	if err != nil {
		t.Fatalf("read jvm.args: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(args), "\n"), "\n")
	if !slices.Equal(lines, analysis.Entries["1.21"].JVMFlags) {
		t.Errorf("jvm.args = %q", lines)
	}
	if lines[0] != "-Djava.library.path=${natives_directory}" {
		t.Errorf("placeholders must be left for the launcher, got %q", lines[0])
	}

	raw, err := os.ReadFile(filepath.Join(out, "1.12.2", "runtime.yaml"))
	if err != nil {
		t.Fatalf("read runtime.yaml: %v", err)
	}
	var profile runtimeProfile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		t.Fatalf("parse runtime.yaml: %v", err)
	}
	if profile.JavaVersion != versions.Java8 || !profile.NeedsX86_64 || profile.ID != "1.12.2" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestProfilesSelectionAndCleanup(t *testing.T) {
	out := t.TempDir()
	if err := os.MkdirAll(filepath.Join(out, "stale"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	written, err := Profiles(Options{
		Analysis:  testAnalysis(t),
		OutputDir: out,
		Cleanup:   true,
		Requested: []string{"1.12.2", "missing", "1.21", "1.21"},
	})
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}

	if want := []string{"1.21", "1.12.2"}; !slices.Equal(written, want) {
		t.Errorf("written = %v, want %v", written, want)
	}
	if _, err := os.Stat(filepath.Join(out, "stale")); !os.IsNotExist(err) {
		t.Error("stale profile directory should have been removed")
	}
	if _, err := os.Stat(filepath.Join(out, "23w45a")); !os.IsNotExist(err) {
		t.Error("unselected version should not be written")
	}
}

func TestProfilesConfirmWriteAborts(t *testing.T) {
	abort := errors.New("aborted")

	_, err := Profiles(Options{
		Analysis:     testAnalysis(t),
		OutputDir:    t.TempDir(),
		ConfirmWrite: func(string) error { return abort },
	})
	if !errors.Is(err, abort) {
		t.Fatalf("err = %v, want %v", err, abort)
	}
}

func TestProfilesRequiresOutputDir(t *testing.T) {
	if _, err := Profiles(Options{Analysis: testAnalysis(t)}); err == nil {
		t.Fatal("expected error without output directory")
	}
}

func TestSelectVersionsUnknownFallsBackToAll(t *testing.T) {
	analysis := testAnalysis(t)

	got := selectVersions(analysis, []string{"nope"})
	if !slices.Equal(got, analysis.Order) {
		t.Errorf("selection = %v, want all %v", got, analysis.Order)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, testAnalysis(t).Resolved(), true); err != nil {
		t.Fatalf("Table: %v", err)
	}
	body := buf.String()

	for _, s := range []string{
		"Version",
		"1.21                 release    21     false    2024-06-13 10 flags",
		"23w45a               snapshot   21     true     2023-11-08 9 flags",
		"    -XX:+UseG1GC",
		"4 versions",
	} {
		if !strings.Contains(body, s) {
			t.Errorf("table missing %q in:\n%s", s, body)
		}
	}
}

func TestReportFormats(t *testing.T) {
	analysis := testAnalysis(t)

	var jsonOut bytes.Buffer
	if err := Report(&jsonOut, analysis, FormatJSON, false); err != nil {
		t.Fatalf("json report: %v", err)
	}
	if !strings.Contains(jsonOut.String(), `"total_versions": 4`) {
		t.Errorf("json report missing total: %s", jsonOut.String())
	}

	var yamlOut bytes.Buffer
	if err := Report(&yamlOut, analysis, FormatYAML, false); err != nil {
		t.Fatalf("yaml report: %v", err)
	}
	var doc yamlDocument
	if err := yaml.Unmarshal(yamlOut.Bytes(), &doc); err != nil {
		t.Fatalf("parse yaml report: %v", err)
	}
	if len(doc.Versions) != 4 || doc.Versions[0].ID != "1.21" || doc.Versions[0].JavaVersion != versions.Java21 {
		t.Errorf("unexpected yaml document: %+v", doc)
	}

	if err := Report(&bytes.Buffer{}, analysis, "xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
	if ValidFormat("xml") || !ValidFormat(FormatYAML) {
		t.Error("ValidFormat misreports")
	}
}
