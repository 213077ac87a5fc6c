package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testManifest = `{
  "latest": {"release": "1.21", "snapshot": "24w14a"},
  "versions": [
    {"id": "24w14a", "type": "snapshot", "url": "https://example.invalid/24w14a.json", "time": "2024-04-03T12:00:00+00:00", "releaseTime": "2024-04-03T11:54:38+00:00"},
    {"id": "1.21", "type": "release", "releaseTime": "2024-06-13T08:24:03+00:00"},
    {"id": "b1.7.3", "type": "old_beta", "releaseTime": "2011-07-07T22:00:00+00:00"}
  ]
}`

func TestFetch(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testManifest))
	}))
	defer srv.Close()

	manifest, err := Fetch(context.Background(), FetchOptions{URL: srv.URL, Client: srv.Client(), UserAgent: "mcruntime-test"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotAgent != "mcruntime-test" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if manifest.Latest.Release != "1.21" || manifest.Latest.Snapshot != "24w14a" {
		t.Errorf("Latest = %+v", manifest.Latest)
	}
	if len(manifest.Versions) != 3 {
		t.Fatalf("versions = %d, want 3", len(manifest.Versions))
	}
	first := manifest.Versions[0]
	if first.ID != "24w14a" || first.Kind != "snapshot" || first.ReleaseTime != "2024-04-03T11:54:38+00:00" {
		t.Errorf("first descriptor = %+v", first)
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), FetchOptions{URL: srv.URL, Client: srv.Client()}); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), FetchOptions{URL: srv.URL, Client: srv.Client()}); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := Fetch(ctx, FetchOptions{URL: srv.URL, Client: srv.Client()}); err == nil {
		t.Fatal("expected error after context deadline")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version_manifest.json")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	manifest, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(manifest.Versions) != 3 {
		t.Errorf("versions = %d, want 3", len(manifest.Versions))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
