package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func releaseServer(t *testing.T, tag string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/repos/schmitthub/mcruntime/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "` + tag + `", "html_url": "https://example.invalid/release"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckForUpdateNewerRelease(t *testing.T) {
	var hits atomic.Int32
	srv := releaseServer(t, "v1.3.0", &hits)

	c := &Checker{
		StatePath:  filepath.Join(t.TempDir(), "state.json"),
		Repo:       "schmitthub/mcruntime",
		APIBaseURL: srv.URL,
		Client:     srv.Client(),
	}

	result, err := c.CheckForUpdate(context.Background(), "v1.2.0")
	if err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if result == nil || !result.UpdateAvailable || result.LatestVersion != "1.3.0" {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Second call within the interval is served from the state file.
	if _, err := c.CheckForUpdate(context.Background(), "v1.2.0"); err != nil {
		t.Fatalf("second CheckForUpdate: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("api hits = %d, want 1", got)
	}
}

func TestCheckForUpdateStaleStateRefetches(t *testing.T) {
	var hits atomic.Int32
	srv := releaseServer(t, "v1.3.0", &hits)

	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	c := &Checker{
		StatePath:  filepath.Join(t.TempDir(), "state.json"),
		Repo:       "schmitthub/mcruntime",
		APIBaseURL: srv.URL,
		Client:     srv.Client(),
		Now:        func() time.Time { return now },
	}

	if _, err := c.CheckForUpdate(context.Background(), "1.2.0"); err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	now = now.Add(13 * time.Hour)
	if _, err := c.CheckForUpdate(context.Background(), "1.2.0"); err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("api hits = %d, want 2", got)
	}
}

func TestCheckForUpdateUpToDate(t *testing.T) {
	var hits atomic.Int32
	srv := releaseServer(t, "v1.2.0", &hits)

	c := &Checker{
		StatePath:  filepath.Join(t.TempDir(), "state.json"),
		Repo:       "schmitthub/mcruntime",
		APIBaseURL: srv.URL,
		Client:     srv.Client(),
	}

	result, err := c.CheckForUpdate(context.Background(), "1.2.0")
	if err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if result != nil {
		t.Errorf("expected no update, got %+v", result)
	}
}

func TestCheckForUpdateSkipsDevBuilds(t *testing.T) {
	c := &Checker{StatePath: filepath.Join(t.TempDir(), "state.json"), APIBaseURL: "http://127.0.0.1:1"}

	for _, v := range []string{"", "DEV", "not-a-version"} {
		result, err := c.CheckForUpdate(context.Background(), v)
		if err != nil || result != nil {
			t.Errorf("CheckForUpdate(%q) = %+v, %v; want nil, nil", v, result, err)
		}
	}
}

func TestCheckForUpdateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := &Checker{
		StatePath:  filepath.Join(t.TempDir(), "state.json"),
		Repo:       "schmitthub/mcruntime",
		APIBaseURL: srv.URL,
		Client:     srv.Client(),
	}

	if _, err := c.CheckForUpdate(context.Background(), "1.0.0"); err == nil {
		t.Fatal("expected error from failing api")
	}
}

func TestDefaultStatePathHonorsCacheDirEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MCRUNTIME_CACHE_DIR", dir)

	path, err := DefaultStatePath()
	if err != nil {
		t.Fatalf("DefaultStatePath: %v", err)
	}
	if want := filepath.Join(dir, "update-state.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
