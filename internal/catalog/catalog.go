// Package catalog retrieves the launcher version manifest, either from the
// network or from a local copy.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"k8s.io/klog/v2"

	"github.com/schmitthub/mcruntime/internal/versions"
)

const DefaultManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

type Manifest struct {
	Latest   versions.Latest              `json:"latest"`
	Versions []versions.VersionDescriptor `json:"versions"`
}

type FetchOptions struct {
	URL       string
	Client    *http.Client
	UserAgent string
}

// Fetch downloads and decodes the manifest. Cancellation and deadlines come
// from ctx.
func Fetch(ctx context.Context, opts FetchOptions) (Manifest, error) {
	log := klog.FromContext(ctx)

	url := strings.TrimSpace(opts.URL)
	if url == "" {
		url = DefaultManifestURL
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Manifest{}, fmt.Errorf("build manifest request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	log.V(1).Info("fetching version manifest", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return Manifest{}, fmt.Errorf("fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Manifest{}, fmt.Errorf("fetch manifest: %s returned status %d", url, resp.StatusCode)
	}

	manifest, err := Decode(resp.Body)
	if err != nil {
		return Manifest{}, err
	}

	log.V(1).Info("fetched version manifest", "versions", len(manifest.Versions), "latestRelease", manifest.Latest.Release)
	return manifest, nil
}

func Load(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) (Manifest, error) {
	var manifest Manifest
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest JSON: %w", err)
	}
	return manifest, nil
}
