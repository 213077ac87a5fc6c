package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/Masterminds/semver/v3"
	"k8s.io/klog/v2"
)

const (
	checkInterval      = 12 * time.Hour
	defaultAPIBaseURL  = "https://api.github.com"
	cacheDirEnv        = "MCRUNTIME_CACHE_DIR"
	stateFileName      = "update-state.json"
	updateCheckAgent   = "mcruntime-update-check"
	applicationDirName = "mcruntime"
)

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type state struct {
	LastChecked   time.Time `json:"last_checked"`
	LatestVersion string    `json:"latest_version"`
	ReleaseURL    string    `json:"release_url"`
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker looks up the newest published release of a GitHub repository and
// remembers the answer in a state file for checkInterval.
type Checker struct {
	StatePath  string
	Repo       string
	APIBaseURL string
	Client     *http.Client
	Now        func() time.Time
}

// DefaultStatePath returns the state file location, honoring
// MCRUNTIME_CACHE_DIR before the user cache directory.
func DefaultStatePath() (string, error) {
	cacheDir := strings.TrimSpace(os.Getenv(cacheDirEnv))
	if cacheDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil || strings.TrimSpace(userCache) == "" {
			userCache = ".cache"
		}
		cacheDir = filepath.Join(userCache, applicationDirName)
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create update cache directory: %w", err)
	}

	return filepath.Join(cacheDir, stateFileName), nil
}

// CheckForUpdate returns a result only when a newer release exists. Dev
// builds and unparseable versions are never checked.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) (*CheckResult, error) {
	log := klog.FromContext(ctx)

	currentVersion = normalizeVersion(currentVersion)
	if currentVersion == "" || strings.EqualFold(currentVersion, "dev") {
		return nil, nil
	}

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		log.V(1).Info("skipping update check for unparseable build version", "version", currentVersion)
		return nil, nil
	}

	cached := readState(c.StatePath)
	if cached != nil && c.now().Sub(cached.LastChecked) < checkInterval {
		return cachedResult(current, cached), nil
	}

	release, err := c.fetchLatestRelease(ctx)
	if err != nil {
		if cached != nil {
			return cachedResult(current, cached), nil
		}
		return nil, err
	}

	nextState := state{
		LastChecked:   c.now().UTC(),
		LatestVersion: normalizeVersion(release.TagName),
		ReleaseURL:    release.HTMLURL,
	}
	if err := writeState(c.StatePath, nextState); err != nil {
		log.V(1).Info("could not persist update state", "path", c.StatePath, "err", err)
	}

	return cachedResult(current, &nextState), nil
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (*githubRelease, error) {
	base := strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if base == "" {
		base = defaultAPIBaseURL
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", base, strings.TrimSpace(c.Repo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", updateCheckAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("github releases api returned status %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	if strings.TrimSpace(release.TagName) == "" {
		return nil, fmt.Errorf("github release tag is empty")
	}

	return &release, nil
}

func readState(path string) *state {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var s state
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}

	return &s
}

func writeState(path string, s state) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func cachedResult(current *semver.Version, cached *state) *CheckResult {
	latest, err := semver.NewVersion(normalizeVersion(cached.LatestVersion))
	if err != nil {
		return nil
	}
	if !latest.GreaterThan(current) {
		return nil
	}

	return &CheckResult{
		CurrentVersion:  current.Original(),
		LatestVersion:   latest.Original(),
		ReleaseURL:      cached.ReleaseURL,
		UpdateAvailable: true,
	}
}

func normalizeVersion(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "v")
}
