package versions

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultSnapshotYearThreshold is the first two-digit year whose weekly
// snapshots ("23w45a") need the newest Java. Raise it when a new era starts.
const DefaultSnapshotYearThreshold = 23

// EraRule names the rule that classified an identifier as bleeding-edge.
type EraRule string

const (
	RuleNone           EraRule = ""
	RuleWeeklySnapshot EraRule = "weekly-snapshot"
	RulePreRelease     EraRule = "pre-release"
	RuleMarker         EraRule = "marker"
)

var weeklySnapshotPattern = regexp.MustCompile(`^(\d{2})w`)

var experimentalMarkers = []string{"experimental", "snapshot", "combat"}

// Classify returns the first era rule matching id, or RuleNone when id is
// not bleeding-edge.
func (r *Resolver) Classify(id string) EraRule {
	lower := strings.ToLower(id)

	if m := weeklySnapshotPattern.FindStringSubmatch(lower); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil && year >= r.snapshotYearThreshold {
			return RuleWeeklySnapshot
		}
	}

	if strings.Contains(lower, "-pre") || strings.Contains(lower, "-rc") {
		base, _, _ := strings.Cut(lower, "-")
		if parsed, ok := ParseVersion(base); ok && parsed.AtLeast(java21Since) {
			return RulePreRelease
		}
	}

	for _, marker := range experimentalMarkers {
		if strings.Contains(lower, marker) {
			return RuleMarker
		}
	}

	return RuleNone
}

// IsHistorical reports whether id belongs to the alpha/beta era.
func IsHistorical(id string) bool {
	lower := strings.ToLower(id)
	return strings.HasPrefix(lower, "a") ||
		strings.HasPrefix(lower, "b") ||
		strings.Contains(lower, "alpha") ||
		strings.Contains(lower, "beta")
}
