package versions

import (
	"fmt"
	"regexp"
	"strconv"

	semver "github.com/Masterminds/semver/v3"
)

// dottedVersionPattern is unanchored so that prefixed identifiers such as
// "b1.7.3" still yield their numeric part.
var dottedVersionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParsedVersion is the numeric (major, minor, patch) triple found in an
// identifier. Patch is 0 when the identifier omits it.
type ParsedVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// ParseVersion extracts the first dotted numeric token from id. The second
// return value is false when id carries no such token; callers treat that as
// a regular outcome, not an error.
func ParseVersion(id string) (ParsedVersion, bool) {
	m := dottedVersionPattern.FindStringSubmatch(id)
	if m == nil {
		return ParsedVersion{}, false
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedVersion{}, false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return ParsedVersion{}, false
	}

	patch := 0
	if m[3] != "" {
		patch, err = strconv.Atoi(m[3])
		if err != nil {
			return ParsedVersion{}, false
		}
	}

	return ParsedVersion{Major: major, Minor: minor, Patch: patch}, true
}

func (p ParsedVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", p.Major, p.Minor, p.Patch)
}

func (p ParsedVersion) semver() *semver.Version {
	return semver.New(uint64(p.Major), uint64(p.Minor), uint64(p.Patch), "", "")
}

// AtLeast reports whether p is ordered at or after floor.
func (p ParsedVersion) AtLeast(floor *semver.Version) bool {
	return !p.semver().LessThan(floor)
}

// Compare orders two parsed versions by major, then minor, then patch.
func (p ParsedVersion) Compare(other ParsedVersion) int {
	return p.semver().Compare(other.semver())
}
