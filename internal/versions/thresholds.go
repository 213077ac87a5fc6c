package versions

import semver "github.com/Masterminds/semver/v3"

// Every numeric version boundary used by the resolver lives here. A
// boundary is inclusive: the floor version itself is on the newer side.
var (
	java21Since    = semver.MustParse("1.20.5")
	java17Since    = semver.MustParse("1.17.0")
	nativeArmSince = semver.MustParse("1.18.0")
	g1gcSince      = semver.MustParse("1.13.0")
)

type javaStep struct {
	since *semver.Version
	java  JavaVersion
}

// javaLadder is ordered newest first; the first floor reached wins.
var javaLadder = []javaStep{
	{since: java21Since, java: Java21},
	{since: java17Since, java: Java17},
}

func javaForParsed(p ParsedVersion) JavaVersion {
	for _, step := range javaLadder {
		if p.AtLeast(step.since) {
			return step.java
		}
	}
	return Java8
}
