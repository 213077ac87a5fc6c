package build

import "runtime/debug"

// Set with -ldflags "-X github.com/schmitthub/mcruntime/internal/build.Version=..."
// at release time. `go install` builds fall back to the module version.
var (
	Version = "DEV"
	Date    = "" // YYYY-MM-DD, empty for dev builds
)

func init() {
	if Version != "DEV" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}
