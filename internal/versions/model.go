package versions

// JavaVersion is a required Java runtime major release. Only the three
// ladder values below are ever produced by the resolver.
type JavaVersion int

const (
	Java8  JavaVersion = 8
	Java17 JavaVersion = 17
	Java21 JavaVersion = 21
)

// VersionDescriptor is one entry of the launcher version catalog.
type VersionDescriptor struct {
	ID          string `json:"id"`
	Kind        string `json:"type"`
	ReleaseTime string `json:"releaseTime"`
}

// RuntimeRequirement is what a game version needs from the Java runtime.
type RuntimeRequirement struct {
	JavaVersion JavaVersion `json:"java_version" yaml:"java_version"`
	NeedsX86_64 bool        `json:"needs_x86_64" yaml:"needs_x86_64"`
	JVMFlags    []string    `json:"jvm_flags" yaml:"jvm_flags"`
	ReleaseTime string      `json:"release_time" yaml:"release_time"`
}

// ResolvedVersion pairs a catalog entry with its computed requirement.
type ResolvedVersion struct {
	Descriptor  VersionDescriptor
	Requirement RuntimeRequirement
}

// Latest names the newest release and snapshot as advertised by the catalog.
type Latest struct {
	Release  string `json:"release" yaml:"release"`
	Snapshot string `json:"snapshot" yaml:"snapshot"`
}

// VersionInfo is the on-disk shape of one analyzed version.
type VersionInfo struct {
	Type        string      `json:"type" yaml:"type"`
	JavaVersion JavaVersion `json:"java_version" yaml:"java_version"`
	NeedsX86_64 bool        `json:"needs_x86_64" yaml:"needs_x86_64"`
	JVMFlags    []string    `json:"jvm_flags" yaml:"jvm_flags"`
	ReleaseTime string      `json:"release_time" yaml:"release_time"`
}

// Analysis is a full catalog resolution. Order lists the keys of Entries
// by release time, newest first.
type Analysis struct {
	Latest        Latest
	AnalyzedAt    string
	TotalVersions int
	Order         []string
	Entries       map[string]VersionInfo
}

func infoFor(rv ResolvedVersion) VersionInfo {
	return VersionInfo{
		Type:        rv.Descriptor.Kind,
		JavaVersion: rv.Requirement.JavaVersion,
		NeedsX86_64: rv.Requirement.NeedsX86_64,
		JVMFlags:    append([]string(nil), rv.Requirement.JVMFlags...),
		ReleaseTime: rv.Requirement.ReleaseTime,
	}
}
