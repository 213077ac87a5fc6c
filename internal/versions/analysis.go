package versions

import (
	"slices"
	"time"
)

// Analyze resolves a whole catalog into an Analysis stamped with now.
// When the catalog repeats an identifier, the entry sorted last wins in
// Entries while Order lists the identifier once.
func (r *Resolver) Analyze(latest Latest, descriptors []VersionDescriptor, now time.Time) Analysis {
	resolved := r.ResolveCatalog(descriptors)

	analysis := Analysis{
		Latest:        latest,
		AnalyzedAt:    now.Format(time.RFC3339),
		TotalVersions: len(descriptors),
		Order:         make([]string, 0, len(resolved)),
		Entries:       make(map[string]VersionInfo, len(resolved)),
	}

	for _, rv := range resolved {
		if _, seen := analysis.Entries[rv.Descriptor.ID]; !seen {
			analysis.Order = append(analysis.Order, rv.Descriptor.ID)
		}
		analysis.Entries[rv.Descriptor.ID] = infoFor(rv)
	}

	return analysis
}

// Resolved rebuilds the ordered resolution list from an Analysis, e.g. one
// read back from disk.
func (a Analysis) Resolved() []ResolvedVersion {
	out := make([]ResolvedVersion, 0, len(a.Order))
	for _, id := range a.Order {
		info, ok := a.Entries[id]
		if !ok {
			continue
		}
		out = append(out, ResolvedVersion{
			Descriptor: VersionDescriptor{ID: id, Kind: info.Type, ReleaseTime: info.ReleaseTime},
			Requirement: RuntimeRequirement{
				JavaVersion: info.JavaVersion,
				NeedsX86_64: info.NeedsX86_64,
				JVMFlags:    append([]string(nil), info.JVMFlags...),
				ReleaseTime: info.ReleaseTime,
			},
		})
	}
	return out
}

func sortOrderByReleaseTime(order []string, entries map[string]VersionInfo) {
	resolved := make([]ResolvedVersion, 0, len(order))
	for _, id := range order {
		resolved = append(resolved, ResolvedVersion{
			Descriptor:  VersionDescriptor{ID: id},
			Requirement: RuntimeRequirement{ReleaseTime: entries[id].ReleaseTime},
		})
	}
	SortByReleaseTime(resolved)
	for i, rv := range resolved {
		order[i] = rv.Descriptor.ID
	}
}

// sortedKeys returns the keys of entries sorted by identifier so that the
// stable release-time sort has a deterministic starting point.
func sortedKeys(entries map[string]VersionInfo) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
