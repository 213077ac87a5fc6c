package versions

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Resolver turns version identifiers into runtime requirements. It holds
// configuration only; resolution itself is a pure function of the input.
type Resolver struct {
	snapshotYearThreshold int
	workers               int
	logger                klog.Logger
}

type Option func(*Resolver)

// WithSnapshotYearThreshold overrides DefaultSnapshotYearThreshold.
func WithSnapshotYearThreshold(year int) Option {
	return func(r *Resolver) {
		r.snapshotYearThreshold = year
	}
}

// WithWorkers bounds the number of identifiers resolved concurrently by
// ResolveCatalog. Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		r.workers = n
	}
}

// WithLogger attaches a logger for per-identifier V(2) traces.
func WithLogger(logger klog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{snapshotYearThreshold: DefaultSnapshotYearThreshold}
	for _, opt := range opts {
		opt(r)
	}

	if r.snapshotYearThreshold < 0 || r.snapshotYearThreshold > 99 {
		return nil, fmt.Errorf("snapshot year threshold must be a two-digit year, got %d", r.snapshotYearThreshold)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}

	return r, nil
}

// JavaVersionFor picks the Java release id needs, together with the era rule
// that forced the newest release (RuleNone otherwise).
func (r *Resolver) JavaVersionFor(id string) (JavaVersion, EraRule) {
	if rule := r.Classify(id); rule != RuleNone {
		return Java21, rule
	}
	if IsHistorical(id) {
		return Java8, RuleNone
	}
	if parsed, ok := ParseVersion(id); ok {
		return javaForParsed(parsed), RuleNone
	}
	return Java8, RuleNone
}

// NeedsX86_64 reports whether id must run on an x86_64 JVM. Unparseable
// identifiers require it. Era classification is not consulted.
func NeedsX86_64(id string) bool {
	if IsHistorical(id) {
		return true
	}
	parsed, ok := ParseVersion(id)
	if !ok {
		return true
	}
	return !parsed.AtLeast(nativeArmSince)
}

// Resolve computes the requirement for a single catalog entry.
func (r *Resolver) Resolve(d VersionDescriptor) RuntimeRequirement {
	java, rule := r.JavaVersionFor(d.ID)
	req := RuntimeRequirement{
		JavaVersion: java,
		NeedsX86_64: NeedsX86_64(d.ID),
		JVMFlags:    JVMFlags(java, d.ID),
		ReleaseTime: d.ReleaseTime,
	}

	r.logger.V(2).Info("resolved version", "id", d.ID, "java", int(java), "eraRule", string(rule), "x86_64", req.NeedsX86_64)
	return req
}

// ResolveCatalog resolves every descriptor independently and returns the
// results newest first. Entries with equal release times keep input order.
func (r *Resolver) ResolveCatalog(descriptors []VersionDescriptor) []ResolvedVersion {
	out := make([]ResolvedVersion, len(descriptors))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, d := range descriptors {
		i, d := i, d
		g.Go(func() error {
			out[i] = ResolvedVersion{Descriptor: d, Requirement: r.Resolve(d)}
			return nil
		})
	}
	_ = g.Wait()

	SortByReleaseTime(out)
	return out
}

// SortByReleaseTime orders resolved versions by raw release time string,
// newest first, keeping the relative order of equal timestamps. Malformed
// timestamps are compared as-is.
func SortByReleaseTime(resolved []ResolvedVersion) {
	slices.SortStableFunc(resolved, func(a, b ResolvedVersion) int {
		return strings.Compare(b.Requirement.ReleaseTime, a.Requirement.ReleaseTime)
	})
}
