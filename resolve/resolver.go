// Package resolve implements the identity resolver: the frequency-aware
// Union-Find pass that groups log lines sharing a sufficiently rare token
// value into identity clusters, with a streaming mode for Finding
// collections too large to hold in memory at once.
package resolve

import (
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/logident/logident/finding"
)

// streamingThreshold is the Finding count above which callers should back
// the resolver with a disk-backed Source (JSONFileSource) rather than an
// in-memory SliceSource, per the streaming-mode trigger.
const streamingThreshold = 1_000_000

// IsStreamingRecommended reports whether a Finding collection of the given
// size should be resolved from a disk-backed Source instead of a
// SliceSource.
func IsStreamingRecommended(findingCount int) bool {
	return findingCount > streamingThreshold
}

// Config holds the identity resolver's tunable parameters.
type Config struct {
	// MergeTypes restricts unioning to Findings of these categories. A nil
	// or empty map means all categories are eligible.
	MergeTypes map[string]bool
	// MaxFrequencyPct is F in [0,100]: a value qualifies only if it appears
	// in at most floor(F/100 * N_lines) distinct lines.
	MaxFrequencyPct float64
	// MinOccurrences is the minimum distinct-line count for a value to
	// qualify. Zero defaults to 2, the specified minimum.
	MinOccurrences int
	// FastMode skips the transitive-closure confirmation pass.
	FastMode bool
	// Logger receives pass-by-pass progress. Nil disables logging.
	Logger *zap.Logger
}

func (c Config) minOccurrences() int {
	if c.MinOccurrences <= 0 {
		return 2
	}

	return c.MinOccurrences
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

func (c Config) eligible(category string) bool {
	if len(c.MergeTypes) == 0 {
		return true
	}

	return c.MergeTypes[category]
}

// Validate checks the configuration kind-3 invariant: max_frequency must
// lie in [0,100].
func (c Config) Validate() error {
	if c.MaxFrequencyPct < 0 || c.MaxFrequencyPct > 100 {
		return errors.Errorf("invalid configuration: max_frequency %.2f outside [0,100]", c.MaxFrequencyPct)
	}

	return nil
}

// IdentityGroup is a connected component of lines assigned a stable
// numeric identity, holding every Finding whose line belongs to it, in
// original stream order.
type IdentityGroup struct {
	ID       int
	Findings []finding.Finding
}

// Result is the resolver's output: one IdentityGroup per connected
// component, plus the Finding stream with each Finding's Identity field
// populated.
type Result struct {
	Groups   []IdentityGroup
	Findings []finding.Finding
}

type keyTracker struct {
	distinctLines int
	lastLine      int64
	firstIndex    int
	haveFirst     bool
}

// Resolve runs the full identity-resolution algorithm against src.
//
// Findings must be delivered by src in non-decreasing line-number order
// (the extraction stage's contract); distinct-line counting for the
// frequency pass relies on this to stay within O(V+N) memory instead of
// materializing a full line set per value.
func Resolve(src Source, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lineIndex, err := buildLineIndex(src)
	if err != nil {
		return nil, errors.Wrap(err, "building line index")
	}

	cfg.logger().Debug("line index built", zap.Int("distinct_lines", lineIndex.Len()))

	if lineIndex.Len() == 0 {
		return &Result{}, nil
	}

	maxOccurrences := int(math.Floor(cfg.MaxFrequencyPct / 100 * float64(lineIndex.Len())))

	qualifying, err := frequencyPass(src, cfg, maxOccurrences)
	if err != nil {
		return nil, errors.Wrap(err, "frequency pass")
	}

	cfg.logger().Debug("frequency pass complete",
		zap.Int("qualifying_values", len(qualifying)),
		zap.Int("max_occurrences", maxOccurrences),
	)

	ds := NewDisjointSet(lineIndex.Len())

	if err := unionPass(src, cfg, lineIndex, qualifying, ds); err != nil {
		return nil, errors.Wrap(err, "union pass")
	}

	if !cfg.FastMode {
		if err := unionPass(src, cfg, lineIndex, qualifying, ds); err != nil {
			return nil, errors.Wrap(err, "transitive closure pass")
		}
	}

	return materialize(src, lineIndex, ds)
}

// buildLineIndex makes a single pass over src to collect every distinct
// line number referenced by any Finding.
func buildLineIndex(src Source) (*finding.LineIndex, error) {
	var lines []int64

	err := src.ForEach(func(f finding.Finding) error {
		lines = append(lines, f.Line)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return finding.NewLineIndex(lines), nil
}

// frequencyPass counts, per (category,value) key, the number of distinct
// lines it appears on, using the Finding stream's line-ascending order to
// detect a new line in O(1) extra memory per key rather than keeping a
// full set of lines per key.
func frequencyPass(src Source, cfg Config, maxOccurrences int) (map[finding.ValueKey]struct{}, error) {
	trackers := make(map[finding.ValueKey]*keyTracker)

	err := src.ForEach(func(f finding.Finding) error {
		if !cfg.eligible(f.Type) {
			return nil
		}

		key := finding.ValueKey{Category: f.Type, Value: f.Value}

		t, ok := trackers[key]
		if !ok {
			t = &keyTracker{distinctLines: 1, lastLine: f.Line}
			trackers[key] = t

			return nil
		}

		if t.lastLine != f.Line {
			t.distinctLines++
			t.lastLine = f.Line
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	minOccurrences := cfg.minOccurrences()

	qualifying := make(map[finding.ValueKey]struct{})

	for key, t := range trackers {
		if t.distinctLines < minOccurrences {
			continue
		}

		if t.distinctLines > maxOccurrences {
			continue
		}

		qualifying[key] = struct{}{}
	}

	return qualifying, nil
}

// unionPass streams src once, and for each Finding whose key qualifies,
// unions the line it occurs on with the first line that key was seen on in
// this pass. Run twice (union pass + transitive-closure pass) unless
// FastMode is set; both runs perform the identical first-against-rest
// union, which by itself already closes transitively over chains spanning
// different qualifying values, so the second run is a cheap confirmation
// rather than additional connectivity work.
func unionPass(
	src Source,
	cfg Config,
	lineIndex *finding.LineIndex,
	qualifying map[finding.ValueKey]struct{},
	ds *DisjointSet,
) error {
	firstSeen := make(map[finding.ValueKey]int, len(qualifying))

	return src.ForEach(func(f finding.Finding) error {
		if !cfg.eligible(f.Type) {
			return nil
		}

		key := finding.ValueKey{Category: f.Type, Value: f.Value}
		if _, ok := qualifying[key]; !ok {
			return nil
		}

		idx, ok := lineIndex.Index(f.Line)
		if !ok {
			return errors.Errorf("finding references unknown line %d", f.Line)
		}

		first, seen := firstSeen[key]
		if !seen {
			firstSeen[key] = idx

			return nil
		}

		ds.Union(first, idx)

		return nil
	})
}

// materialize buckets every Finding by the canonical root of its line,
// assigns identity ids by ascending root order, and stamps each Finding
// with its identity.
func materialize(src Source, lineIndex *finding.LineIndex, ds *DisjointSet) (*Result, error) {
	rootOf := make([]int, lineIndex.Len())
	rootSeen := make(map[int]struct{})

	for idx := 0; idx < lineIndex.Len(); idx++ {
		root := ds.Find(idx)
		rootOf[idx] = root
		rootSeen[root] = struct{}{}
	}

	roots := make([]int, 0, len(rootSeen))
	for root := range rootSeen {
		roots = append(roots, root)
	}

	sort.Ints(roots)

	idOf := make(map[int]int, len(roots))
	for i, root := range roots {
		idOf[root] = i + 1
	}

	groups := make([]IdentityGroup, len(roots))
	for i, root := range roots {
		groups[i] = IdentityGroup{ID: idOf[root]}
	}

	var stamped []finding.Finding

	err := src.ForEach(func(f finding.Finding) error {
		idx, ok := lineIndex.Index(f.Line)
		if !ok {
			return errors.Errorf("finding references unknown line %d", f.Line)
		}

		id := idOf[rootOf[idx]]
		f.Identity = identityName(id)

		stamped = append(stamped, f)
		groups[id-1].Findings = append(groups[id-1].Findings, f)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Groups: groups, Findings: stamped}, nil
}

func identityName(id int) string {
	return "Identity_" + strconv.Itoa(id)
}
