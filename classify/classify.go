// Package classify exposes the classification and per-line extraction
// stages on top of the pattern registry: classify(value) -> set<category>,
// and extract_all(line) -> list<(category,value)> with DNS-inside-email
// span exclusion already applied by the registry's extractors.
package classify

import (
	"github.com/logident/logident/pattern"
)

// Classify runs every registered validator against value and returns the
// matching category names, sorted. Classify("") always returns nil, and
// Classify is idempotent: Classify(s) called twice returns equal slices.
func Classify(value string) []string {
	return pattern.Default.Classify(value)
}

// Extraction is a single category/value pair extracted from a line, plus
// the byte span it was found at.
type Extraction struct {
	Category string
	Value    string
	Start    int
	End      int
}

// ExtractAll runs every category's extractor against line in registration
// order, skipping any category named in exclude. Most extractors only
// produce values their own validator also accepts, so Category ∈
// Classify(Value) holds for them. The exceptions: ip reports dotted quads
// verbatim without checking each octet's range, mac also reports bare
// 12-hex-digit runs (which the validator rejects), and username reports
// values taken from SSH phrases or a JSON "host" field without checking
// them against the username rule.
func ExtractAll(line string, exclude map[string]bool) []Extraction {
	matches := pattern.Default.ExtractAll(line, exclude)

	out := make([]Extraction, 0, len(matches))

	for _, m := range matches {
		out = append(out, Extraction{
			Category: m.Category,
			Value:    m.Match.Value,
			Start:    m.Match.Start,
			End:      m.Match.End,
		})
	}

	return out
}
