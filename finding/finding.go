// Package finding holds the types shared across the extraction,
// classification, and resolver stages: the Finding record itself, the
// composite key used to group Findings by category+value, and the
// dense line-number index the resolver builds its disjoint-set over.
package finding

import "sort"

// Finding is a single (line, timestamp, category, value) tuple produced by
// extraction. Identity is populated only after the resolver assigns a
// Finding to an identity group.
type Finding struct {
	Line      int64  `json:"line"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Identity  string `json:"identity,omitempty"`
}

// ValueKey is the composite (category, value) key findings are grouped by
// for frequency counting and unioning.
type ValueKey struct {
	Category string
	Value    string
}

// String renders the key in the "<category>:<value>" form used as a map
// key and in log fields.
func (k ValueKey) String() string {
	return k.Category + ":" + k.Value
}

// IsNoise reports whether value is excluded from classification: shorter
// than 3 characters, or one of the literal tokens "null", "true", "false".
func IsNoise(value string) bool {
	if len(value) < 3 {
		return true
	}

	switch value {
	case "null", "true", "false":
		return true
	}

	return false
}

// LineIndex is a bijection between observed line numbers and dense
// 0..N-1 integers, built once per resolver run from the distinct line
// numbers appearing in a Finding stream.
type LineIndex struct {
	lineToIndex map[int64]int
	indexToLine []int64
}

// NewLineIndex builds a LineIndex over the distinct values in lines,
// assigning indices in ascending line-number order.
func NewLineIndex(lines []int64) *LineIndex {
	seen := make(map[int64]struct{}, len(lines))

	distinct := make([]int64, 0, len(lines))

	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}

		seen[l] = struct{}{}

		distinct = append(distinct, l)
	}

	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	li := &LineIndex{
		lineToIndex: make(map[int64]int, len(distinct)),
		indexToLine: distinct,
	}

	for i, l := range distinct {
		li.lineToIndex[l] = i
	}

	return li
}

// Index returns the dense index for a line number.
func (li *LineIndex) Index(line int64) (int, bool) {
	idx, ok := li.lineToIndex[line]

	return idx, ok
}

// Line returns the original line number for a dense index.
func (li *LineIndex) Line(index int) int64 {
	return li.indexToLine[index]
}

// Len returns the number of distinct lines in the index.
func (li *LineIndex) Len() int {
	return len(li.indexToLine)
}
