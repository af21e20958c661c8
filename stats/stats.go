// Package stats aggregates classification counts across a run for
// reporting: total lines processed, total classifications, and a
// per-category breakdown sorted by count descending.
package stats

import (
	"sort"

	"github.com/logident/logident/classify"
	"github.com/logident/logident/finding"
)

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary is the top-level counters section of the stats report.
type Summary struct {
	TotalLinesProcessed int64  `json:"total_lines_processed"`
	TotalClassifications int   `json:"total_classifications"`
	Source               string `json:"source"`
}

// Report is the full statistics aggregator output.
type Report struct {
	Summary    Summary         `json:"summary"`
	Categories []CategoryCount `json:"categories"`
}

// Aggregator accumulates classification counts across a run.
type Aggregator struct {
	totalLines   int64
	categoryHits map[string]int
}

// New builds an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{categoryHits: make(map[string]int)}
}

// AddLine records that one more line was seen by the extractor, whether
// or not it produced any Findings.
func (a *Aggregator) AddLine() {
	a.totalLines++
}

// AddLines records n additional lines seen by the extractor.
func (a *Aggregator) AddLines(n int64) {
	a.totalLines += n
}

// AddFinding re-classifies a Finding's value through the pattern registry
// and counts every category it belongs to, applying the noise filter
// (values under 3 characters, or the literal tokens "null"/"true"/"false",
// are excluded from classification).
func (a *Aggregator) AddFinding(f finding.Finding) {
	a.AddValue(f.Value)
}

// AddValue re-classifies value and counts every matching category, subject
// to the same noise filter as AddFinding.
func (a *Aggregator) AddValue(value string) {
	if finding.IsNoise(value) {
		return
	}

	for _, category := range classify.Classify(value) {
		a.categoryHits[category]++
	}
}

// Report builds the final Report, sorted by count descending (ties broken
// by category name for determinism) with source recorded as-is.
func (a *Aggregator) Report(source string) Report {
	total := 0
	for _, c := range a.categoryHits {
		total += c
	}

	categories := make([]CategoryCount, 0, len(a.categoryHits))

	for category, count := range a.categoryHits {
		categories = append(categories, CategoryCount{
			Category:   category,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}

		return categories[i].Category < categories[j].Category
	})

	return Report{
		Summary: Summary{
			TotalLinesProcessed:  a.totalLines,
			TotalClassifications: total,
			Source:               source,
		},
		Categories: categories,
	}
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(int(100*float64(count)/float64(total)+0.5)) // round(100 * count / total)
}
