package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/finding"
	"github.com/logident/logident/stats"
)

func TestAggregatorEmptyReport(t *testing.T) {
	t.Parallel()

	agg := stats.New()
	report := agg.Report("test.log")

	assert.Equal(t, int64(0), report.Summary.TotalLinesProcessed)
	assert.Equal(t, 0, report.Summary.TotalClassifications)
	assert.Empty(t, report.Categories)
}

func TestAggregatorCountsCategoriesSortedDescending(t *testing.T) {
	t.Parallel()

	agg := stats.New()
	agg.AddLines(3)

	agg.AddFinding(finding.Finding{Type: "ip", Value: "10.0.0.1"})
	agg.AddFinding(finding.Finding{Type: "ip", Value: "10.0.0.2"})
	agg.AddFinding(finding.Finding{Type: "username", Value: "root"})

	report := agg.Report("test.log")

	require.Len(t, report.Categories, 2)
	assert.Equal(t, "ip", report.Categories[0].Category)
	assert.Equal(t, 2, report.Categories[0].Count)
	assert.Equal(t, "username", report.Categories[1].Category)
	assert.Equal(t, 1, report.Categories[1].Count)
	assert.Equal(t, int64(3), report.Summary.TotalLinesProcessed)
	assert.Equal(t, 3, report.Summary.TotalClassifications)
}

func TestAggregatorFiltersNoise(t *testing.T) {
	t.Parallel()

	agg := stats.New()
	agg.AddValue("null")
	agg.AddValue("ab")
	agg.AddValue("root")

	report := agg.Report("")

	require.Len(t, report.Categories, 2)
	assert.Equal(t, "uid", report.Categories[0].Category)
	assert.Equal(t, "username", report.Categories[1].Category)
}

func TestAggregatorPercentageZeroWhenEmpty(t *testing.T) {
	t.Parallel()

	agg := stats.New()
	agg.AddLines(5)

	report := agg.Report("")

	assert.Empty(t, report.Categories)
}

func TestAggregatorPercentagesSumNear100(t *testing.T) {
	t.Parallel()

	agg := stats.New()
	for i := 0; i < 3; i++ {
		agg.AddValue("10.0.0.1")
	}

	agg.AddValue("root")

	report := agg.Report("")

	total := 0.0
	for _, c := range report.Categories {
		total += c.Percentage
	}

	assert.InDelta(t, 100, total, 1)
}
