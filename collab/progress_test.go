package collab_test

import (
	"testing"

	"github.com/logident/logident/collab"
)

func TestProgressReporterAdvanceAndStop(t *testing.T) {
	t.Parallel()

	r := collab.NewProgressReporter(map[string]int64{"extract": 100})
	r.Advance("extract", 50)
	r.Advance("unknown-stage", 1)
	r.Stop()
}
