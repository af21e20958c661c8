package collab

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// ProgressReporter renders run progress to stderr, the out-of-scope
// "progress-bar rendering" collaborator. It is write-only and carries no
// data the core packages depend on.
type ProgressReporter struct {
	writer   progress.Writer
	trackers map[string]*progress.Tracker
}

// NewProgressReporter builds a reporter with one tracker per named stage
// (e.g. "extract", "resolve"), each sized to its expected unit count.
func NewProgressReporter(stages map[string]int64) *ProgressReporter {
	w := progress.NewWriter()
	w.SetOutputWriter(os.Stderr)
	w.SetAutoStop(true)
	w.SetTrackerLength(30)
	w.SetUpdateFrequency(200 * time.Millisecond)
	w.Style().Visibility.Percentage = true
	w.Style().Visibility.ETA = true

	trackers := make(map[string]*progress.Tracker, len(stages))

	for name, total := range stages {
		t := &progress.Tracker{Message: name, Total: total}
		trackers[name] = t
		w.AppendTracker(t)
	}

	go w.Render()

	return &ProgressReporter{writer: w, trackers: trackers}
}

// Advance increments the named stage's tracker by delta units. Unknown
// stage names are ignored.
func (r *ProgressReporter) Advance(stage string, delta int64) {
	if t, ok := r.trackers[stage]; ok {
		t.Increment(delta)
	}
}

// Stop finalizes all trackers.
func (r *ProgressReporter) Stop() {
	r.writer.Stop()
}
