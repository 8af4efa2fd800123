package metrics

import "time"

// OutcomeLabel enumerates run outcome categories for counters.
type OutcomeLabel string

const (
	OutcomeClean  OutcomeLabel = "clean"
	OutcomeBroken OutcomeLabel = "broken"
	OutcomeFailed OutcomeLabel = "failed"
)

// Recorder defines observability hooks for a link check run.
type Recorder interface {
	IncDocumentsScanned()
	AddLinksChecked(kind string, n int)
	AddBrokenLinks(n int)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncDocumentsScanned() {}
func (NoopRecorder) AddLinksChecked(string, int) {}
func (NoopRecorder) AddBrokenLinks(int) {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel) {}
