package linkcheck

import "time"

// LinkKind classifies an inline link target.
type LinkKind int

const (
	// LinkKindLocal is a relative or absolute filesystem path; the only kind that gets resolved.
	LinkKindLocal LinkKind = iota
	// LinkKindExternal is an http, https or mailto target.
	LinkKindExternal
	// LinkKindEmpty is blank once the fragment is removed, e.g. "#section".
	LinkKindEmpty
)

// String returns the label used in logs and metrics.
func (k LinkKind) String() string {
	switch k {
	case LinkKindLocal:
		return "local"
	case LinkKindExternal:
		return "external"
	case LinkKindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// BrokenLink is a local link that resolved to nothing on disk.
type BrokenLink struct {
	Raw    string // Link target exactly as written, fragment included
	Target string // Absolute resolved path the link was checked against
}

// LinkStats counts the inline links seen in one or more documents.
type LinkStats struct {
	External int
	Empty    int
	Local    int
}

// Total returns the number of links counted.
func (s LinkStats) Total() int {
	return s.External + s.Empty + s.Local
}

func (s *LinkStats) add(other LinkStats) {
	s.External += other.External
	s.Empty += other.Empty
	s.Local += other.Local
}

func (s *LinkStats) count(kind LinkKind) {
	switch kind {
	case LinkKindExternal:
		s.External++
	case LinkKindEmpty:
		s.Empty++
	default:
		s.Local++
	}
}

// Report holds the broken links of a single document, in the order they appear.
type Report struct {
	Document string
	Broken   []BrokenLink
	Links    LinkStats
}

// HasBroken returns true if the document has at least one broken link.
func (r Report) HasBroken() bool {
	return len(r.Broken) > 0
}

// Result aggregates a full run over a documentation tree.
type Result struct {
	RunID string
	// Root is the absolute documentation root that was scanned.
	Root string
	// RootLabel is how the root is named in human-readable output, e.g. "docs/".
	RootLabel      string
	DocumentsTotal int
	// Reports holds only documents with broken links, in collection order.
	Reports  []Report
	Links    LinkStats
	Duration time.Duration
}

// BrokenCount returns the total number of broken links across all documents.
func (r *Result) BrokenCount() int {
	count := 0
	for _, report := range r.Reports {
		count += len(report.Broken)
	}
	return count
}

// HasBroken returns true if any broken link was found.
func (r *Result) HasBroken() bool {
	return r.BrokenCount() > 0
}

// Label returns RootLabel, falling back to Root.
func (r *Result) Label() string {
	if r.RootLabel != "" {
		return r.RootLabel
	}
	return r.Root
}
