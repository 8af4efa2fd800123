package linkcheck

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinkcheck/internal/logfields"
	"git.home.luguber.info/inful/doclinkcheck/internal/metrics"
)

// Checker runs the collector and validator over a documentation tree.
type Checker struct {
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Checker) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithLogger sets the logger used for progress and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewChecker creates a checker. Without options it records no metrics and
// logs through slog.Default.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckFile reads one document and validates its links.
func (c *Checker) CheckFile(docPath string) (Report, error) {
	// #nosec G304 -- docPath comes from CollectDocuments
	content, err := os.ReadFile(docPath)
	if err != nil {
		return Report{}, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to read document").
			Fatal().
			WithContext("document", docPath).
			Build()
	}
	if !utf8.Valid(content) {
		return Report{}, foundationerrors.FileSystemError("document is not valid UTF-8").
			WithContext("document", docPath).
			Build()
	}

	report := ValidateDocument(docPath, normalizeNewlines(string(content)))

	c.recorder.IncDocumentsScanned()
	recordLinkKinds(c.recorder, report.Links)
	for _, broken := range report.Broken {
		c.logger.Debug("Broken link",
			logfields.Document(report.Document),
			logfields.LinkKind(LinkKindLocal.String()),
			logfields.Link(broken.Raw),
			logfields.Target(broken.Target))
	}
	return report, nil
}

// Run checks every document beneath root. A filesystem failure aborts the
// whole run; broken links never do.
func (c *Checker) Run(root string) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := c.logger.With(logfields.RunID(runID))

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	result := &Result{
		RunID:     runID,
		Root:      absRoot,
		RootLabel: filepath.Base(absRoot) + string(filepath.Separator),
		Reports:   []Report{},
	}

	docs, err := CollectDocuments(absRoot)
	if err != nil {
		c.recorder.IncRunOutcome(metrics.OutcomeFailed)
		log.Debug("Document collection failed", logfields.DocsRoot(absRoot), logfields.Error(err))
		return nil, err
	}
	log.Info("Collected documents", logfields.DocsRoot(absRoot), logfields.Documents(len(docs)))

	for _, doc := range docs {
		report, err := c.CheckFile(doc)
		if err != nil {
			c.recorder.IncRunOutcome(metrics.OutcomeFailed)
			log.Debug("Aborting run", logfields.Document(doc), logfields.Error(err))
			return nil, err
		}
		result.DocumentsTotal++
		result.Links.add(report.Links)
		if report.HasBroken() {
			result.Reports = append(result.Reports, report)
		}
	}

	result.Duration = time.Since(start)
	broken := result.BrokenCount()
	c.recorder.AddBrokenLinks(broken)
	c.recorder.ObserveRunDuration(result.Duration)
	if broken > 0 {
		c.recorder.IncRunOutcome(metrics.OutcomeBroken)
	} else {
		c.recorder.IncRunOutcome(metrics.OutcomeClean)
	}

	log.Info("Link check completed",
		logfields.Documents(result.DocumentsTotal),
		logfields.BrokenCount(broken),
		slog.Int("links_local", result.Links.Local),
		slog.Int("links_external", result.Links.External),
		slog.Int("links_empty", result.Links.Empty),
		logfields.DurationMS(float64(result.Duration.Microseconds())/1000))
	return result, nil
}

func recordLinkKinds(r metrics.Recorder, stats LinkStats) {
	r.AddLinksChecked(LinkKindLocal.String(), stats.Local)
	r.AddLinksChecked(LinkKindExternal.String(), stats.External)
	r.AddLinksChecked(LinkKindEmpty.String(), stats.Empty)
}

// normalizeNewlines folds CRLF and bare CR line endings into LF so link
// targets never carry a carriage return.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
