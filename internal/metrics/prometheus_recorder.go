package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	reg              *prom.Registry
	documentsScanned prom.Counter
	linksChecked     *prom.CounterVec
	brokenLinks      prom.Counter
	runDuration      prom.Histogram
	runOutcomes      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.documentsScanned = prom.NewCounter(prom.CounterOpts{
			Namespace: "doclinkcheck",
			Name:      "documents_scanned_total",
			Help:      "Markdown documents scanned for links",
		})
		pr.linksChecked = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doclinkcheck",
			Name:      "links_checked_total",
			Help:      "Inline links found, by classification",
		}, []string{"kind"})
		pr.brokenLinks = prom.NewCounter(prom.CounterOpts{
			Namespace: "doclinkcheck",
			Name:      "broken_links_total",
			Help:      "Local links that did not resolve to a file or directory",
		})
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "doclinkcheck",
			Name:      "run_duration_seconds",
			Help:      "Duration of a full documentation tree check",
			Buckets:   prom.DefBuckets,
		})
		pr.runOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doclinkcheck",
			Name:      "run_outcomes_total",
			Help:      "Check runs by final outcome",
		}, []string{"outcome"})
		reg.MustRegister(pr.documentsScanned, pr.linksChecked, pr.brokenLinks, pr.runDuration, pr.runOutcomes)
	})
	return pr
}

// Registry returns the registry the recorder's collectors are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.reg
}

func (p *PrometheusRecorder) IncDocumentsScanned() {
	if p == nil || p.documentsScanned == nil {
		return
	}
	p.documentsScanned.Inc()
}

func (p *PrometheusRecorder) AddLinksChecked(kind string, n int) {
	if p == nil || p.linksChecked == nil || n <= 0 {
		return
	}
	p.linksChecked.WithLabelValues(kind).Add(float64(n))
}

func (p *PrometheusRecorder) AddBrokenLinks(n int) {
	if p == nil || p.brokenLinks == nil || n <= 0 {
		return
	}
	p.brokenLinks.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil || p.runOutcomes == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}
