// Package metrics provides observability hooks for link check runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never need nil checks. When a metrics file is
// requested, PrometheusRecorder collects into its own registry and
// WriteTextfile dumps it in the node_exporter textfile collector format, which
// suits a one-shot CI job that has no scrape endpoint.
package metrics
