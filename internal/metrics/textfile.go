package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
)

// WriteTextfile writes every metric gathered from reg to path in the Prometheus
// text exposition format. The file is replaced atomically.
func WriteTextfile(path string, reg *prom.Registry) error {
	if reg == nil {
		return foundationerrors.InternalError("metrics registry is nil").Build()
	}
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return foundationerrors.ReportError("failed to write metrics file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
