package google

import (
	"github.com/teemow/meetfewer/internal/instrumentation"
)

// metricsRecorder records OAuth outcomes. The zero value of Metrics is a
// no-op, so the package works without instrumentation attached.
var metricsRecorder = &instrumentation.Metrics{}

// SetMetrics attaches a metrics recorder to the OAuth helpers. Passing nil
// resets to the no-op recorder.
func SetMetrics(m *instrumentation.Metrics) {
	if m == nil {
		m = &instrumentation.Metrics{}
	}
	metricsRecorder = m
}
