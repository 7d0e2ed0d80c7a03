package autodiff

import (
	"github.com/born-ml/gradtape/internal/telemetry"
)

// Option configures a Tape.
type Option func(*options)

type options struct {
	duplicateIDs bool
	recording    bool
	metrics      *telemetry.Metrics
}

func defaultOptions() options {
	return options{
		duplicateIDs: false,
		recording:    true,
		metrics:      nil,
	}
}

// WithDuplicateIDs allows NamedVar to reuse a name already present on the tape.
// Gradients of nodes sharing an id are then merged (summed) by the reverse pass.
func WithDuplicateIDs(allow bool) Option {
	return func(o *options) {
		o.duplicateIDs = allow
	}
}

// WithRecording sets the initial recording state (on by default).
func WithRecording(recording bool) Option {
	return func(o *options) {
		o.recording = recording
	}
}

// WithMetrics reports appended records and reverse passes to m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
