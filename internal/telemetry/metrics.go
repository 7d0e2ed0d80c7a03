package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts tape activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	records      *prometheus.CounterVec
	passes       prometheus.Counter
	passDuration prometheus.Histogram
	tapeLength   prometheus.Gauge
}

// NewMetrics creates the tape collectors and registers them on reg.
// Registering twice on the same registerer panics, like promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gradtape_records_total",
			Help: "Operations appended to autodiff tapes, by operation.",
		}, []string{"op"}),
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gradtape_reverse_passes_total",
			Help: "Reverse passes run by autodiff tapes.",
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gradtape_reverse_pass_duration_seconds",
			Help:    "Duration of reverse passes.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		tapeLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gradtape_tape_length",
			Help: "Records on the tape at the start of the latest reverse pass.",
		}),
	}
	reg.MustRegister(m.records, m.passes, m.passDuration, m.tapeLength)
	return m
}

// ObserveRecord counts one appended operation.
func (m *Metrics) ObserveRecord(op string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(op).Inc()
}

// ObservePass records a finished reverse pass over tapeLen records.
func (m *Metrics) ObservePass(elapsed time.Duration, tapeLen int) {
	if m == nil {
		return
	}
	m.passes.Inc()
	m.passDuration.Observe(elapsed.Seconds())
	m.tapeLength.Set(float64(tapeLen))
}
