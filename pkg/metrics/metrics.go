// Package metrics exports session activity to Prometheus and serves it over
// HTTP alongside a health check.
package metrics

import (
	"strconv"

	"github.com/grovetools/wordpad/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "wordpad"

// Recorder counts dispatched actions and clipboard outcomes. It implements
// session.Observer and owns its registry, so several recorders can coexist
// in one process.
type Recorder struct {
	registry  *prometheus.Registry
	actions   *prometheus.CounterVec
	clipboard *prometheus.CounterVec
}

// NewRecorder creates a recorder with Go runtime and process collectors
// registered next to the wordpad metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Actions dispatched to the session store.",
			},
			[]string{"action", "changed"},
		),
		clipboard: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clipboard_writes_total",
				Help:      "Clipboard writes by result.",
			},
			[]string{"result"},
		),
	}
	r.registry.MustRegister(
		r.actions,
		r.clipboard,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ActionDispatched implements session.Observer. Unrecognized tags share the
// "unknown" label.
func (r *Recorder) ActionDispatched(t session.ActionType, changed bool) {
	label := string(t)
	if !t.Known() {
		label = "unknown"
	}
	r.actions.WithLabelValues(label, strconv.FormatBool(changed)).Inc()
}

// ClipboardWritten implements session.Observer.
func (r *Recorder) ClipboardWritten(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.clipboard.WithLabelValues(result).Inc()
}

// TrackStore exports the statistics of the store's current text as gauges.
// Call it once per store.
func (r *Recorder) TrackStore(st *session.Store) {
	r.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "text_words",
			Help:      "Words in the current text.",
		}, func() float64 { return float64(st.Stats().Words) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "text_characters",
			Help:      "Characters in the current text.",
		}, func() float64 { return float64(st.Stats().Characters) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "text_reading_minutes",
			Help:      "Estimated reading time of the current text.",
		}, func() float64 { return float64(st.Stats().ReadingMinutes) }),
	)
}

// Registry returns the registry the recorder's collectors live in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
