// Package monitoring exposes Prometheus metrics for the workspace:
// per-window CPU ticks, key events, saves, and program lifecycle counts.
package monitoring

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors. A nil *Metrics is valid and
// records nothing, so callers never need to branch.
type Metrics struct {
	WindowTicks      *prometheus.CounterVec
	KeysTotal        prometheus.Counter
	SavesTotal       prometheus.Counter
	FilesCreated     prometheus.Counter
	ProgramsStarted  prometheus.Counter
	ProgramsFinished prometheus.Counter
	ProgramsRunning  prometheus.Gauge
}

// New creates and registers the metrics collectors.
func New() *Metrics {
	return &Metrics{
		WindowTicks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quaddesk_window_ticks_total",
				Help: "CPU ticks granted to each window's program",
			},
			[]string{"window"},
		),
		KeysTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quaddesk_keys_total",
			Help: "Keyboard events processed",
		}),
		SavesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quaddesk_saves_total",
			Help: "File save broadcasts performed",
		}),
		FilesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quaddesk_files_created_total",
			Help: "Files created through the new-file dialog",
		}),
		ProgramsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quaddesk_programs_started_total",
			Help: "Programs launched",
		}),
		ProgramsFinished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quaddesk_programs_finished_total",
			Help: "Programs that ran to completion or were closed",
		}),
		ProgramsRunning: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "quaddesk_programs_running",
			Help: "Programs currently running",
		}),
	}
}

// TickWindow records one CPU tick granted to window index w.
func (m *Metrics) TickWindow(w int) {
	if m == nil {
		return
	}
	m.WindowTicks.WithLabelValues(strconv.Itoa(w)).Inc()
}

// Key records one processed keyboard event.
func (m *Metrics) Key() {
	if m == nil {
		return
	}
	m.KeysTotal.Inc()
}

// Save records one save broadcast.
func (m *Metrics) Save() {
	if m == nil {
		return
	}
	m.SavesTotal.Inc()
}

// FileCreated records one successful file creation.
func (m *Metrics) FileCreated() {
	if m == nil {
		return
	}
	m.FilesCreated.Inc()
}

// ProgramStarted records a program launch.
func (m *Metrics) ProgramStarted() {
	if m == nil {
		return
	}
	m.ProgramsStarted.Inc()
	m.ProgramsRunning.Inc()
}

// ProgramFinished records a program ending for any reason.
func (m *Metrics) ProgramFinished() {
	if m == nil {
		return
	}
	m.ProgramsFinished.Inc()
	m.ProgramsRunning.Dec()
}
