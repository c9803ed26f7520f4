package workspace

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/QuadDesk/internal/logging"
	"github.com/GriffinCanCode/QuadDesk/internal/monitoring"
	"github.com/GriffinCanCode/QuadDesk/internal/storage"
	"github.com/GriffinCanCode/QuadDesk/internal/term"
)

// Manager owns the four windows and multiplexes the keyboard and the
// CPU across them. Update and Key are called from a single goroutine
// and each runs to completion before the next event is accepted.
type Manager struct {
	windows [NumWindows]*Window
	active  int
	ticks   [NumWindows]uint64

	// rr is the persistent rotation cursor over the runnable set.
	rr int

	modal  *Modal
	notice string

	screen  term.Screen
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// NewManager creates the four windows, each seeded with the fixture
// programs in its own filesystem.
func NewManager(screen term.Screen, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNop()
	}
	m := &Manager{screen: screen, log: log}
	for i := range m.windows {
		m.windows[i] = newWindow(i, log)
	}
	return m
}

// WithMetrics adds metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	for _, w := range m.windows {
		w.metrics = metrics
	}
	return m
}

// Window returns window i.
func (m *Manager) Window(i int) *Window { return m.windows[i] }

// Active returns the active window index.
func (m *Manager) Active() int { return m.active }

// Ticks returns the CPU ticks granted to window i so far.
func (m *Manager) Ticks(i int) uint64 { return m.ticks[i] }

// ModalOpen reports whether the file-creation dialog is open.
func (m *Manager) ModalOpen() bool { return m.modal != nil }

// Update runs one cycle: repaint every window, then grant exactly one
// CPU tick to the next runnable program in rotation. Windows blocked on
// input are skipped and consume nothing.
func (m *Manager) Update() {
	for i, w := range m.windows {
		w.active = i == m.active
		w.render(m.screen)
	}
	m.drawStatusLine()
	m.drawCounters()

	runnable := m.runnable()
	if len(runnable) == 0 {
		return
	}
	idx := runnable[m.rr%len(runnable)]
	m.rr++
	m.windows[idx].tickProgram()
	m.ticks[idx]++
	m.metrics.TickWindow(idx)
}

// Key routes one keyboard event: to the dialog when it is open,
// otherwise to window selection, dialog/close chords, or the active
// window.
func (m *Manager) Key(k term.Key) {
	m.metrics.Key()
	m.notice = ""
	if m.modal != nil {
		if m.modal.key(k, m.createEverywhere) {
			m.modal = nil
		}
		return
	}
	switch k.Code {
	case term.KeyF1:
		m.active = 0
	case term.KeyF2:
		m.active = 1
	case term.KeyF3:
		m.active = 2
	case term.KeyF4:
		m.active = 3
	case term.KeyF5:
		m.modal = newModal()
	case term.KeyF6:
		m.closeActive()
	default:
		m.windows[m.active].key(k)
	}
}

func (m *Manager) runnable() []int {
	var r []int
	for i, w := range m.windows {
		if w.programRunning && w.status != StatusAwaitingInput {
			r = append(r, i)
		}
	}
	return r
}

// closeActive returns the active window to its directory listing. A
// window that was editing a known file saves first, into every window's
// filesystem, so all directories keep presenting the same files.
func (m *Manager) closeActive() {
	w := m.windows[m.active]
	if w.status == StatusEditing && w.filename != "" {
		content := w.buf.Serialize(storage.MaxFileBytes)
		if err := m.saveEverywhere(w.filename, content); err != nil {
			m.notice = "save failed: " + err.Error()
			m.log.Warn("save failed", zap.String("file", w.filename), zap.Error(err))
		} else {
			m.metrics.Save()
			m.log.Info("file saved", zap.String("file", w.filename), zap.Int("bytes", len(content)))
		}
	}
	w.closeToFiles()
}

func (m *Manager) saveEverywhere(name, content string) error {
	for _, w := range m.windows {
		if err := w.writeFile(name, content); err != nil {
			return err
		}
	}
	return nil
}

// createEverywhere creates an empty file in every window's filesystem.
// The first failure aborts and is reported to the dialog; existing
// entries are never touched.
func (m *Manager) createEverywhere(name string) error {
	for _, w := range m.windows {
		fd, err := w.fs.OpenCreate(name)
		if err != nil {
			return err
		}
		if err := w.fs.Close(fd); err != nil {
			return err
		}
	}
	m.metrics.FileCreated()
	m.log.Info("file created", zap.String("file", name))
	return nil
}

func (m *Manager) drawCounters() {
	for i := range m.windows {
		term.Print(m.screen, counterCol, 2*i, "F"+strconv.Itoa(i+1), term.ColorWhite, term.ColorDefault)
		count := strconv.FormatUint(m.ticks[i], 10)
		term.ClearRowFrom(m.screen, counterCol, 2*i+1)
		term.Print(m.screen, counterCol, 2*i+1, count, term.ColorWhite, term.ColorDefault)
	}
}

func (m *Manager) drawStatusLine() {
	if m.modal != nil {
		m.modal.render(m.screen)
		return
	}
	term.ClearRow(m.screen, statusRow)
	if m.notice != "" {
		term.Print(m.screen, 1, statusRow, m.notice, term.ColorRed, term.ColorDefault)
		return
	}
	help := "F1-F4 window  F5 new file  F6 close  e edit  r run"
	term.Print(m.screen, 1, statusRow, help, term.ColorWhite, term.ColorDefault)
}
