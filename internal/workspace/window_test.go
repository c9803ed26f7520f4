package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/QuadDesk/internal/logging"
	"github.com/GriffinCanCode/QuadDesk/internal/term"
)

func newTestManager(t *testing.T) (*Manager, *term.MemoryScreen) {
	t.Helper()
	s := term.NewMemoryScreen(ScreenCols, ScreenRows)
	return NewManager(s, logging.NewNop()), s
}

func press(m *Manager, code term.KeyCode) {
	m.Key(term.Key{Code: code})
}

func pressRunes(m *Manager, text string) {
	for _, ch := range text {
		m.Key(term.Rune(ch))
	}
}

func bufLine(w *Window, r int) string {
	return string(w.buf.cells[r][:w.buf.lens[r]])
}

func lastOutputLine(w *Window) string {
	for r := WindowHeight - 1; r >= 0; r-- {
		if w.buf.lens[r] > 0 {
			return bufLine(w, r)
		}
	}
	return ""
}

func updateUntil(t *testing.T, m *Manager, w *Window, want Status) {
	t.Helper()
	for i := 0; i < 500; i++ {
		m.Update()
		if w.status == want {
			return
		}
	}
	t.Fatalf("window never reached %v (still %v)", want, w.status)
}

// checkRunInvariant verifies that a window holds an interpreter exactly
// while executing or awaiting input.
func checkRunInvariant(t *testing.T, w *Window) {
	t.Helper()
	holds := w.run != nil
	expects := w.status == StatusExecuting || w.status == StatusAwaitingInput
	require.Equal(t, expects, holds, "run handle does not match status %v", w.status)
}

func TestWindowsStartBrowsingFixtures(t *testing.T) {
	m, _ := newTestManager(t)
	for i := 0; i < NumWindows; i++ {
		w := m.Window(i)
		assert.Equal(t, StatusFiles, w.Status())
		names, err := w.Filesystem().ListDirectory()
		require.NoError(t, err)
		assert.Equal(t, []string{"hello", "nums", "average", "pi"}, names)
	}
}

func TestHighlightClampsToDirectory(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	press(m, term.KeyArrowLeft)
	assert.Equal(t, 0, w.fileIndex)

	for i := 0; i < 10; i++ {
		press(m, term.KeyArrowRight)
	}
	assert.Equal(t, 3, w.fileIndex, "clamped to last entry")

	press(m, term.KeyArrowLeft)
	assert.Equal(t, 2, w.fileIndex)
}

func TestEditLoadsHighlightedFile(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	pressRunes(m, "e")
	assert.Equal(t, StatusEditing, w.Status())
	assert.Equal(t, "hello", w.filename)
	assert.Equal(t, `print("Hello, world!")`, bufLine(w, 0))
	checkRunInvariant(t, w)
}

func TestRunFixtureToCompletion(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	pressRunes(m, "r") // run "hello"
	assert.Equal(t, StatusExecuting, w.Status())
	assert.True(t, w.programRunning)
	checkRunInvariant(t, w)

	updateUntil(t, m, w, StatusOutput)
	assert.False(t, w.programRunning)
	assert.Equal(t, "Hello, world!", bufLine(w, 0))
	checkRunInvariant(t, w)

	// Ticks stop accruing once the program is done.
	got := m.Ticks(0)
	m.Update()
	m.Update()
	assert.Equal(t, got, m.Ticks(0))

	// r dismisses the finished output.
	pressRunes(m, "r")
	assert.Equal(t, StatusFiles, w.Status())
	assert.Equal(t, 0, w.buf.LineLen(0))
}

func TestForcedCloseWhileAwaitingInput(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	press(m, term.KeyArrowRight)
	press(m, term.KeyArrowRight)
	press(m, term.KeyArrowRight) // highlight "pi"
	pressRunes(m, "r")
	updateUntil(t, m, w, StatusAwaitingInput)
	checkRunInvariant(t, w)

	press(m, term.KeyF6)
	assert.Equal(t, StatusFiles, w.Status())
	assert.False(t, w.programRunning)
	checkRunInvariant(t, w)
}

func TestBrowserIgnoresOtherPrintables(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	pressRunes(m, "xyz123")
	assert.Equal(t, StatusFiles, w.Status())
	assert.Equal(t, 0, w.fileIndex)
	assert.Equal(t, 0, w.buf.LineLen(0))
}

func TestOutputStateIgnoresEditingKeys(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	pressRunes(m, "r")
	updateUntil(t, m, w, StatusOutput)
	before := bufLine(w, 0)

	pressRunes(m, "abc")
	press(m, term.KeyArrowRight)
	press(m, term.KeyEnter)
	assert.Equal(t, StatusOutput, w.Status())
	assert.Equal(t, before, bufLine(w, 0))
}

func TestInactiveWindowsUntouchedByKeys(t *testing.T) {
	m, _ := newTestManager(t)

	press(m, term.KeyF2)
	pressRunes(m, "e")
	assert.Equal(t, StatusEditing, m.Window(1).Status())
	assert.Equal(t, StatusFiles, m.Window(0).Status())
	assert.Equal(t, StatusFiles, m.Window(2).Status())
	assert.Equal(t, StatusFiles, m.Window(3).Status())
}

func TestProgramOutputScrollsWindow(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	outputRows := WindowHeight - 1
	for i := 0; i < outputRows; i++ {
		w.printLine("line")
	}
	w.printLine("newest")
	assert.Equal(t, "newest", bufLine(w, outputRows-1))
	assert.Equal(t, "line", bufLine(w, 0))
	assert.Equal(t, 0, w.buf.LineLen(outputRows), "input row stays clear")
}
