package workspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/QuadDesk/internal/storage"
	"github.com/GriffinCanCode/QuadDesk/internal/term"
)

// startSpin plants a long-running program directly in the window so
// scheduling can be observed without driving it through the keyboard.
func startSpin(t *testing.T, w *Window) {
	t.Helper()
	r, err := newRun("i := 0\nwhile (i < 100000) { i := (i + 1) }")
	require.NoError(t, err)
	w.run = r
	w.programRunning = true
	w.status = StatusExecuting
}

func readFileIn(t *testing.T, w *Window, name string) string {
	t.Helper()
	content, err := w.readFile(name)
	require.NoError(t, err)
	return content
}

func TestRoundRobinRotation(t *testing.T) {
	m, _ := newTestManager(t)
	startSpin(t, m.Window(0))
	startSpin(t, m.Window(2))
	startSpin(t, m.Window(3))

	// Two full rotations, one tick per cycle, in window order.
	order := []int{0, 2, 3, 0, 2, 3}
	want := [NumWindows]uint64{}
	for _, idx := range order {
		m.Update()
		want[idx]++
		for i := 0; i < NumWindows; i++ {
			assert.Equal(t, want[i], m.Ticks(i), "after granting window %d", idx)
		}
	}
}

func TestSchedulerSkipsBlockedWindows(t *testing.T) {
	m, _ := newTestManager(t)
	startSpin(t, m.Window(0))
	startSpin(t, m.Window(1))
	startSpin(t, m.Window(2))
	for i := 0; i < 6; i++ {
		m.Update()
	}

	// Window 1 blocks on input and must stop consuming CPU.
	m.Window(1).status = StatusAwaitingInput
	before := m.Ticks(1)
	sum := m.Ticks(0) + m.Ticks(2)
	for i := 0; i < 8; i++ {
		m.Update()
	}
	assert.Equal(t, before, m.Ticks(1))
	assert.Equal(t, sum+8, m.Ticks(0)+m.Ticks(2), "every cycle still grants one tick")
}

func TestIdleCyclesGrantNothing(t *testing.T) {
	m, _ := newTestManager(t)
	for i := 0; i < 5; i++ {
		m.Update()
	}
	for i := 0; i < NumWindows; i++ {
		assert.Zero(t, m.Ticks(i))
	}
}

func TestModalSeizesKeyboard(t *testing.T) {
	m, _ := newTestManager(t)
	press(m, term.KeyF5)
	require.True(t, m.ModalOpen())

	pressRunes(m, "er")
	press(m, term.KeyArrowRight)
	press(m, term.KeyArrowDown)
	press(m, term.KeyEnter) // submits "er", which is a valid name

	// No window left browsing mode and no highlight moved; the e, r and
	// arrow events went to the dialog, not to any window.
	for i := 0; i < NumWindows; i++ {
		w := m.Window(i)
		assert.Equal(t, StatusFiles, w.Status())
		assert.Equal(t, 0, w.fileIndex)
		assert.Equal(t, 0, w.buf.LineLen(0))
	}
	assert.False(t, m.ModalOpen())
	for i := 0; i < NumWindows; i++ {
		assert.Contains(t, readNames(t, m.Window(i)), "er")
	}
}

func readNames(t *testing.T, w *Window) []string {
	t.Helper()
	names, err := w.fs.ListDirectory()
	require.NoError(t, err)
	return names
}

func TestModalEscCancels(t *testing.T) {
	m, _ := newTestManager(t)
	press(m, term.KeyF5)
	pressRunes(m, "draft")
	press(m, term.KeyEsc)

	assert.False(t, m.ModalOpen())
	for i := 0; i < NumWindows; i++ {
		assert.NotContains(t, readNames(t, m.Window(i)), "draft")
	}
}

func TestModalIgnoresEmptyName(t *testing.T) {
	m, _ := newTestManager(t)
	press(m, term.KeyF5)
	press(m, term.KeyEnter)
	assert.True(t, m.ModalOpen(), "empty name does not submit")
	press(m, term.KeyEsc)
}

func TestModalCreatesInEveryWindow(t *testing.T) {
	m, _ := newTestManager(t)
	press(m, term.KeyF5)
	pressRunes(m, "notes")
	press(m, term.KeyEnter)

	require.False(t, m.ModalOpen())
	for i := 0; i < NumWindows; i++ {
		w := m.Window(i)
		names := readNames(t, w)
		require.Len(t, names, 5)
		assert.Equal(t, "notes", names[4])
		assert.Equal(t, "", readFileIn(t, w, "notes"))
	}
}

func TestModalStaysOpenOnCreateError(t *testing.T) {
	m, _ := newTestManager(t)
	w0 := m.Window(0)
	existing := len(readNames(t, w0))
	for i := existing; i < storage.MaxFiles; i++ {
		fd, err := w0.fs.OpenCreate(fmt.Sprintf("pad%d", i))
		require.NoError(t, err)
		require.NoError(t, w0.fs.Close(fd))
	}

	press(m, term.KeyF5)
	pressRunes(m, "zz")
	press(m, term.KeyEnter)

	assert.True(t, m.ModalOpen(), "failed creation keeps the dialog open")
	assert.NotEmpty(t, m.modal.message)
	for i := 0; i < NumWindows; i++ {
		assert.NotContains(t, readNames(t, m.Window(i)), "zz")
	}
	assert.Len(t, readNames(t, w0), storage.MaxFiles, "existing entries survive")

	// The dialog is still usable after the error.
	press(m, term.KeyBackspace)
	press(m, term.KeyBackspace)
	press(m, term.KeyEsc)
	assert.False(t, m.ModalOpen())
}

func TestCloseSavesToEveryWindow(t *testing.T) {
	m, _ := newTestManager(t)
	press(m, term.KeyF5)
	pressRunes(m, "notes")
	press(m, term.KeyEnter)

	press(m, term.KeyF2)
	for i := 0; i < 4; i++ {
		press(m, term.KeyArrowRight) // highlight "notes"
	}
	pressRunes(m, "e")
	w1 := m.Window(1)
	require.Equal(t, StatusEditing, w1.Status())

	pressRunes(m, "first line")
	press(m, term.KeyEnter)
	pressRunes(m, "second")
	press(m, term.KeyF6)

	assert.Equal(t, StatusFiles, w1.Status())
	assert.Equal(t, "", w1.filename)
	for i := 0; i < NumWindows; i++ {
		assert.Equal(t, "first line\nsecond", readFileIn(t, m.Window(i), "notes"),
			"window %d sees the broadcast save", i)
	}
}

func TestCloseWithoutEditingSavesNothing(t *testing.T) {
	m, _ := newTestManager(t)
	press(m, term.KeyF6)
	assert.Equal(t, StatusFiles, m.Window(0).Status())
	assert.Equal(t, `print("Hello, world!")`, readFileIn(t, m.Window(1), "hello"))
}

func TestAverageSessionEndToEnd(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	press(m, term.KeyArrowRight)
	press(m, term.KeyArrowRight) // highlight "average"
	pressRunes(m, "r")
	require.Equal(t, StatusExecuting, w.Status())

	updateUntil(t, m, w, StatusAwaitingInput)
	assert.Equal(t, "Enter a number:", bufLine(w, 0))

	pressRunes(m, "5")
	press(m, term.KeyEnter)
	assert.Equal(t, StatusExecuting, w.Status())

	updateUntil(t, m, w, StatusAwaitingInput)
	pressRunes(m, "quit")
	press(m, term.KeyEnter)

	updateUntil(t, m, w, StatusOutput)
	assert.Equal(t, "5", lastOutputLine(w))
	assert.Nil(t, w.run)

	pressRunes(m, "r")
	assert.Equal(t, StatusFiles, w.Status())
}

func TestInputLineEditing(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)

	press(m, term.KeyArrowRight)
	press(m, term.KeyArrowRight)
	pressRunes(m, "r")
	updateUntil(t, m, w, StatusAwaitingInput)

	// Compose "quit" the hard way: typos, cursor moves, corrections.
	pressRunes(m, "qit")
	press(m, term.KeyArrowLeft)
	press(m, term.KeyArrowLeft)
	pressRunes(m, "u")
	assert.Equal(t, "quit", string(w.inputLine))

	press(m, term.KeyBackspace)
	assert.Equal(t, "qit", string(w.inputLine))
	pressRunes(m, "u")
	press(m, term.KeyEnter)

	updateUntil(t, m, w, StatusOutput)
	assert.Equal(t, "error: division by zero", lastOutputLine(w))
}

func TestStatusLineAndCounters(t *testing.T) {
	m, s := newTestManager(t)
	m.Update()

	assert.Contains(t, s.Line(statusRow), "F1-F4 window")
	for i := 0; i < NumWindows; i++ {
		assert.Contains(t, s.Line(2*i), fmt.Sprintf("F%d", i+1))
		assert.Contains(t, s.Line(2*i+1), "0")
	}

	press(m, term.KeyF5)
	pressRunes(m, "abc")
	m.Update()
	assert.Contains(t, s.Line(statusRow), "New file: abc_")
}

func TestParseErrorShowsInWindow(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.Window(0)
	writeFileIn(t, w, "broken", "x :=")

	for i := 0; i < 10; i++ {
		press(m, term.KeyArrowRight)
	}
	pressRunes(m, "r")
	assert.Equal(t, StatusOutput, w.Status())
	assert.False(t, w.programRunning)
	assert.Contains(t, bufLine(w, 0), "error:")
}

func writeFileIn(t *testing.T, w *Window, name, content string) {
	t.Helper()
	fd, err := w.fs.OpenCreate(name)
	require.NoError(t, err)
	require.NoError(t, w.fs.Write(fd, []byte(content)))
	require.NoError(t, w.fs.Close(fd))
}
