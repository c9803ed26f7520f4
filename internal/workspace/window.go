package workspace

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/QuadDesk/internal/blockdev"
	"github.com/GriffinCanCode/QuadDesk/internal/interp"
	"github.com/GriffinCanCode/QuadDesk/internal/logging"
	"github.com/GriffinCanCode/QuadDesk/internal/monitoring"
	"github.com/GriffinCanCode/QuadDesk/internal/storage"
	"github.com/GriffinCanCode/QuadDesk/internal/term"
)

// Window is one of the four document/program slots. Each window
// exclusively owns its buffer, its filesystem instance, and (while a
// program exists) its interpreter; nothing is shared across windows
// except the explicit save broadcast performed by the Manager.
type Window struct {
	index     int
	originCol int
	originRow int

	buf     Buffer
	status  Status
	active  bool
	notice  string

	fileIndex      int
	filename       string
	programRunning bool
	outputRow      int

	inputLine   []rune
	inputCursor int

	fs  *storage.FileSystem
	run *run // non-nil iff status is StatusExecuting or StatusAwaitingInput

	log     *logging.Logger
	metrics *monitoring.Metrics
}

func newWindow(index int, log *logging.Logger) *Window {
	w := &Window{
		index:     index,
		originCol: windowOrigins[index][0],
		originRow: windowOrigins[index][1],
		fs:        storage.New(blockdev.New()),
		status:    StatusFiles,
		log:       log,
	}
	if err := seedFixtures(w.fs); err != nil {
		log.Warn("fixture seeding failed", zap.Int("window", index), zap.Error(err))
	}
	return w
}

// Status returns the window's current mode.
func (w *Window) Status() Status { return w.status }

// Filesystem returns the window's private filesystem.
func (w *Window) Filesystem() *storage.FileSystem { return w.fs }

// key handles one event for the active window. The Manager only routes
// here when the dialog is closed and this window is active.
func (w *Window) key(k term.Key) {
	switch w.status {
	case StatusFiles:
		w.browseKey(k)
	case StatusEditing:
		w.editKey(k)
	case StatusAwaitingInput:
		w.inputKey(k)
	case StatusOutput:
		if k.Code == term.KeyRune && k.Ch == 'r' {
			w.closeToFiles()
		}
	}
}

func (w *Window) browseKey(k term.Key) {
	switch k.Code {
	case term.KeyArrowLeft, term.KeyArrowUp:
		if w.fileIndex > 0 {
			w.fileIndex--
		}
	case term.KeyArrowRight, term.KeyArrowDown:
		names, err := w.fs.ListDirectory()
		if err == nil && w.fileIndex < len(names)-1 {
			w.fileIndex++
		}
	case term.KeyRune:
		switch k.Ch {
		case 'e':
			w.openForEdit()
		case 'r':
			w.runHighlighted()
		}
	}
}

func (w *Window) editKey(k term.Key) {
	switch k.Code {
	case term.KeyRune:
		if term.Printable(k.Ch) {
			w.buf.Insert(k.Ch)
		}
	case term.KeyEnter:
		w.buf.Newline()
	case term.KeyBackspace:
		w.buf.Backspace()
	case term.KeyArrowLeft:
		w.buf.MoveLeft()
	case term.KeyArrowRight:
		w.buf.MoveRight()
	case term.KeyArrowUp:
		w.buf.MoveUp()
	case term.KeyArrowDown:
		w.buf.MoveDown()
	}
}

func (w *Window) inputKey(k term.Key) {
	switch k.Code {
	case term.KeyRune:
		if term.Printable(k.Ch) && len(w.inputLine) < WindowWidth {
			w.inputLine = append(w.inputLine, 0)
			copy(w.inputLine[w.inputCursor+1:], w.inputLine[w.inputCursor:])
			w.inputLine[w.inputCursor] = k.Ch
			w.inputCursor++
		}
	case term.KeyBackspace:
		if w.inputCursor > 0 {
			copy(w.inputLine[w.inputCursor-1:], w.inputLine[w.inputCursor:])
			w.inputLine = w.inputLine[:len(w.inputLine)-1]
			w.inputCursor--
		}
	case term.KeyArrowLeft:
		if w.inputCursor > 0 {
			w.inputCursor--
		}
	case term.KeyArrowRight:
		if w.inputCursor < len(w.inputLine) {
			w.inputCursor++
		}
	case term.KeyEnter:
		w.submitInput()
	}
}

// submitInput hands the composed line to the program. Delivery happens
// on the window's next scheduled tick, not here.
func (w *Window) submitInput() {
	if w.run == nil {
		return
	}
	w.run.queueInput(string(w.inputLine))
	w.inputLine = w.inputLine[:0]
	w.inputCursor = 0
	w.status = StatusExecuting
}

func (w *Window) openForEdit() {
	name, ok := w.highlightedFile()
	if !ok {
		return
	}
	content, err := w.readFile(name)
	if err != nil {
		w.notice = "open failed: " + name
		w.log.Warn("open failed", zap.Int("window", w.index), zap.String("file", name), zap.Error(err))
		return
	}
	w.buf.Load(content)
	w.filename = name
	w.status = StatusEditing
}

func (w *Window) runHighlighted() {
	name, ok := w.highlightedFile()
	if !ok {
		return
	}
	content, err := w.readFile(name)
	if err != nil {
		w.notice = "open failed: " + name
		w.log.Warn("open failed", zap.Int("window", w.index), zap.String("file", name), zap.Error(err))
		return
	}
	w.buf.Reset()
	w.outputRow = 0
	r, err := newRun(content)
	if err != nil {
		// Parse errors become the program's only output.
		w.printLine("error: " + err.Error())
		w.status = StatusOutput
		return
	}
	w.run = r
	w.programRunning = true
	w.status = StatusExecuting
	w.metrics.ProgramStarted()
	w.log.Info("program started",
		zap.Int("window", w.index),
		zap.String("file", name),
		zap.String("run", r.id))
}

// tickProgram spends this window's scheduled CPU tick.
func (w *Window) tickProgram() {
	if w.run == nil {
		return
	}
	st, err := w.run.step(w)
	if err != nil {
		w.printLine("error: " + err.Error())
		w.log.Warn("program failed", zap.Int("window", w.index), zap.String("run", w.run.id), zap.Error(err))
		w.finishProgram()
		return
	}
	switch st {
	case interp.AwaitInput:
		w.status = StatusAwaitingInput
		w.inputLine = w.inputLine[:0]
		w.inputCursor = 0
	case interp.Finished:
		w.finishProgram()
	}
}

func (w *Window) finishProgram() {
	w.run = nil
	w.programRunning = false
	w.status = StatusOutput
	w.metrics.ProgramFinished()
}

// closeToFiles returns the window to the directory listing, abandoning
// any in-flight program state.
func (w *Window) closeToFiles() {
	if w.run != nil {
		w.metrics.ProgramFinished()
	}
	w.run = nil
	w.programRunning = false
	w.buf.Reset()
	w.outputRow = 0
	w.inputLine = w.inputLine[:0]
	w.inputCursor = 0
	w.filename = ""
	w.notice = ""
	w.status = StatusFiles
}

// Print receives one line of program output (interp.Sink). Lines fill
// the window from the top; when the output area is full everything
// scrolls up by one and the oldest line is lost.
func (w *Window) Print(line string) {
	w.printLine(line)
}

func (w *Window) printLine(line string) {
	outputRows := WindowHeight - 1 // bottom row is the input echo
	if w.outputRow >= outputRows {
		w.buf.ScrollUp(outputRows)
		w.outputRow = outputRows - 1
	}
	w.buf.SetLine(w.outputRow, line)
	w.outputRow++
}

func (w *Window) highlightedFile() (string, bool) {
	names, err := w.fs.ListDirectory()
	if err != nil || len(names) == 0 {
		return "", false
	}
	if w.fileIndex >= len(names) {
		w.fileIndex = len(names) - 1
	}
	return names[w.fileIndex], true
}

// readFile loads a file's whole content. Bytes past the first invalid
// UTF-8 sequence are dropped rather than reported.
func (w *Window) readFile(name string) (string, error) {
	fd, err := w.fs.OpenRead(name)
	if err != nil {
		return "", err
	}
	defer w.fs.Close(fd)
	buf := make([]byte, storage.MaxFileBytes)
	n, err := w.fs.Read(fd, buf)
	if err != nil {
		return "", err
	}
	return validPrefix(buf[:n]), nil
}

func (w *Window) writeFile(name, content string) error {
	fd, err := w.fs.OpenCreate(name)
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}
	if err := w.fs.Write(fd, []byte(content)); err != nil {
		w.fs.Close(fd)
		return fmt.Errorf("write %q: %w", name, err)
	}
	if err := w.fs.Close(fd); err != nil {
		return fmt.Errorf("close %q: %w", name, err)
	}
	return nil
}

func validPrefix(b []byte) string {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return string(b[:i])
		}
		i += size
	}
	return string(b)
}

// render repaints the window: border, then the content for the current
// mode. Rendering happens every cycle regardless of program scheduling.
func (w *Window) render(s term.Screen) {
	w.drawOutline(s)
	switch w.status {
	case StatusFiles:
		w.drawFileList(s)
	case StatusEditing:
		w.drawText(s, true)
	case StatusExecuting, StatusOutput:
		w.drawText(s, false)
	case StatusAwaitingInput:
		w.drawText(s, false)
		w.drawInputLine(s)
	}
}

func (w *Window) drawOutline(s term.Screen) {
	fg, bg := term.ColorWhite, term.ColorDefault
	if w.active {
		fg, bg = term.ColorBlack, term.ColorWhite
	}
	top, bottom := w.originRow-1, w.originRow+WindowHeight
	left, right := w.originCol-1, w.originCol+WindowWidth
	for col := left; col <= right; col++ {
		s.SetCell(col, top, '*', fg, bg)
		s.SetCell(col, bottom, '*', fg, bg)
	}
	for row := top; row <= bottom; row++ {
		s.SetCell(left, row, '*', fg, bg)
		s.SetCell(right, row, '*', fg, bg)
	}
	label := "F" + strconv.Itoa(w.index+1)
	term.Print(s, w.originCol+15, top, label, fg, bg)
}

func (w *Window) drawFileList(s term.Screen) {
	w.clearInterior(s)
	names, err := w.fs.ListDirectory()
	if err != nil {
		return
	}
	for i, name := range names {
		col := w.originCol + (i%3)*fileListGap
		row := w.originRow + i/3
		if row >= w.originRow+WindowHeight {
			break
		}
		if i == w.fileIndex && w.active {
			term.Print(s, col, row, name, term.ColorBlack, term.ColorWhite)
		} else {
			term.Print(s, col, row, name, term.ColorWhite, term.ColorDefault)
		}
	}
	if w.notice != "" {
		term.Print(s, w.originCol, w.originRow+WindowHeight-1, w.notice, term.ColorRed, term.ColorDefault)
	}
}

func (w *Window) drawText(s term.Screen, withCursor bool) {
	for r := 0; r < WindowHeight; r++ {
		for c := 0; c < WindowWidth; c++ {
			ch := w.buf.Rune(r, c)
			if ch == 0 {
				ch = ' '
			}
			s.SetCell(w.originCol+c, w.originRow+r, ch, term.ColorWhite, term.ColorDefault)
		}
	}
	if withCursor {
		ch := w.buf.Rune(w.buf.Row(), w.buf.Cursor())
		if ch == 0 {
			ch = ' '
		}
		s.SetCell(w.originCol+w.buf.Cursor(), w.originRow+w.buf.Row(), ch, term.ColorBlack, term.ColorWhite)
	}
}

func (w *Window) drawInputLine(s term.Screen) {
	row := w.originRow + WindowHeight - 1
	for c := 0; c < WindowWidth; c++ {
		ch := ' '
		if c < len(w.inputLine) {
			ch = w.inputLine[c]
		}
		s.SetCell(w.originCol+c, row, ch, term.ColorWhite, term.ColorDefault)
	}
	ch := ' '
	if w.inputCursor < len(w.inputLine) {
		ch = w.inputLine[w.inputCursor]
	}
	s.SetCell(w.originCol+w.inputCursor, row, ch, term.ColorBlack, term.ColorWhite)
}

func (w *Window) clearInterior(s term.Screen) {
	for r := 0; r < WindowHeight; r++ {
		for c := 0; c < WindowWidth; c++ {
			s.SetCell(w.originCol+c, w.originRow+r, ' ', term.ColorDefault, term.ColorDefault)
		}
	}
}
