package workspace

import (
	"github.com/GriffinCanCode/QuadDesk/internal/storage"
	"github.com/GriffinCanCode/QuadDesk/internal/term"
)

// Modal is the file-creation dialog. While it is open every keyboard
// event routes here and no window state changes.
type Modal struct {
	name    []rune
	message string
}

func newModal() *Modal {
	return &Modal{}
}

// key processes one event. create is called on Enter with the composed
// name; a non-nil error keeps the dialog open and shows the message.
// The return value reports whether the dialog is finished.
func (d *Modal) key(k term.Key, create func(string) error) bool {
	switch k.Code {
	case term.KeyEnter:
		if len(d.name) == 0 {
			return false
		}
		if err := create(string(d.name)); err != nil {
			d.message = err.Error()
			return false
		}
		return true
	case term.KeyEsc:
		return true
	case term.KeyBackspace:
		if n := len(d.name); n > 0 {
			d.name = d.name[:n-1]
		}
		d.message = ""
	case term.KeyRune:
		if term.Printable(k.Ch) && len(d.name) < storage.MaxFilenameLen {
			d.name = append(d.name, k.Ch)
		}
		d.message = ""
	}
	return false
}

// render echoes the typed name and any error on the status line.
func (d *Modal) render(s term.Screen) {
	term.ClearRow(s, statusRow)
	text := "New file: " + string(d.name) + "_"
	term.Print(s, 1, statusRow, text, term.ColorWhite, term.ColorDefault)
	if d.message != "" {
		term.Print(s, len(text)+3, statusRow, d.message, term.ColorRed, term.ColorDefault)
	}
}
