package term

import (
	"github.com/nsf/termbox-go"
)

// TermboxScreen renders to the terminal through termbox. termbox.Init
// must have been called before any method is used.
type TermboxScreen struct{}

// NewTermboxScreen returns the terminal-backed screen.
func NewTermboxScreen() *TermboxScreen {
	return &TermboxScreen{}
}

func (s *TermboxScreen) SetCell(col, row int, ch rune, fg, bg Color) {
	cols, rows := termbox.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	termbox.SetCell(col, row, ch, attr(fg), attr(bg))
}

func (s *TermboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (s *TermboxScreen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (s *TermboxScreen) Flush() {
	termbox.Flush()
}

func attr(c Color) termbox.Attribute {
	switch c {
	case ColorBlack:
		return termbox.ColorBlack
	case ColorWhite:
		return termbox.ColorWhite
	case ColorRed:
		return termbox.ColorRed
	default:
		return termbox.ColorDefault
	}
}

// Decode translates a termbox key event into a Key. The second return
// value is false for events the workspace does not consume.
func Decode(ev termbox.Event) (Key, bool) {
	if ev.Type != termbox.EventKey {
		return Key{}, false
	}
	switch ev.Key {
	case termbox.KeyF1:
		return Key{Code: KeyF1}, true
	case termbox.KeyF2:
		return Key{Code: KeyF2}, true
	case termbox.KeyF3:
		return Key{Code: KeyF3}, true
	case termbox.KeyF4:
		return Key{Code: KeyF4}, true
	case termbox.KeyF5:
		return Key{Code: KeyF5}, true
	case termbox.KeyF6:
		return Key{Code: KeyF6}, true
	case termbox.KeyArrowUp:
		return Key{Code: KeyArrowUp}, true
	case termbox.KeyArrowDown:
		return Key{Code: KeyArrowDown}, true
	case termbox.KeyArrowLeft:
		return Key{Code: KeyArrowLeft}, true
	case termbox.KeyArrowRight:
		return Key{Code: KeyArrowRight}, true
	case termbox.KeyEnter:
		return Key{Code: KeyEnter}, true
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return Key{Code: KeyBackspace}, true
	case termbox.KeyEsc:
		return Key{Code: KeyEsc}, true
	case termbox.KeySpace:
		return Rune(' '), true
	}
	if ev.Ch != 0 && Printable(ev.Ch) {
		return Rune(ev.Ch), true
	}
	return Key{}, false
}
