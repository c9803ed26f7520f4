package term

// KeyCode identifies a decoded, non-printable key. Printable characters
// arrive as KeyRune with the rune in Key.Ch.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyBackspace
	KeyEsc
)

// Key is one decoded keyboard event.
type Key struct {
	Code KeyCode
	Ch   rune
}

// Rune wraps a printable character as a Key.
func Rune(ch rune) Key {
	return Key{Code: KeyRune, Ch: ch}
}

// Printable reports whether ch can be placed in a display cell.
func Printable(ch rune) bool {
	return ch >= ' ' && ch != 0x7f
}
