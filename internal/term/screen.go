package term

// Color is one of the cell colors the display supports.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
)

// Screen is a fixed character-cell grid addressed by (column, row).
// Writes outside the grid are discarded.
type Screen interface {
	SetCell(col, row int, ch rune, fg, bg Color)
	Size() (cols, rows int)
	Clear()
	Flush()
}

// Print writes text horizontally starting at (col, row), clipped to the
// right edge of the grid.
func Print(s Screen, col, row int, text string, fg, bg Color) {
	cols, rows := s.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, ch := range text {
		if col >= cols {
			return
		}
		if col >= 0 {
			s.SetCell(col, row, ch, fg, bg)
		}
		col++
	}
}

// ClearRow blanks an entire row.
func ClearRow(s Screen, row int) {
	ClearRowFrom(s, 0, row)
}

// ClearRowFrom blanks a row starting at col.
func ClearRowFrom(s Screen, col, row int) {
	cols, _ := s.Size()
	for ; col < cols; col++ {
		s.SetCell(col, row, ' ', ColorDefault, ColorDefault)
	}
}
