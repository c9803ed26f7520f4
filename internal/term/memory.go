package term

import "strings"

// Cell is one character cell of a MemoryScreen.
type Cell struct {
	Ch rune
	Fg Color
	Bg Color
}

// MemoryScreen is an in-memory Screen for tests.
type MemoryScreen struct {
	cols, rows int
	cells      [][]Cell
}

// NewMemoryScreen creates a blank cols x rows screen.
func NewMemoryScreen(cols, rows int) *MemoryScreen {
	s := &MemoryScreen{cols: cols, rows: rows}
	s.Clear()
	return s
}

func (s *MemoryScreen) SetCell(col, row int, ch rune, fg, bg Color) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	s.cells[row][col] = Cell{Ch: ch, Fg: fg, Bg: bg}
}

func (s *MemoryScreen) Size() (int, int) {
	return s.cols, s.rows
}

func (s *MemoryScreen) Clear() {
	s.cells = make([][]Cell, s.rows)
	for r := range s.cells {
		s.cells[r] = make([]Cell, s.cols)
		for c := range s.cells[r] {
			s.cells[r][c] = Cell{Ch: ' '}
		}
	}
}

func (s *MemoryScreen) Flush() {}

// CellAt returns the cell at (col, row).
func (s *MemoryScreen) CellAt(col, row int) Cell {
	return s.cells[row][col]
}

// Line returns row as a right-trimmed string.
func (s *MemoryScreen) Line(row int) string {
	var sb strings.Builder
	for _, c := range s.cells[row] {
		if c.Ch == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(c.Ch)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Contains reports whether any row contains text.
func (s *MemoryScreen) Contains(text string) bool {
	for r := 0; r < s.rows; r++ {
		if strings.Contains(s.Line(r), text) {
			return true
		}
	}
	return false
}
