package workspace

import "strings"

// Buffer is one window's fixed character grid with cursor and per-row
// length bookkeeping. The zero rune marks an unused cell. After every
// operation 0 <= cursor <= line length <= WindowWidth holds for the
// current row.
type Buffer struct {
	cells  [WindowHeight][WindowWidth]rune
	lens   [WindowHeight]int
	row    int
	cursor int
}

// Reset clears the whole grid and returns the cursor to the origin.
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Row returns the current row index.
func (b *Buffer) Row() int { return b.row }

// Cursor returns the cursor column within the current row.
func (b *Buffer) Cursor() int { return b.cursor }

// LineLen returns the tracked length of row r.
func (b *Buffer) LineLen(r int) int { return b.lens[r] }

// IsEmpty reports whether row r holds no tracked characters.
func (b *Buffer) IsEmpty(r int) bool { return b.lens[r] == 0 }

// Rune returns the cell at (r, c); 0 means unused.
func (b *Buffer) Rune(r, c int) rune { return b.cells[r][c] }

// Insert places ch at the cursor, shifting the tail of the line right.
// Typing on a full line never truncates: the character starts a new row
// and becomes its first character.
func (b *Buffer) Insert(ch rune) {
	if b.lens[b.row] >= WindowWidth {
		b.Newline()
	}
	r := b.row
	for i := b.lens[r]; i > b.cursor; i-- {
		b.cells[r][i] = b.cells[r][i-1]
	}
	b.cells[r][b.cursor] = ch
	b.lens[r]++
	b.cursor++
}

// Newline moves to the next row, wrapping past the bottom. The
// destination row's length resets; any stale cells from a previous wrap
// remain until the next load clears them.
func (b *Buffer) Newline() {
	b.row = (b.row + 1) % WindowHeight
	b.cursor = 0
	b.lens[b.row] = 0
}

// Backspace removes the character before the cursor, shifting the tail
// left. At column 0 it is a no-op; lines never join.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	r := b.row
	for i := b.cursor - 1; i < b.lens[r]-1; i++ {
		b.cells[r][i] = b.cells[r][i+1]
	}
	b.lens[r]--
	b.cells[r][b.lens[r]] = 0
	b.cursor--
}

// MoveLeft moves the cursor one column left, stopping at 0.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one column right, stopping at the end of
// the line.
func (b *Buffer) MoveRight() {
	if b.cursor < b.lens[b.row] {
		b.cursor++
	}
}

// MoveUp moves to the previous row, clamping the cursor to its length.
func (b *Buffer) MoveUp() {
	if b.row == 0 {
		return
	}
	b.row--
	if b.cursor > b.lens[b.row] {
		b.cursor = b.lens[b.row]
	}
}

// MoveDown moves to the next row unless it is empty, clamping the
// cursor to its length.
func (b *Buffer) MoveDown() {
	if b.row == WindowHeight-1 {
		return
	}
	if b.lens[b.row+1] == 0 {
		return
	}
	b.row++
	if b.cursor > b.lens[b.row] {
		b.cursor = b.lens[b.row]
	}
}

// Load replaces the grid with text split on newlines, clipped to the
// grid in both directions, and homes the cursor.
func (b *Buffer) Load(text string) {
	b.Reset()
	for r, line := range strings.Split(text, "\n") {
		if r >= WindowHeight {
			break
		}
		b.setLine(r, line)
	}
}

// SetLine overwrites row r with text, clipped to the row width.
func (b *Buffer) SetLine(r int, text string) {
	b.setLine(r, text)
}

func (b *Buffer) setLine(r int, text string) {
	n := 0
	for _, ch := range text {
		if n >= WindowWidth {
			break
		}
		b.cells[r][n] = ch
		n++
	}
	for i := n; i < WindowWidth; i++ {
		b.cells[r][i] = 0
	}
	b.lens[r] = n
}

// ScrollUp shifts rows 1..limit-1 up by one and blanks row limit-1,
// discarding row 0.
func (b *Buffer) ScrollUp(limit int) {
	for r := 0; r < limit-1; r++ {
		b.cells[r] = b.cells[r+1]
		b.lens[r] = b.lens[r+1]
	}
	b.cells[limit-1] = [WindowWidth]rune{}
	b.lens[limit-1] = 0
}

// Serialize joins the non-empty rows with newline separators, without a
// trailing separator. Rows that would push the result past max bytes
// are dropped rather than reported as an error.
func (b *Buffer) Serialize(max int) string {
	var sb strings.Builder
	first := true
	for r := 0; r < WindowHeight; r++ {
		if b.lens[r] == 0 {
			continue
		}
		line := string(b.cells[r][:b.lens[r]])
		need := len(line)
		if !first {
			need++
		}
		if sb.Len()+need > max {
			break
		}
		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		first = false
	}
	return sb.String()
}
