package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintClipsAtRightEdge(t *testing.T) {
	s := NewMemoryScreen(10, 3)
	Print(s, 7, 1, "hello", ColorWhite, ColorDefault)
	assert.Equal(t, "       hel", s.Line(1))
	assert.Equal(t, 'h', s.CellAt(7, 1).Ch)
	assert.Equal(t, 'l', s.CellAt(9, 1).Ch)
}

func TestPrintOffGridIsDiscarded(t *testing.T) {
	s := NewMemoryScreen(10, 3)
	Print(s, 0, 5, "below", ColorWhite, ColorDefault)
	Print(s, -2, 0, "abc", ColorWhite, ColorDefault)
	assert.Equal(t, 'c', s.CellAt(0, 0).Ch, "negative start clips the left part")
	assert.Equal(t, "", s.Line(1))
}

func TestClearRowFrom(t *testing.T) {
	s := NewMemoryScreen(10, 2)
	Print(s, 0, 0, "0123456789", ColorWhite, ColorDefault)
	ClearRowFrom(s, 6, 0)
	assert.Equal(t, "012345", s.Line(0))
}

func TestPrintable(t *testing.T) {
	assert.True(t, Printable('a'))
	assert.True(t, Printable(' '))
	assert.False(t, Printable('\t'))
	assert.False(t, Printable(rune(0x7f)))
	assert.False(t, Printable(rune(0)))
}
