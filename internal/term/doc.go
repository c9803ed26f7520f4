// Package term provides the character-cell display and keyboard surface.
//
// The workspace draws through the Screen interface and receives decoded
// Key events; the termbox-backed implementations live here so that the
// rest of the system never touches the terminal directly. A MemoryScreen
// is provided for tests.
package term
