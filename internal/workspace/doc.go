// Package workspace implements the four-window cooperative desktop: a
// per-window line buffer and state machine, a round-robin scheduler that
// grants one program tick per cycle, the file-creation dialog, and the
// save broadcast that keeps every window's private filesystem showing
// the same directory.
package workspace
