package workspace

// Status is the mode one window is in.
type Status int

const (
	// StatusFiles shows the directory listing (initial state).
	StatusFiles Status = iota
	// StatusEditing edits a loaded file.
	StatusEditing
	// StatusExecuting runs a program.
	StatusExecuting
	// StatusAwaitingInput composes an input line for a suspended program.
	StatusAwaitingInput
	// StatusOutput shows the output of a finished program.
	StatusOutput
)

func (s Status) String() string {
	switch s {
	case StatusFiles:
		return "files"
	case StatusEditing:
		return "editing"
	case StatusExecuting:
		return "executing"
	case StatusAwaitingInput:
		return "awaiting-input"
	case StatusOutput:
		return "output"
	}
	return "unknown"
}
