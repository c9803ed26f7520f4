package workspace

// Screen layout. The right-hand column past the window region shows the
// per-window CPU tick counters; row 0 is the status/dialog line.
const (
	ScreenCols = 80
	ScreenRows = 25

	NumWindows = 4

	// WindowWidth and WindowHeight are the text grid dimensions of one
	// window, borders excluded.
	WindowWidth  = 33
	WindowHeight = 10

	statusRow   = 0
	counterCol  = 71
	fileListGap = 10 // directory entries per column slot
)

// windowOrigins holds the top-left content cell of each window.
var windowOrigins = [NumWindows][2]int{
	{1, 2},
	{36, 2},
	{1, 14},
	{36, 14},
}
