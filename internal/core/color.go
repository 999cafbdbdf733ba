package core

// Color names the palette entry a shape or cell is drawn with.
// Frontends map it to ANSI colors (terminal) or RGBA (desktop).
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow        // bee body
	ColorGreen         // flower stems
	ColorMagenta       // flower heads
	ColorCyan          // debug outlines
	ColorWhite         // score
	ColorGray          // status line, playfield frame
)
