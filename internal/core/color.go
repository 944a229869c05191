package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI codes or RGBA values.
type Color uint8

// Predefined colors for arena elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorOrange
	ColorGray
)
