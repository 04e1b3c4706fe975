package core

// Color represents a foreground color for a screen cell.
// The tui platform maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the runner renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)
