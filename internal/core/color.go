package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

// Palette used by the terminal renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDim
	ColorSteel
	ColorCyan
	ColorYellow
	ColorRed
)
