package core

// Color represents a foreground color for a screen cell.
// The platform maps these onto ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorGray
)

// countColors follows the classic minesweeper palette for 1-8.
var countColors = [...]Color{
	ColorDefault,
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorMagenta,
	ColorBrightRed,
	ColorCyan,
	ColorWhite,
	ColorGray,
}

// CountColor returns the color used to draw an adjacent-mine count.
func CountColor(n int) Color {
	if n < 0 || n >= len(countColors) {
		return ColorDefault
	}
	return countColors[n]
}
