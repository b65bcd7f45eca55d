package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorGray
	ColorSky
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
)
