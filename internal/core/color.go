package core

// Color is the foreground color of a screen cell. Frontends map it to
// ANSI 256-color codes or to RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorBeige
	ColorGold
)
