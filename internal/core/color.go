package core

// Color is the foreground color of a screen cell.
type Color uint8

// Colors used by the sprites.
const (
	ColorDefault Color = iota
	ColorBrightYellow
)
