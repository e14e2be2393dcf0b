package core

// Color is a semantic foreground colour for a screen cell. The terminal
// host decides how each one is actually painted.
type Color uint8

// Predefined colours. The Dim variants are used for translucent elements
// such as clouds and the secondary ground line.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorWhite
	ColorBlack
	ColorSlate
	ColorSlateLight
	ColorGray
	ColorGrayDark
	ColorNavy
	ColorSilver
	ColorDimWhite
	ColorDimBlack
)
