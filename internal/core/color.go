package core

// Color is a color tag carried by drawable entities.
// Hosts map tags to whatever their output supports; the terminal host uses
// ANSI 256-color codes.
type Color uint8

// Color tags. Values are stable because they are persisted in snapshots.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// BrickPalette is the ring palette used for generated brick layouts,
// innermost ring first.
var BrickPalette = []Color{
	ColorBrightCyan,
	ColorCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorMagenta,
	ColorOrange,
}

// Valid reports whether c is a known color tag.
func (c Color) Valid() bool {
	return c < colorCount
}

// Bright returns the highlighted variant of a base color.
// Colors without a bright variant are returned unchanged.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + (ColorBrightRed - ColorRed)
	}
	return c
}
