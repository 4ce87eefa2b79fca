package core

import "image/color"

// Color represents a foreground color for a screen cell or a shape.
// Terminals map it to ANSI codes, pixel surfaces use RGBA.
type Color uint8

// Predefined colors for game elements.
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
)

var palette = [...]color.RGBA{
	ColorDefault:       {200, 200, 200, 255},
	ColorRed:           {205, 49, 49, 255},
	ColorGreen:         {13, 188, 121, 255},
	ColorYellow:        {229, 229, 16, 255},
	ColorBlue:          {36, 114, 200, 255},
	ColorMagenta:       {188, 63, 188, 255},
	ColorCyan:          {17, 168, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {241, 76, 76, 255},
	ColorBrightGreen:   {35, 209, 139, 255},
	ColorBrightYellow:  {245, 245, 67, 255},
	ColorBrightBlue:    {59, 142, 234, 255},
	ColorBrightMagenta: {214, 112, 214, 255},
	ColorBrightCyan:    {41, 184, 219, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
}

// RGBA returns the color scaled by alpha (0..1) as premultiplied RGBA.
func (c Color) RGBA(alpha float64) color.RGBA {
	base := palette[ColorDefault]
	if int(c) < len(palette) {
		base = palette[c]
	}
	a := ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(255 * a),
	}
}
