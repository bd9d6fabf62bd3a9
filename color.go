package doodle

import (
	"image/color"
	"math/rand/v2"
)

// Color is an opaque RGB color. Transparency lives on the doodle as a
// separate alpha channel, not on the color itself.
type Color struct {
	R, G, B uint8
}

// The PICO-8 palette: https://pico-8.fandom.com/wiki/Palette
var (
	Black      = Color{0, 0, 0}
	DarkBlue   = Color{29, 43, 83}
	Purple     = Color{126, 37, 83}
	DarkGreen  = Color{0, 135, 81}
	Brown      = Color{171, 82, 54}
	DarkGrey   = Color{95, 87, 79}
	LightGrey  = Color{194, 195, 199}
	White      = Color{255, 241, 232}
	Red        = Color{255, 0, 77}
	Orange     = Color{255, 163, 0}
	Yellow     = Color{255, 236, 39}
	Green      = Color{0, 228, 54}
	Blue       = Color{41, 173, 255}
	Lavender   = Color{131, 118, 156}
	Pink       = Color{255, 119, 168}
	LightPeach = Color{255, 204, 170}
)

// Palette lists every named color above, in declaration order.
var Palette = []Color{
	Black, DarkBlue, Purple, DarkGreen, Brown, DarkGrey, LightGrey, White,
	Red, Orange, Yellow, Green, Blue, Lavender, Pink, LightPeach,
}

// RandomColor returns a uniformly random palette entry drawn from rng.
func RandomColor(rng *rand.Rand) Color {
	return Palette[rng.IntN(len(Palette))]
}

// NRGBA combines the color with an alpha value for use with image/color
// based drawing APIs.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
