// Package palette holds the shared color vocabulary and the pure color-space
// helpers used by the tile and sprite painters.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// UI chrome colors.
var (
	PanelBG     = color.RGBA{24, 26, 38, 235}
	PanelBorder = color.RGBA{90, 96, 130, 255}
	TextMain    = color.RGBA{232, 232, 240, 255}
	TextDim     = color.RGBA{150, 152, 168, 255}
	TextAccent  = color.RGBA{255, 214, 102, 255}
	TextDanger  = color.RGBA{235, 92, 92, 255}
	TextGood    = color.RGBA{110, 220, 130, 255}
	CursorBG    = color.RGBA{58, 64, 96, 255}
	DimOverlay  = color.RGBA{0, 0, 0, 140}
)

// ErrorFill marks unknown tile or sprite identifiers. Loud on purpose.
var ErrorFill = color.RGBA{255, 0, 255, 255}

// Skin, hair, and eye tone tables indexed by sprite palette variant id.
var (
	SkinTones = []color.RGBA{
		{237, 195, 155, 255},
		{214, 166, 122, 255},
		{178, 126, 86, 255},
		{128, 86, 56, 255},
		{92, 60, 40, 255},
	}
	HairTones = []color.RGBA{
		{40, 32, 28, 255},
		{100, 60, 25, 255},
		{168, 120, 58, 255},
		{214, 196, 120, 255},
		{120, 120, 130, 255},
		{180, 70, 50, 255},
	}
	EyeTones = []color.RGBA{
		{30, 20, 15, 255},
		{50, 70, 120, 255},
		{40, 90, 50, 255},
	}
)

// FromHex parses "#rrggbb" (or "rrggbb") into an RGBA color.
// Malformed input returns the error fill rather than an error; a bad color
// constant should be visible, not fatal.
func FromHex(hex string) color.RGBA {
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ErrorFill
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// ToHex renders c as "#rrggbb".
func ToHex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// ToHSL converts c to hue [0,360), saturation and lightness [0,1].
func ToHSL(c color.RGBA) (h, s, l float64) {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return cf.Hsl()
}

// FromHSL converts hue/saturation/lightness back to RGBA.
func FromHSL(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Shade shifts brightness by pct in RGB space, clamped per channel.
// pct 0.25 lightens by 25%, -0.25 darkens by 25%. Alpha is preserved.
func Shade(c color.RGBA, pct float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(c.R) * (1 + pct)),
		G: clampChannel(float64(c.G) * (1 + pct)),
		B: clampChannel(float64(c.B) * (1 + pct)),
		A: c.A,
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
