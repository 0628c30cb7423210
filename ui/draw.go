// Package ui holds the tiny drawing helpers shared by the HUD, the dialogue
// box, and the menu scenes.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillRect paints a solid rectangle.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeRect paints a 1px rectangle outline.
func StrokeRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

// Panel paints a filled rectangle with a border, the standard menu chrome.
func Panel(dst *ebiten.Image, x, y, w, h float64, fill, border color.Color) {
	FillRect(dst, x, y, w, h, fill)
	StrokeRect(dst, x, y, w, h, border)
}

// Text draws debug-font text with a one-pixel shadow for readability.
func Text(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, x+1, y+1)
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

// TextPlain draws debug-font text without the shadow.
func TextPlain(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

// CenterText draws text horizontally centered on cx. The debug font is 6px
// per glyph.
func CenterText(dst *ebiten.Image, s string, cx, y int) {
	Text(dst, s, cx-len(s)*3, y)
}
