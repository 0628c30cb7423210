package sprite

import (
	"image"
	"image/color"

	"venturequest/palette"
)

// All body-part geometry below is expressed on a 16x16 art grid and scaled up
// to the requested sprite size. The grid rows are fixed:
//
//	rows  1-6  head (hair back, skin, face, hair front)
//	rows  7-11 torso and arms
//	rows 12-14 legs
//	row   15   feet
const artGrid = 16

// canvas wraps an RGBA image with the art-grid scale factor.
type canvas struct {
	img   *image.RGBA
	scale int
}

// cell fills a rectangle given in art-grid units.
func (cv canvas) cell(x, y, w, h int, c color.RGBA) {
	for yy := y * cv.scale; yy < (y+h)*cv.scale; yy++ {
		for xx := x * cv.scale; xx < (x+w)*cv.scale; xx++ {
			if image.Pt(xx, yy).In(cv.img.Bounds()) {
				cv.img.SetRGBA(xx, yy, c)
			}
		}
	}
}

// Paint composes one sprite frame into a plain RGBA image. Pure: identical
// arguments always produce identical pixels. Back-to-front order is cloak,
// outline, torso, arms, legs, head, hat, accessory.
func Paint(arch Archetype, pal Palette, facing Facing, frame int, moving bool, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scale := size / artGrid
	if scale < 1 {
		scale = 1
	}
	cv := canvas{img: img, scale: scale}

	desc, ok := archetypes[arch]
	if !ok {
		// Unknown archetype: loud magenta silhouette, never a crash.
		cv.cell(4, 2, 8, 13, palette.ErrorFill)
		return img
	}

	// Vertical bob: raised on the off-step frames while walking.
	bob := 0
	if moving && frame%2 == 1 {
		bob = -1
	}

	bx := (artGrid - desc.build) / 2 // left edge of the torso

	if desc.cloak && facing != FacingUp {
		drawCloak(cv, desc, bx, bob, pal)
	}
	drawOutline(cv, desc, bx, bob, pal)
	drawTorso(cv, desc, bx, bob, facing, pal)
	drawArms(cv, desc, bx, bob, facing, frame, moving, pal)
	drawLegs(cv, desc, bx, frame, moving, pal)
	drawHead(cv, desc, bob, facing, pal)
	if desc.cloak && facing == FacingUp {
		drawCloak(cv, desc, bx, bob, pal)
	}
	drawHat(cv, desc, bob, facing, pal)
	drawAccessory(cv, desc, bx, bob, facing, pal)

	return img
}

func drawCloak(cv canvas, desc descriptor, bx, bob int, pal Palette) {
	cv.cell(bx-1, 7+bob, desc.build+2, 7, pal.OutfitDark)
}

// drawOutline lays a dark silhouette one art pixel beyond the torso and head
// so the sprite separates from same-hued tiles.
func drawOutline(cv canvas, desc descriptor, bx, bob int, pal Palette) {
	// Head, then torso.
	cv.cell(4, 1+bob, 8, 6, pal.Outline)
	cv.cell(bx-1, 7+bob, desc.build+2, 5, pal.Outline)
}

func drawTorso(cv canvas, desc descriptor, bx, bob int, facing Facing, pal Palette) {
	cv.cell(bx, 7+bob, desc.build, 5, pal.Outfit)
	// A lit edge on the left reads as volume.
	cv.cell(bx, 7+bob, 1, 5, pal.OutfitLite)
	if desc.apron && facing != FacingUp {
		cv.cell(bx+1, 9+bob, desc.build-2, 3, pal.Trim)
	}
}

func drawArms(cv canvas, desc descriptor, bx, bob int, facing Facing, frame int, moving bool, pal Palette) {
	swing := 0
	if moving {
		// Arms counter-swing the legs.
		switch frame & 3 {
		case 1:
			swing = 1
		case 3:
			swing = -1
		}
	}
	switch facing {
	case FacingLeft:
		cv.cell(bx-1, 8+bob+swing, 1, 4, pal.OutfitDark)
	case FacingRight:
		cv.cell(bx+desc.build, 8+bob+swing, 1, 4, pal.OutfitDark)
	default:
		cv.cell(bx-1, 8+bob+swing, 1, 4, pal.OutfitDark)
		cv.cell(bx+desc.build, 8+bob-swing, 1, 4, pal.OutfitDark)
	}
	// Hands.
	if facing != FacingUp {
		cv.cell(bx-1, 11+bob+swing, 1, 1, pal.Skin)
		cv.cell(bx+desc.build, 11+bob-swing, 1, 1, pal.Skin)
	}
}

func drawLegs(cv canvas, desc descriptor, bx, frame int, moving bool, pal Palette) {
	legW := desc.build/2 - 1
	if legW < 1 {
		legW = 1
	}
	lx := bx + 1
	rx := bx + desc.build - 1 - legW

	lOff, rOff := 0, 0
	if moving {
		// 4-phase alternation: neutral, left forward, neutral, right forward.
		switch frame & 3 {
		case 1:
			lOff, rOff = -1, 0
		case 3:
			lOff, rOff = 0, -1
		}
	}
	cv.cell(lx, 12+lOff, legW, 3, pal.OutfitDark)
	cv.cell(rx, 12+rOff, legW, 3, pal.OutfitDark)
	// Feet.
	cv.cell(lx, 15+lOff, legW, 1, pal.Outline)
	cv.cell(rx, 15+rOff, legW, 1, pal.Outline)
}

func drawHead(cv canvas, desc descriptor, bob int, facing Facing, pal Palette) {
	// Hair back layer.
	if desc.hair == hairLong {
		cv.cell(4, 2+bob, 8, 6, pal.Hair)
	}

	// Skin.
	cv.cell(5, 2+bob, 6, 5, pal.Skin)
	cv.cell(5, 6+bob, 6, 1, pal.SkinShade)

	// Face.
	switch facing {
	case FacingDown:
		cv.cell(6, 4+bob, 1, 1, pal.Eye)
		cv.cell(9, 4+bob, 1, 1, pal.Eye)
	case FacingLeft:
		cv.cell(6, 4+bob, 1, 1, pal.Eye)
	case FacingRight:
		cv.cell(9, 4+bob, 1, 1, pal.Eye)
	case FacingUp:
		// Back of the head: hair covers the face region.
		cv.cell(5, 2+bob, 6, 5, pal.Hair)
	}

	// Hair front layer.
	switch desc.hair {
	case hairShort:
		cv.cell(5, 2+bob, 6, 1, pal.Hair)
	case hairSpiky:
		cv.cell(5, 2+bob, 6, 1, pal.Hair)
		cv.cell(5, 1+bob, 1, 1, pal.Hair)
		cv.cell(7, 1+bob, 2, 1, pal.Hair)
		cv.cell(10, 1+bob, 1, 1, pal.Hair)
	case hairLong:
		cv.cell(5, 2+bob, 6, 1, pal.Hair)
		cv.cell(4, 3+bob, 1, 5, pal.Hair)
		cv.cell(11, 3+bob, 1, 5, pal.Hair)
	case hairBun:
		cv.cell(5, 2+bob, 6, 1, pal.Hair)
		cv.cell(7, 1+bob, 2, 1, pal.Hair)
	case hairBald:
		cv.cell(5, 2+bob, 6, 1, pal.SkinShade)
	}
}

func drawHat(cv canvas, desc descriptor, bob int, facing Facing, pal Palette) {
	switch desc.hat {
	case hatCap:
		cv.cell(5, 1+bob, 6, 2, pal.OutfitDark)
		if facing == FacingDown {
			cv.cell(5, 3+bob, 7, 1, pal.OutfitDark) // brim
		}
	case hatHood:
		cv.cell(4, 1+bob, 8, 3, pal.OutfitDark)
		cv.cell(4, 3+bob, 1, 4, pal.OutfitDark)
		cv.cell(11, 3+bob, 1, 4, pal.OutfitDark)
	case hatHelmet:
		cv.cell(4, 1+bob, 8, 3, pal.Trim)
		cv.cell(4, 3+bob, 1, 3, pal.Trim)
		cv.cell(11, 3+bob, 1, 3, pal.Trim)
	case hatPointed:
		cv.cell(7, 0+bob, 2, 1, pal.Outfit)
		cv.cell(6, 1+bob, 4, 1, pal.Outfit)
		cv.cell(4, 2+bob, 8, 1, pal.Outfit)
	case hatCrown:
		cv.cell(5, 1+bob, 6, 1, pal.Trim)
		cv.cell(5, 0+bob, 1, 1, pal.Trim)
		cv.cell(8, 0+bob, 1, 1, pal.Trim)
		cv.cell(10, 0+bob, 1, 1, pal.Trim)
	}
}

func drawAccessory(cv canvas, desc descriptor, bx, bob int, facing Facing, pal Palette) {
	if facing == FacingUp {
		return // held at the front, hidden from behind
	}
	// Held on the right side, or the facing side in profile.
	hx := bx + desc.build + 1
	if facing == FacingLeft {
		hx = bx - 2
	}
	switch desc.accessory {
	case accPouch:
		cv.cell(hx, 10+bob, 1, 2, pal.Trim)
	case accBook:
		cv.cell(hx, 9+bob, 1, 3, pal.Trim)
	case accStaff:
		cv.cell(hx, 4+bob, 1, 11, pal.OutfitDark)
		cv.cell(hx, 4+bob, 1, 1, pal.Trim)
	case accSword:
		cv.cell(hx, 8+bob, 1, 6, pal.Trim)
		cv.cell(hx-1+(2*boolInt(facing == FacingLeft)), 9+bob, 1, 1, pal.OutfitDark)
	case accHammer:
		cv.cell(hx, 8+bob, 1, 5, pal.OutfitDark)
		cv.cell(hx-1, 8+bob, 3, 1, pal.Trim)
	case accBow:
		cv.cell(hx, 6+bob, 1, 8, pal.Trim)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
