package sprite

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturequest/palette"
)

func TestPaintDeterministic(t *testing.T) {
	pal := PaletteFor(Merchant, nil, 2)
	a := Paint(Merchant, pal, FacingDown, 1, true, 32)
	Paint(Warrior, PaletteFor(Warrior, nil, 0), FacingLeft, 3, true, 32)
	b := Paint(Merchant, pal, FacingDown, 1, true, 32)
	require.True(t, bytes.Equal(a.Pix, b.Pix))
}

func TestFacingsDiffer(t *testing.T) {
	pal := PaletteFor(Scout, nil, 1)
	down := Paint(Scout, pal, FacingDown, 0, false, 32)
	up := Paint(Scout, pal, FacingUp, 0, false, 32)
	left := Paint(Scout, pal, FacingLeft, 0, false, 32)
	assert.False(t, bytes.Equal(down.Pix, up.Pix))
	assert.False(t, bytes.Equal(down.Pix, left.Pix))
}

func TestWalkFramesAlternate(t *testing.T) {
	pal := PaletteFor(Hero, nil, 0)
	neutral := Paint(Hero, pal, FacingDown, 0, true, 32)
	step1 := Paint(Hero, pal, FacingDown, 1, true, 32)
	step3 := Paint(Hero, pal, FacingDown, 3, true, 32)
	assert.False(t, bytes.Equal(neutral.Pix, step1.Pix))
	assert.False(t, bytes.Equal(step1.Pix, step3.Pix), "opposite leg phases must differ")
}

func TestIdleIgnoresFramePhase(t *testing.T) {
	pal := PaletteFor(Elder, nil, 0)
	a := Paint(Elder, pal, FacingDown, 1, false, 32)
	b := Paint(Elder, pal, FacingDown, 3, false, 32)
	assert.True(t, bytes.Equal(a.Pix, b.Pix), "idle sprites do not animate by frame")
}

func TestDerivePaletteFromBase(t *testing.T) {
	base := color.RGBA{100, 100, 200, 255}
	pal := DerivePalette(base, 2)
	assert.Equal(t, base, pal.Outfit)
	assert.Equal(t, palette.Shade(base, 0.3), pal.OutfitLite)
	assert.Equal(t, palette.Shade(base, -0.35), pal.OutfitDark)
	assert.Equal(t, palette.SkinTones[2], pal.Skin)
}

func TestHeroOutfitIsFixed(t *testing.T) {
	override := color.RGBA{1, 2, 3, 255}
	a := PaletteFor(Hero, nil, 0)
	b := PaletteFor(Hero, &override, 0)
	assert.Equal(t, a, b, "hero outfit ignores override")
	assert.Equal(t, heroPalette.Outfit, PaletteFor(Hero, nil, 3).Outfit)
	assert.Equal(t, heroPalette.Trim, PaletteFor(Hero, nil, 3).Trim)
}

func TestHeroVariantsChangeSkinAndHair(t *testing.T) {
	a := PaletteFor(Hero, nil, 0)
	b := PaletteFor(Hero, nil, 1)
	assert.NotEqual(t, a.Skin, b.Skin)
	assert.NotEqual(t, a.Hair, b.Hair)

	// The composed sprites must visibly differ as well.
	imgA := Paint(Hero, a, FacingDown, 0, false, 32)
	imgB := Paint(Hero, b, FacingDown, 0, false, 32)
	assert.NotEqual(t, imgA.Pix, imgB.Pix)
}

func TestOverrideReplacesBase(t *testing.T) {
	override := color.RGBA{10, 200, 30, 255}
	pal := PaletteFor(Mystic, &override, 0)
	assert.Equal(t, override, pal.Outfit)
}

func TestUnknownArchetypePaintsErrorSilhouette(t *testing.T) {
	img := Paint(Archetype("gremlin"), Palette{}, FacingDown, 0, false, 32)
	c := img.RGBAAt(16, 16)
	assert.Equal(t, palette.ErrorFill, c)
}

func TestArchetypesContainsAllKnown(t *testing.T) {
	for _, a := range Archetypes() {
		assert.True(t, Known(a))
	}
	assert.Equal(t, Hero, Archetypes()[0])
}
