package sprite

import (
	"image/color"

	"venturequest/palette"
)

// Palette is the resolved color set for one composed sprite.
type Palette struct {
	Skin       color.RGBA
	SkinShade  color.RGBA
	Hair       color.RGBA
	Eye        color.RGBA
	Outfit     color.RGBA
	OutfitLite color.RGBA
	OutfitDark color.RGBA
	Trim       color.RGBA
	Outline    color.RGBA
}

// Archetype base clothing colors, replaced by an explicit override when one is
// supplied (the world map tints NPC crowds this way).
var baseOutfits = map[Archetype]color.RGBA{
	Merchant: {178, 120, 48, 255},
	Scholar:  {70, 90, 150, 255},
	Elder:    {120, 110, 100, 255},
	Warrior:  {130, 60, 56, 255},
	Scout:    {62, 110, 70, 255},
	Noble:    {120, 62, 140, 255},
	Artisan:  {90, 98, 110, 255},
	Mystic:   {72, 54, 130, 255},
}

// heroPalette is the hand-authored hero outfit, never derived. The hero has
// to read instantly against any crowd tint; only skin and hair follow the
// appearance variant chosen at creation.
var heroPalette = Palette{
	Skin:       color.RGBA{237, 195, 155, 255},
	SkinShade:  color.RGBA{205, 160, 122, 255},
	Hair:       color.RGBA{100, 60, 25, 255},
	Eye:        color.RGBA{30, 20, 15, 255},
	Outfit:     color.RGBA{46, 108, 180, 255},
	OutfitLite: color.RGBA{80, 142, 210, 255},
	OutfitDark: color.RGBA{30, 72, 124, 255},
	Trim:       color.RGBA{255, 214, 102, 255},
	Outline:    color.RGBA{24, 22, 30, 255},
}

// DerivePalette builds a full sprite palette from one base clothing color and
// a small variant id. Skin, hair, and eye come from the fixed tone tables;
// the clothing shades are brightness shifts of the base.
func DerivePalette(base color.RGBA, variant int) Palette {
	if variant < 0 {
		variant = -variant
	}
	return Palette{
		Skin:       palette.SkinTones[variant%len(palette.SkinTones)],
		SkinShade:  palette.Shade(palette.SkinTones[variant%len(palette.SkinTones)], -0.15),
		Hair:       palette.HairTones[variant%len(palette.HairTones)],
		Eye:        palette.EyeTones[variant%len(palette.EyeTones)],
		Outfit:     base,
		OutfitLite: palette.Shade(base, 0.3),
		OutfitDark: palette.Shade(base, -0.35),
		Trim:       palette.Shade(base, 0.55),
		Outline:    color.RGBA{24, 22, 30, 255},
	}
}

// PaletteFor resolves the palette for an archetype. The hero keeps the fixed
// outfit regardless of override; variant selects its skin and hair tones.
func PaletteFor(arch Archetype, override *color.RGBA, variant int) Palette {
	if arch == Hero {
		if variant < 0 {
			variant = -variant
		}
		p := heroPalette
		p.Skin = palette.SkinTones[variant%len(palette.SkinTones)]
		p.SkinShade = palette.Shade(p.Skin, -0.15)
		p.Hair = palette.HairTones[variant%len(palette.HairTones)]
		return p
	}
	base, ok := baseOutfits[arch]
	if !ok {
		base = palette.ErrorFill
	}
	if override != nil {
		base = *override
	}
	return DerivePalette(base, variant)
}
