// Package sprite procedurally composes humanoid character bitmaps from an
// archetype descriptor and a derived palette. No sprite sheets exist; every
// body part is painted as rectangles on a 16x16 art grid scaled to the target
// size, and the composed result is memoized per (archetype, palette, facing,
// frame, movement) combination.
package sprite

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"venturequest/rendercache"
)

// Facing is one of the four supported view directions. No diagonals.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// Archetype names a bundle of visual traits: hairstyle, build width, outfit
// silhouette, accessory, and optional hat.
type Archetype string

const (
	Hero     Archetype = "hero"
	Merchant Archetype = "merchant"
	Scholar  Archetype = "scholar"
	Elder    Archetype = "elder"
	Warrior  Archetype = "warrior"
	Scout    Archetype = "scout"
	Noble    Archetype = "noble"
	Artisan  Archetype = "artisan"
	Mystic   Archetype = "mystic"
)

// Hairstyle variants.
type hairstyle int

const (
	hairShort hairstyle = iota
	hairSpiky
	hairLong
	hairBald
	hairBun
)

// Hat variants. hatNone means bare-headed.
type hat int

const (
	hatNone hat = iota
	hatCap
	hatHood
	hatHelmet
	hatPointed
	hatCrown
)

// Accessory variants held at the sprite's side.
type accessory int

const (
	accNone accessory = iota
	accPouch
	accBook
	accStaff
	accSword
	accHammer
	accBow
)

// descriptor is the fixed trait bundle for one archetype.
type descriptor struct {
	hair      hairstyle
	build     int // torso width in art pixels (even, 4..8)
	cloak     bool
	apron     bool
	hat       hat
	accessory accessory
}

var archetypes = map[Archetype]descriptor{
	Hero:     {hair: hairSpiky, build: 6, accessory: accNone},
	Merchant: {hair: hairShort, build: 8, apron: true, accessory: accPouch},
	Scholar:  {hair: hairBun, build: 4, accessory: accBook},
	Elder:    {hair: hairBald, build: 4, accessory: accStaff},
	Warrior:  {hair: hairShort, build: 8, hat: hatHelmet, accessory: accSword},
	Scout:    {hair: hairLong, build: 4, cloak: true, hat: hatHood, accessory: accBow},
	Noble:    {hair: hairLong, build: 6, cloak: true, hat: hatCrown},
	Artisan:  {hair: hairShort, build: 6, apron: true, hat: hatCap, accessory: accHammer},
	Mystic:   {hair: hairLong, build: 4, cloak: true, hat: hatPointed, accessory: accStaff},
}

// Archetypes returns the browseable archetype keys in a stable order, hero
// first (character creation indexes into this).
func Archetypes() []Archetype {
	return []Archetype{Hero, Merchant, Scholar, Elder, Warrior, Scout, Noble, Artisan, Mystic}
}

// Known reports whether a is a recognized archetype.
func Known(a Archetype) bool {
	_, ok := archetypes[a]
	return ok
}

type cacheKey struct {
	arch     Archetype
	variant  int
	override color.RGBA
	hasOver  bool
	facing   Facing
	frame    int
	moving   bool
}

// Renderer composes and draws sprites, memoizing each composed frame. Cached
// entries live for the process lifetime; the archetype/facing/frame space is
// small and bounded.
type Renderer struct {
	size  int
	cache *rendercache.Cache[cacheKey, *ebiten.Image]
}

// NewRenderer returns a sprite renderer producing sizePx-square sprites.
func NewRenderer(sizePx int) *Renderer {
	return &Renderer{
		size:  sizePx,
		cache: rendercache.New[cacheKey, *ebiten.Image](),
	}
}

// Draw paints the sprite at pixel offset (px, py). frame is the walk-cycle
// phase (0-3); moving selects leg alternation plus a baked vertical bob, idle
// sprites instead get a slow breathing offset computed from animMs at blit
// time so the cache never keys on the clock. override, when non-nil, replaces
// the variant-derived base clothing color. Unknown archetypes paint the
// magenta error silhouette.
func (r *Renderer) Draw(dst *ebiten.Image, animMs float64, arch Archetype, px, py float64, facing Facing, frame int, moving bool, override *color.RGBA, variant int, vOffsetPx float64) {
	key := cacheKey{
		arch:    arch,
		variant: variant,
		facing:  facing,
		frame:   frame & 3,
		moving:  moving,
	}
	if override != nil {
		key.override = *override
		key.hasOver = true
	}

	img := r.cache.GetOrRender(key, func() *ebiten.Image {
		pal := PaletteFor(arch, override, variant)
		return ebiten.NewImageFromImage(Paint(arch, pal, facing, frame&3, moving, r.size))
	})

	breathe := 0.0
	if !moving {
		// Slow idle breathing, under one art pixel of travel.
		breathe = math.Round(math.Sin(animMs/600) * float64(r.size) / 16)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(px, py+vOffsetPx+breathe)
	dst.DrawImage(img, opts)
}
