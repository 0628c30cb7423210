package tile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintDeterministic(t *testing.T) {
	// Same (id, seed) must be pixel-identical regardless of call order or
	// interleaved paints with other arguments.
	for _, id := range []ID{Grass, Path, WoodFloor, StoneFloor, Wall, Tree, Shelf} {
		first := Paint(id, 16, Seed(3, 9), 0)
		Paint(Water, 16, Seed(0, 0), 4)
		Paint(id, 16, Seed(4, 9), 0)
		second := Paint(id, 16, Seed(3, 9), 0)
		require.True(t, bytes.Equal(first.Pix, second.Pix), "tile %d not deterministic", id)
	}
}

func TestSeedVariesByPosition(t *testing.T) {
	a := Paint(Grass, 16, Seed(0, 0), 0)
	b := Paint(Grass, 16, Seed(0, 1), 0)
	assert.False(t, bytes.Equal(a.Pix, b.Pix), "adjacent grass cells should differ")
}

func TestWaterVariesByBucket(t *testing.T) {
	a := Paint(Water, 16, 0, 0)
	b := Paint(Water, 16, 0, 3)
	assert.False(t, bytes.Equal(a.Pix, b.Pix))
}

func TestUnknownTilePaintsErrorFill(t *testing.T) {
	img := Paint(ID(999), 8, 0, 0)
	c := img.RGBAAt(4, 4)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(255), c.B)
}

func TestSolidSet(t *testing.T) {
	for _, id := range []ID{Wall, Water, Tree, Counter, Shelf} {
		assert.True(t, Solid(id), "tile %d should be solid", id)
	}
	for _, id := range []ID{Grass, Path, WoodFloor, StoneFloor, Carpet, Door, Sign} {
		assert.False(t, Solid(id), "tile %d should be walkable", id)
	}
}

func TestSeedLowEntropy(t *testing.T) {
	// The seed space is deliberately tiny so the render cache stays bounded.
	seen := map[uint32]bool{}
	for r := 0; r < 40; r++ {
		for c := 0; c < 40; c++ {
			seen[Seed(r, c)] = true
		}
	}
	assert.LessOrEqual(t, len(seen), 16)
}
