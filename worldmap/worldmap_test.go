package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturequest/tile"
)

func TestLoadAllMaps(t *testing.T) {
	for _, id := range []ID{Hub, IronBasin, MarketRow, Archive} {
		d := Load(id)
		require.NotNil(t, d)
		assert.Equal(t, id, d.ID)
		assert.NotEmpty(t, d.Name)
		require.Equal(t, d.Height, len(d.Tiles))
		for r, row := range d.Tiles {
			assert.Equalf(t, d.Width, len(row), "%s row %d ragged", id, r)
		}
		// Spawn must be walkable.
		assert.Falsef(t, d.Solid(d.Spawn.Row, d.Spawn.Col), "%s spawn is solid", id)
	}
}

func TestCollisionDerivedFromSolidSet(t *testing.T) {
	d := Load(Hub)
	for r := 0; r < d.Height; r++ {
		for c := 0; c < d.Width; c++ {
			assert.Equal(t, tile.Solid(d.Tiles[r][c]), d.Solid(r, c))
		}
	}
}

func TestOutOfBoundsIsSolid(t *testing.T) {
	d := Load(Hub)
	assert.True(t, d.Solid(-1, 0))
	assert.True(t, d.Solid(0, -1))
	assert.True(t, d.Solid(d.Height, 0))
	assert.True(t, d.Solid(0, d.Width))
	assert.Equal(t, tile.Wall, d.At(-5, -5))
}

func TestTransitionsLandOnWalkableTiles(t *testing.T) {
	for _, id := range []ID{Hub, IronBasin, MarketRow, Archive} {
		d := Load(id)
		for _, tr := range d.Transitions {
			target := Load(tr.To)
			assert.Falsef(t, target.Solid(tr.Spawn.Row, tr.Spawn.Col),
				"%s -> %s lands on solid tile %v", id, tr.To, tr.Spawn)
		}
	}
}

func TestNPCsOccupyDistinctWalkableTiles(t *testing.T) {
	for _, id := range []ID{Hub, IronBasin, MarketRow, Archive} {
		d := Load(id)
		seen := map[Coord]bool{}
		for _, n := range d.NPCs {
			assert.Falsef(t, d.Solid(n.Tile.Row, n.Tile.Col), "%s: %s stands in a wall", id, n.Name)
			assert.Falsef(t, seen[n.Tile], "%s: two NPCs share %v", id, n.Tile)
			seen[n.Tile] = true
			require.NotNil(t, n.Behavior)
		}
	}
}

func TestLoadReturnsFreshNPCs(t *testing.T) {
	a := Load(Hub)
	b := Load(Hub)
	require.NotEmpty(t, a.NPCs)
	a.NPCs[0].Tile = Coord{Row: 1, Col: 1}
	assert.NotEqual(t, a.NPCs[0].Tile, b.NPCs[0].Tile, "descriptors must not share NPC state")
}

func TestStartMap(t *testing.T) {
	assert.Equal(t, IronBasin, StartMap("Industrial"))
	assert.Equal(t, Hub, StartMap("Fantasy"))
	assert.Equal(t, Hub, StartMap(""))
}

func TestUnknownMapFallsBackToHub(t *testing.T) {
	assert.Equal(t, Hub, Load(ID("nowhere")).ID)
}
