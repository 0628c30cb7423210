// Package worldmap is the map catalog: a pure data factory producing fully
// specified, immutable map descriptors on demand. Maps are authored as rune
// grids (one rune per tile) with entity/transition lists alongside; the
// collision grid is derived from the solid tile set at load time.
package worldmap

import (
	"image/color"

	"venturequest/sprite"
	"venturequest/tile"
)

// ID names a map in the catalog.
type ID string

const (
	Hub       ID = "hub"
	IronBasin ID = "iron_basin"
	MarketRow ID = "market_row"
	Archive   ID = "archive"
)

// Coord is a tile-grid position, row-major.
type Coord struct {
	Row, Col int
}

// ActionRef notifies an external collaborator when fired: Tag selects the
// handler (e.g. "scenario"), Route is its argument (e.g. a discipline name).
type ActionRef struct {
	Tag   string
	Route string
}

// Behavior is the closed set of NPC behavior variants. The variants replace
// optional-field duck typing: an NPC is exactly one of talking, action-only,
// or patrolling.
type Behavior interface {
	isBehavior()
}

// Talk is a dialogue script, optionally followed by a deferred action that
// fires only once the whole script has been advanced past.
type Talk struct {
	Script []string
	Then   *ActionRef
}

// Act marks an action-only NPC: interacting fires the action immediately,
// with no dialogue.
type Act struct {
	ActionRef
}

// Patrol walks a waypoint loop on a fixed cadence. The optional Talk opens
// when interacted with, and the patrol pauses while any dialogue is open.
type Patrol struct {
	Loop        []Coord
	StepEveryMs float64
	Talk        *Talk
}

func (Talk) isBehavior()   {}
func (Act) isBehavior()    {}
func (Patrol) isBehavior() {}

// NPC is a tile-quantized map inhabitant. NPCs are rebuilt fresh from the
// descriptor on every map load; none of their state survives a transition.
type NPC struct {
	Name      string
	Tile      Coord
	Archetype sprite.Archetype
	Variant   int
	Tint      *color.RGBA
	Facing    sprite.Facing
	Behavior  Behavior
}

// Interactable is a static object the player can read or trigger.
type Interactable struct {
	Tile   Coord
	Script []string
	Then   *ActionRef
}

// Transition teleports the player to another map when stepped on.
type Transition struct {
	At    Coord
	To    ID
	Spawn Coord
}

// Descriptor is one fully loaded map. Immutable after Load.
type Descriptor struct {
	ID            ID
	Name          string
	Width, Height int
	Tiles         [][]tile.ID
	Overlay       map[Coord]tile.ID
	NPCs          []NPC
	Interactables []Interactable
	Transitions   []Transition
	Spawn         Coord

	collision [][]bool
}

// At returns the tile at (row, col); out-of-bounds cells report Wall so the
// renderer and collision agree about the world edge.
func (d *Descriptor) At(row, col int) tile.ID {
	if row < 0 || col < 0 || row >= d.Height || col >= d.Width {
		return tile.Wall
	}
	return d.Tiles[row][col]
}

// Solid reports whether (row, col) blocks movement. Out-of-bounds is solid.
func (d *Descriptor) Solid(row, col int) bool {
	if row < 0 || col < 0 || row >= d.Height || col >= d.Width {
		return true
	}
	return d.collision[row][col]
}

// TransitionAt returns the transition triggered at (row, col), or nil.
func (d *Descriptor) TransitionAt(row, col int) *Transition {
	for i := range d.Transitions {
		if d.Transitions[i].At.Row == row && d.Transitions[i].At.Col == col {
			return &d.Transitions[i]
		}
	}
	return nil
}

// NPCAt returns the index of the NPC on (row, col), or -1.
func (d *Descriptor) NPCAt(row, col int) int {
	for i := range d.NPCs {
		if d.NPCs[i].Tile.Row == row && d.NPCs[i].Tile.Col == col {
			return i
		}
	}
	return -1
}

// InteractableAt returns the interactable on (row, col), or nil.
func (d *Descriptor) InteractableAt(row, col int) *Interactable {
	for i := range d.Interactables {
		if d.Interactables[i].Tile.Row == row && d.Interactables[i].Tile.Col == col {
			return &d.Interactables[i]
		}
	}
	return nil
}

// legend maps grid runes to tile types.
var legend = map[rune]tile.ID{
	'.': tile.Grass,
	'=': tile.Path,
	'w': tile.WoodFloor,
	's': tile.StoneFloor,
	'c': tile.Carpet,
	'#': tile.Wall,
	'~': tile.Water,
	'T': tile.Tree,
	'C': tile.Counter,
	'S': tile.Shelf,
	'D': tile.Door,
	'!': tile.Sign,
}

// parseGrid turns rune-art rows into a tile grid plus its derived collision
// grid. Unknown runes fall through to Grass; the tile renderer is the layer
// that makes genuinely bad data visible.
func parseGrid(rows []string) ([][]tile.ID, [][]bool) {
	tiles := make([][]tile.ID, len(rows))
	collision := make([][]bool, len(rows))
	for r, row := range rows {
		tiles[r] = make([]tile.ID, len(row))
		collision[r] = make([]bool, len(row))
		for c, ch := range row {
			id, ok := legend[ch]
			if !ok {
				id = tile.Grass
			}
			tiles[r][c] = id
			collision[r][c] = tile.Solid(id)
		}
	}
	return tiles, collision
}

// Load produces a fresh descriptor for id. Unknown ids fall back to the hub
// so a bad transition degrades to going home instead of crashing.
func Load(id ID) *Descriptor {
	switch id {
	case IronBasin:
		return ironBasin()
	case MarketRow:
		return marketRow()
	case Archive:
		return archive()
	default:
		return hub()
	}
}

// StartMap picks the first map for a newly created player. Industrial-world
// ventures start in the Iron Basin; everyone else gets the hub.
func StartMap(world string) ID {
	if world == "Industrial" {
		return IronBasin
	}
	return Hub
}
