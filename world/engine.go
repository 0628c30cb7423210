// Package world is the real-time core of the client: player movement and
// collision, the smoothed camera, NPC patrols, map transitions, and the
// dialogue sub-state-machine. The scene manager drives it one tick at a time
// while the World mode is active and receives high-level events back through
// callback hooks.
package world

import (
	"image/color"
	"math"

	"go.uber.org/zap"

	"venturequest/sprite"
	"venturequest/tile"
	"venturequest/worldmap"
)

const (
	// TileSize is the world cell edge in pixels.
	TileSize = 32

	// PlayerSpeed is player travel in pixels per second.
	PlayerSpeed = 150.0

	// playerHalf is the player's collision half-extent. Smaller than a half
	// tile so doorways one tile wide are passable.
	playerHalf = 10.0

	// npcHalf is the NPC obstacle half-extent. Smaller than a half tile so
	// the player can stand adjacent for interaction without overlapping.
	npcHalf = 12.0

	// TransitionCooldownMs suppresses transition re-triggering after a map
	// change; without it the arrival tile could bounce the player straight
	// back.
	TransitionCooldownMs = 1000

	// flashMs is the full-screen flash masking a map cut.
	flashMs = 350

	// walkFrameMs advances the 4-phase walk cycle.
	walkFrameMs = 130

	// cameraLag controls the exponential camera approach; smaller is snappier.
	cameraLag = 120.0

	// interactRadius highlights NPCs within this many pixels of the player.
	interactRadius = 2.5 * TileSize
)

// Input is one tick's worth of player intent, already normalized from
// keyboard, mouse, and the on-screen touch pad. Opposing directions cancel by
// vector addition, so holding left and right together means standing still.
type Input struct {
	Up, Down, Left, Right bool
	Interact              bool // edge-triggered by the caller
	Cancel                bool
}

// Callbacks are the engine's hooks back into its owner. All are optional.
type Callbacks struct {
	// OnTransition fires when the player steps on a transition trigger and
	// the cooldown has elapsed. The owner is expected to call LoadMap.
	OnTransition func(to worldmap.ID, spawn worldmap.Coord)
	// OnAction fires for action-only NPC interactions and for dialogue
	// deferred actions, after the dialogue fully closes.
	OnAction func(ref worldmap.ActionRef)
}

// Entity is a drawable character: continuous pixel position (center), facing,
// and walk-cycle state.
type Entity struct {
	X, Y      float64
	Facing    sprite.Facing
	Frame     int
	Moving    bool
	Archetype sprite.Archetype
	Variant   int
	Tint      *color.RGBA
	animAcc   float64
}

// npcEntity pairs the descriptor NPC with its runtime tile and patrol state.
// Rebuilt from the descriptor on every map load.
type npcEntity struct {
	Entity
	src       worldmap.NPC
	tile      worldmap.Coord
	patrolIdx int
	patrolAcc float64
}

// Camera is the continuously smoothed view offset, clamped to map bounds.
type Camera struct {
	X, Y float64
}

// Engine owns one loaded map and everything that moves on it.
type Engine struct {
	log     *zap.Logger
	tiles   *tile.Renderer
	sprites *sprite.Renderer

	desc     *worldmap.Descriptor
	cam      Camera
	player   Entity
	npcs     []*npcEntity
	dialogue Dialogue

	cooldownMs float64
	flashLeft  float64
	animMs     float64

	viewW, viewH int
	cb           Callbacks
}

// NewEngine builds an engine rendering through the given tile and sprite
// renderers into a viewW x viewH viewport.
func NewEngine(log *zap.Logger, tiles *tile.Renderer, sprites *sprite.Renderer, viewW, viewH int, cb Callbacks) *Engine {
	return &Engine{
		log:     log,
		tiles:   tiles,
		sprites: sprites,
		viewW:   viewW,
		viewH:   viewH,
		cb:      cb,
		player: Entity{
			Archetype: sprite.Hero,
			Facing:    sprite.FacingDown,
		},
	}
}

// SetViewport resizes the camera frame.
func (e *Engine) SetViewport(w, h int) {
	e.viewW, e.viewH = w, h
}

// SetPlayerAppearance applies the created character's look. The player entity
// itself persists across map loads.
func (e *Engine) SetPlayerAppearance(arch sprite.Archetype, variant int) {
	e.player.Archetype = arch
	e.player.Variant = variant
}

// LoadMap swaps in a fresh descriptor and resets the player to spawn. NPCs
// are rebuilt from scratch; nothing of theirs survives the transition.
func (e *Engine) LoadMap(id worldmap.ID, spawn *worldmap.Coord) {
	e.desc = worldmap.Load(id)
	at := e.desc.Spawn
	if spawn != nil {
		at = *spawn
	}
	e.player.X = float64(at.Col)*TileSize + TileSize/2
	e.player.Y = float64(at.Row)*TileSize + TileSize/2
	e.player.Moving = false
	e.player.Frame = 0

	e.npcs = e.npcs[:0]
	for _, n := range e.desc.NPCs {
		e.npcs = append(e.npcs, &npcEntity{
			Entity: Entity{
				X:         float64(n.Tile.Col)*TileSize + TileSize/2,
				Y:         float64(n.Tile.Row)*TileSize + TileSize/2,
				Facing:    n.Facing,
				Archetype: n.Archetype,
				Variant:   n.Variant,
				Tint:      n.Tint,
			},
			src:  n,
			tile: n.Tile,
		})
	}
	e.dialogue = Dialogue{}
	// cooldownMs is left alone: checkTransition arms it right before the
	// transition callback calls back into LoadMap, and the arrival map can
	// spawn the player adjacent to the return trigger.
	e.flashLeft = flashMs

	// Snap the camera so a map change does not pan across the new map.
	e.cam.X, e.cam.Y = e.cameraTarget()
	e.clampCamera()

	e.log.Info("map loaded",
		zap.String("map", string(id)),
		zap.Int("npcs", len(e.npcs)))
}

// Map returns the active descriptor, or nil before the first load.
func (e *Engine) Map() *worldmap.Descriptor {
	return e.desc
}

// Dialogue exposes the dialogue sub-state for rendering and tests.
func (e *Engine) Dialogue() *Dialogue {
	return &e.dialogue
}

// Player returns the player entity snapshot.
func (e *Engine) Player() Entity {
	return e.player
}

// SetPlayerPos places the player center at a pixel position (tests and
// scripted cutscenes).
func (e *Engine) SetPlayerPos(x, y float64) {
	e.player.X, e.player.Y = x, y
}

// Camera returns the current camera offset.
func (e *Engine) Camera() Camera {
	return e.cam
}

// Update advances the simulation by dt milliseconds of the given input.
func (e *Engine) Update(dt float64, in Input) {
	if e.desc == nil {
		return
	}
	e.animMs += dt

	// Timers run regardless of mode.
	if e.cooldownMs > 0 {
		e.cooldownMs -= dt
	}
	if e.flashLeft > 0 {
		e.flashLeft -= dt
	}

	if e.dialogue.Active() {
		// The world freezes during conversation; only the reveal advances.
		e.dialogue.Update(dt)
		if in.Interact || in.Cancel {
			if fired := e.dialogue.Advance(); fired != nil && e.cb.OnAction != nil {
				e.cb.OnAction(*fired)
			}
		}
		e.player.Moving = false
		return
	}

	if in.Interact {
		e.resolveInteraction()
	}

	e.movePlayer(dt, in)
	e.updateNPCs(dt)
	e.updateCamera(dt)
	e.checkTransition()
}

// movePlayer composes the input vector, resolves collision one axis at a
// time, and advances the walk cycle.
func (e *Engine) movePlayer(dt float64, in Input) {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}

	if dx == 0 && dy == 0 {
		e.player.Moving = false
		e.player.Frame = 0
		e.player.animAcc = 0
		return
	}

	// Facing favors the horizontal axis on diagonals.
	switch {
	case dx < 0:
		e.player.Facing = sprite.FacingLeft
	case dx > 0:
		e.player.Facing = sprite.FacingRight
	case dy < 0:
		e.player.Facing = sprite.FacingUp
	default:
		e.player.Facing = sprite.FacingDown
	}

	step := PlayerSpeed * dt / 1000
	if dx != 0 && dy != 0 {
		// Diagonal speed equals axial speed.
		step *= math.Sqrt2 / 2
	}

	// Per-axis resolution: trying X and Y independently slides along walls
	// instead of sticking in corners.
	nx := e.player.X + dx*step
	if !e.blocked(nx, e.player.Y) {
		e.player.X = nx
	}
	ny := e.player.Y + dy*step
	if !e.blocked(e.player.X, ny) {
		e.player.Y = ny
	}

	e.clampPlayer()

	e.player.Moving = true
	e.player.animAcc += dt
	for e.player.animAcc >= walkFrameMs {
		e.player.animAcc -= walkFrameMs
		e.player.Frame = (e.player.Frame + 1) & 3
	}
}

// blocked reports whether a player box centered at (x, y) overlaps a solid
// tile or an NPC obstacle box.
func (e *Engine) blocked(x, y float64) bool {
	minR := int(math.Floor((y - playerHalf) / TileSize))
	maxR := int(math.Floor((y + playerHalf - 1) / TileSize))
	minC := int(math.Floor((x - playerHalf) / TileSize))
	maxC := int(math.Floor((x + playerHalf - 1) / TileSize))
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if e.desc.Solid(r, c) {
				return true
			}
		}
	}
	for _, n := range e.npcs {
		if math.Abs(x-n.X) < playerHalf+npcHalf && math.Abs(y-n.Y) < playerHalf+npcHalf {
			return true
		}
	}
	return false
}

func (e *Engine) clampPlayer() {
	maxX := float64(e.desc.Width)*TileSize - playerHalf
	maxY := float64(e.desc.Height)*TileSize - playerHalf
	e.player.X = math.Min(math.Max(e.player.X, playerHalf), maxX)
	e.player.Y = math.Min(math.Max(e.player.Y, playerHalf), maxY)
}

func (e *Engine) cameraTarget() (float64, float64) {
	return e.player.X - float64(e.viewW)/2, e.player.Y - float64(e.viewH)/2
}

// updateCamera eases toward a player-centered target, then clamps so map
// edges never show past the viewport.
func (e *Engine) updateCamera(dt float64) {
	tx, ty := e.cameraTarget()
	k := 1 - math.Exp(-dt/cameraLag)
	e.cam.X += (tx - e.cam.X) * k
	e.cam.Y += (ty - e.cam.Y) * k
	e.clampCamera()
}

func (e *Engine) clampCamera() {
	mapW := float64(e.desc.Width) * TileSize
	mapH := float64(e.desc.Height) * TileSize

	if mapW <= float64(e.viewW) {
		e.cam.X = 0
	} else {
		e.cam.X = math.Min(math.Max(e.cam.X, 0), mapW-float64(e.viewW))
	}
	if mapH <= float64(e.viewH) {
		e.cam.Y = 0
	} else {
		e.cam.Y = math.Min(math.Max(e.cam.Y, 0), mapH-float64(e.viewH))
	}
}

// checkTransition fires the transition callback when the player's tile center
// sits on a trigger and the cooldown has elapsed.
func (e *Engine) checkTransition() {
	row := int(math.Floor(e.player.Y / TileSize))
	col := int(math.Floor(e.player.X / TileSize))
	tr := e.desc.TransitionAt(row, col)
	if tr == nil || e.cooldownMs > 0 {
		return
	}
	e.cooldownMs = TransitionCooldownMs
	e.flashLeft = flashMs
	if e.cb.OnTransition != nil {
		e.cb.OnTransition(tr.To, tr.Spawn)
	}
}

// resolveInteraction checks the tile one step in front of the player and
// resolves at most one interaction: NPC first, then static interactables.
func (e *Engine) resolveInteraction() {
	row := int(math.Floor(e.player.Y / TileSize))
	col := int(math.Floor(e.player.X / TileSize))
	switch e.player.Facing {
	case sprite.FacingUp:
		row--
	case sprite.FacingDown:
		row++
	case sprite.FacingLeft:
		col--
	case sprite.FacingRight:
		col++
	}

	for _, n := range e.npcs {
		if n.tile.Row != row || n.tile.Col != col {
			continue
		}
		n.Facing = opposite(e.player.Facing)
		switch b := n.src.Behavior.(type) {
		case worldmap.Talk:
			e.dialogue.Open(n.src.Name, b.Script, b.Then)
		case worldmap.Patrol:
			if b.Talk != nil {
				e.dialogue.Open(n.src.Name, b.Talk.Script, b.Talk.Then)
			}
		case worldmap.Act:
			if e.cb.OnAction != nil {
				e.cb.OnAction(b.ActionRef)
			}
		}
		return
	}

	if it := e.desc.InteractableAt(row, col); it != nil {
		if len(it.Script) > 0 {
			e.dialogue.Open("", it.Script, it.Then)
		} else if it.Then != nil && e.cb.OnAction != nil {
			e.cb.OnAction(*it.Then)
		}
	}
}

func opposite(f sprite.Facing) sprite.Facing {
	switch f {
	case sprite.FacingUp:
		return sprite.FacingDown
	case sprite.FacingDown:
		return sprite.FacingUp
	case sprite.FacingLeft:
		return sprite.FacingRight
	default:
		return sprite.FacingLeft
	}
}

// updateNPCs steps patrol loops. Patrols pause during dialogue (the caller
// returns before reaching here when a conversation is open).
func (e *Engine) updateNPCs(dt float64) {
	for _, n := range e.npcs {
		p, ok := n.src.Behavior.(worldmap.Patrol)
		if !ok || len(p.Loop) < 2 {
			n.Moving = false
			continue
		}
		n.patrolAcc += dt
		if n.patrolAcc < p.StepEveryMs {
			continue
		}
		n.patrolAcc -= p.StepEveryMs

		next := p.Loop[(n.patrolIdx+1)%len(p.Loop)]
		// Do not step into the player: the NPC obstacle box is wider than a
		// tile center, so a player hugging a tile edge must also hold the
		// step, or the overlapping boxes would pin the player in place.
		nx := float64(next.Col)*TileSize + TileSize/2
		ny := float64(next.Row)*TileSize + TileSize/2
		if math.Abs(nx-e.player.X) < playerHalf+npcHalf &&
			math.Abs(ny-e.player.Y) < playerHalf+npcHalf {
			continue
		}
		switch {
		case next.Col < n.tile.Col:
			n.Facing = sprite.FacingLeft
		case next.Col > n.tile.Col:
			n.Facing = sprite.FacingRight
		case next.Row < n.tile.Row:
			n.Facing = sprite.FacingUp
		case next.Row > n.tile.Row:
			n.Facing = sprite.FacingDown
		}
		n.patrolIdx = (n.patrolIdx + 1) % len(p.Loop)
		n.tile = next
		n.X = float64(next.Col)*TileSize + TileSize/2
		n.Y = float64(next.Row)*TileSize + TileSize/2
		n.Frame = (n.Frame + 1) & 3
		n.Moving = true
	}
}

// CooldownRemaining exposes the transition cooldown for tests and debugging.
func (e *Engine) CooldownRemaining() float64 {
	return math.Max(e.cooldownMs, 0)
}
