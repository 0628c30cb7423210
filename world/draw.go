package world

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"venturequest/palette"
	"venturequest/ui"
)

// Draw paints the world for this frame: frustum-culled tiles, NPCs, player,
// proximity highlights, then the overlay tile layer. HUD, dialogue, and flash
// are screen-space layers the owner draws afterwards via DrawDialogue and
// DrawFlash.
func (e *Engine) Draw(dst *ebiten.Image) {
	if e.desc == nil {
		return
	}

	// Sub-pixel camera positions shimmer; round once here.
	camX := math.Round(e.cam.X)
	camY := math.Round(e.cam.Y)

	minR := int(math.Floor(camY / TileSize))
	maxR := int(math.Ceil((camY + float64(e.viewH)) / TileSize))
	minC := int(math.Floor(camX / TileSize))
	maxC := int(math.Ceil((camX + float64(e.viewW)) / TileSize))

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			px := float64(c)*TileSize - camX
			py := float64(r)*TileSize - camY
			e.tiles.Draw(dst, e.desc.At(r, c), px, py, r, c, e.animMs)
		}
	}

	for _, n := range e.npcs {
		e.drawHighlight(dst, n, camX, camY)
		e.drawEntity(dst, &n.Entity, camX, camY)
	}
	e.drawEntity(dst, &e.player, camX, camY)

	// Overlay layer paints above entities (awnings, sign tops).
	for at, id := range e.desc.Overlay {
		if at.Row < minR || at.Row > maxR || at.Col < minC || at.Col > maxC {
			continue
		}
		px := float64(at.Col)*TileSize - camX
		py := float64(at.Row)*TileSize - camY
		e.tiles.Draw(dst, id, px, py, at.Row, at.Col, e.animMs)
	}

	if !e.dialogue.Active() && e.nearInteractable() {
		ui.CenterText(dst, "[E] Interact", e.viewW/2, e.viewH-36)
	}
}

// nearInteractable reports whether anything talkable is in interact range.
func (e *Engine) nearInteractable() bool {
	for _, n := range e.npcs {
		dx := n.X - e.player.X
		dy := n.Y - e.player.Y
		if dx*dx+dy*dy <= interactRadius*interactRadius {
			return true
		}
	}
	for _, it := range e.desc.Interactables {
		dx := float64(it.Tile.Col)*TileSize + TileSize/2 - e.player.X
		dy := float64(it.Tile.Row)*TileSize + TileSize/2 - e.player.Y
		if dx*dx+dy*dy <= interactRadius*interactRadius {
			return true
		}
	}
	return false
}

func (e *Engine) drawEntity(dst *ebiten.Image, ent *Entity, camX, camY float64) {
	// Sprites are a tile tall; anchor feet to the entity's tile bottom.
	px := ent.X - TileSize/2 - camX
	py := ent.Y - TileSize/2 - camY
	e.sprites.Draw(dst, e.animMs, ent.Archetype, px, py, ent.Facing, ent.Frame, ent.Moving, ent.Tint, ent.Variant, -4)
}

// drawHighlight pulses a ring under NPCs near enough to interact with.
func (e *Engine) drawHighlight(dst *ebiten.Image, n *npcEntity, camX, camY float64) {
	dx := n.X - e.player.X
	dy := n.Y - e.player.Y
	if dx*dx+dy*dy > interactRadius*interactRadius {
		return
	}
	pulse := 0.5 + 0.5*math.Sin(e.animMs/250)
	alpha := uint8(40 + 60*pulse)
	vector.DrawFilledCircle(dst,
		float32(n.X-camX), float32(n.Y-camY+TileSize/3),
		float32(TileSize)/2.2,
		color.RGBA{255, 230, 120, alpha}, true)
}

// DrawDialogue paints the conversation box when a dialogue is open.
func (e *Engine) DrawDialogue(dst *ebiten.Image) {
	if !e.dialogue.Active() {
		return
	}
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	boxH := 84.0
	boxY := float64(h) - boxH - 12
	ui.Panel(dst, 12, boxY, float64(w)-24, boxH, palette.PanelBG, palette.PanelBorder)

	y := int(boxY) + 10
	if sp := e.dialogue.Speaker(); sp != "" {
		ui.Text(dst, sp, 24, y)
		y += 18
	}
	ui.Text(dst, wrap(e.dialogue.Shown(), (w-48)/6), 24, y)

	if e.dialogue.State() == DialogueComplete {
		ui.Text(dst, "v", w-32, int(boxY)+int(boxH)-18)
	}
}

// DrawFlash paints the full-screen cut mask while its timer runs.
func (e *Engine) DrawFlash(dst *ebiten.Image) {
	if e.flashLeft <= 0 {
		return
	}
	alpha := uint8(255 * math.Min(e.flashLeft/flashMs, 1))
	ui.FillRect(dst, 0, 0, float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy()),
		color.RGBA{0, 0, 0, alpha})
}

// wrap breaks s into lines of at most width glyphs, breaking on spaces.
func wrap(s string, width int) string {
	if width < 8 {
		width = 8
	}
	out := make([]rune, 0, len(s)+8)
	lineLen := 0
	lastSpace := -1
	for _, r := range s {
		out = append(out, r)
		lineLen++
		if r == ' ' {
			lastSpace = len(out) - 1
		}
		if lineLen >= width && lastSpace >= 0 {
			out[lastSpace] = '\n'
			lineLen = len(out) - 1 - lastSpace
			lastSpace = -1
		}
	}
	return string(out)
}
