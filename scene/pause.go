package scene

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"venturequest/palette"
	"venturequest/ui"
)

var pauseEntries = []string{"Resume", "Save & Quit"}

// pauseMode overlays a small menu on the frozen world. Save & Quit drops the
// session (the server already holds everything durable) and returns to the
// title, which re-fetches the roster.
type pauseMode struct {
	cursor int
}

func (p *pauseMode) Enter(m *Manager) {
	p.cursor = 0
}

// panel returns the menu box, shared by hit testing and drawing.
func (p *pauseMode) panel(lm Metrics) image.Rectangle {
	const w, h = 220, 120
	x := lm.Width/2 - w/2
	y := lm.Height/2 - h/2
	return image.Rect(x, y, x+w, y+h)
}

func (p *pauseMode) HandleInput(m *Manager) {
	switch {
	case cancelPressed() || m.pad.cancel:
		m.setState(StateWorld)
	case upPressed() || m.pad.upEdge():
		p.cursor = (p.cursor + len(pauseEntries) - 1) % len(pauseEntries)
	case downPressed() || m.pad.downEdge():
		p.cursor = (p.cursor + 1) % len(pauseEntries)
	case confirmPressed() || m.pad.action:
		p.choose(m)
	default:
		if x, y, ok := mouseClick(); ok {
			box := p.panel(m.layout)
			i := rowHit(x, y, box, box.Min.Y+48, 22, len(pauseEntries))
			if i >= 0 {
				p.cursor = i
				p.choose(m)
			}
		}
	}
}

func (p *pauseMode) choose(m *Manager) {
	if p.cursor == 0 {
		m.setState(StateWorld)
		return
	}
	m.playerData = nil
	m.stats = nil
	m.streak = 0
	m.appearance = 0
	m.hud.Reset()
	m.setState(StateTitle)
}

func (p *pauseMode) Update(m *Manager, dt float64) {}

func (p *pauseMode) Draw(m *Manager, dst *ebiten.Image) {
	// World stays visible underneath, dimmed.
	m.engine.Draw(dst)
	ui.FillRect(dst, 0, 0, float64(m.layout.Width), float64(m.layout.Height), palette.DimOverlay)

	lm := m.layout
	box := p.panel(lm)
	ui.Panel(dst, float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()),
		palette.PanelBG, palette.PanelBorder)
	ui.CenterText(dst, "PAUSED", lm.Width/2, box.Min.Y+16)
	for i, entry := range pauseEntries {
		marker := "  "
		if i == p.cursor {
			marker = "> "
		}
		ui.Text(dst, marker+entry, box.Min.X+24, box.Min.Y+48+i*22)
	}
}
