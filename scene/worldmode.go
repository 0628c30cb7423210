package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"venturequest/world"
)

// worldMode runs free exploration: keyboard and virtual pad are merged into
// one semantic input set and handed to the engine each tick. Escape pauses,
// but never mid-dialogue; the dialogue consumes cancel itself.
type worldMode struct {
	in        world.Input
	dlgActive bool
}

func (w *worldMode) Enter(m *Manager) {
	w.in = world.Input{}
	w.dlgActive = m.engine.Dialogue().Active()
}

func (w *worldMode) HandleInput(m *Manager) {
	up, down, left, right := moveKeys()
	w.in = world.Input{
		Up:       up || m.pad.up,
		Down:     down || m.pad.down,
		Left:     left || m.pad.left,
		Right:    right || m.pad.right,
		Interact: confirmPressed() || m.pad.action,
		Cancel:   cancelPressed() || m.pad.cancel,
	}

	if w.in.Cancel && !m.engine.Dialogue().Active() {
		w.in = world.Input{}
		m.setState(StatePause)
	}
}

func (w *worldMode) Update(m *Manager, dt float64) {
	m.engine.Update(dt, w.in)

	active := m.engine.Dialogue().Active()
	if active && !w.dlgActive {
		m.fx.PlayTalk()
	}
	w.dlgActive = active
}

func (w *worldMode) Draw(m *Manager, dst *ebiten.Image) {
	m.engine.Draw(dst)
	m.hud.Draw(dst)
	m.engine.DrawDialogue(dst)
	m.engine.DrawFlash(dst)
}
