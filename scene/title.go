package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"venturequest/palette"
	"venturequest/ui"
	"venturequest/worldmap"
)

// titleMode shows the saved-player roster plus a "New Adventure" entry.
// Selecting a saved player logs in and drops straight into their world;
// the roster is re-fetched on every entry so a Save & Quit round trip shows
// fresh data.
type titleMode struct {
	cursor int
	scroll int
	busy   bool
	err    string
}

func (t *titleMode) Enter(m *Manager) {
	t.cursor = 0
	t.scroll = 0
	t.busy = false
	t.err = ""
	t.refreshRoster(m)
}

func (t *titleMode) refreshRoster(m *Manager) {
	token := m.async.begin(slotRoster)
	go func() {
		roster, err := m.client.Players(m.async.ctx)
		m.async.post(slotRoster, token, func() {
			if err != nil {
				m.log.Warn("roster refresh failed", zap.Error(err))
				return
			}
			m.allPlayers = roster
			t.clampCursor(m)
		})
	}()
}

// entries is 1 + roster: index 0 is always New Adventure.
func (t *titleMode) entryCount(m *Manager) int {
	return 1 + len(m.allPlayers)
}

func (t *titleMode) clampCursor(m *Manager) {
	if max := t.entryCount(m) - 1; t.cursor > max {
		t.cursor = max
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	t.clampScroll(m)
}

// clampScroll keeps the cursor inside the visible window of the list.
func (t *titleMode) clampScroll(m *Manager) {
	rows := m.layout.ListRows
	if t.cursor < t.scroll {
		t.scroll = t.cursor
	}
	if t.cursor >= t.scroll+rows {
		t.scroll = t.cursor - rows + 1
	}
	if t.scroll < 0 {
		t.scroll = 0
	}
}

func (t *titleMode) HandleInput(m *Manager) {
	if t.busy {
		return
	}
	switch {
	case upPressed() || m.pad.upEdge():
		t.cursor--
		t.clampCursor(m)
	case downPressed() || m.pad.downEdge():
		t.cursor++
		t.clampCursor(m)
	case confirmPressed() || m.pad.action:
		t.choose(m)
	default:
		if x, y, ok := mouseClick(); ok {
			lm := m.layout
			i := rowHit(x, y, lm.Panel, lm.ListTop, lm.RowHeight, lm.ListRows)
			if i >= 0 && t.scroll+i < t.entryCount(m) {
				t.cursor = t.scroll + i
				t.choose(m)
			}
		}
	}
}

func (t *titleMode) choose(m *Manager) {
	t.err = ""
	if t.cursor == 0 {
		m.setState(StateCreation)
		return
	}
	player := m.allPlayers[t.cursor-1]
	t.busy = true
	token := m.async.begin(slotLogin)
	go func() {
		logged, err := m.client.Login(m.async.ctx, player.ID)
		m.async.post(slotLogin, token, func() {
			t.busy = false
			if err != nil {
				t.err = "Login failed. Try again."
				m.log.Warn("login failed", zap.Int("player_id", player.ID), zap.Error(err))
				return
			}
			m.playerData = logged
			m.enterWorld(worldmap.StartMap(logged.World))
		})
	}()
}

func (t *titleMode) Update(m *Manager, dt float64) {}

func (t *titleMode) Draw(m *Manager, dst *ebiten.Image) {
	lm := m.layout
	p := lm.Panel
	ui.Panel(dst, float64(p.Min.X), float64(p.Min.Y), float64(p.Dx()), float64(p.Dy()),
		palette.PanelBG, palette.PanelBorder)

	cx := lm.Width / 2
	ui.CenterText(dst, "VENTURE QUEST", cx, lm.TitleY)

	rows := lm.ListRows
	for i := 0; i < rows; i++ {
		idx := t.scroll + i
		if idx >= t.entryCount(m) {
			break
		}
		label := "New Adventure"
		if idx > 0 {
			pl := m.allPlayers[idx-1]
			label = fmt.Sprintf("%s - %s / %s ($%.0f)", pl.Name, pl.World, pl.Industry, pl.Cash)
		}
		y := lm.ListTop + i*lm.RowHeight
		if idx == t.cursor {
			ui.Text(dst, "> "+label, p.Min.X+16, y)
		} else {
			ui.Text(dst, "  "+label, p.Min.X+16, y)
		}
	}
	if t.scroll > 0 {
		ui.Text(dst, "^", p.Max.X-24, lm.ListTop)
	}
	if t.scroll+rows < t.entryCount(m) {
		ui.Text(dst, "v", p.Max.X-24, lm.ListTop+(rows-1)*lm.RowHeight)
	}

	if t.busy {
		ui.CenterText(dst, "Logging in...", cx, p.Max.Y-30)
	} else if t.err != "" {
		ui.CenterText(dst, t.err, cx, p.Max.Y-30)
	} else {
		ui.CenterText(dst, "Enter: select   Esc: quit to desktop", cx, p.Max.Y-30)
	}
}
