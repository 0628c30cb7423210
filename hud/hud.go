// Package hud renders the counters overlaid on world exploration: name,
// cash, energy, morale, brand equity, the current map, and the transient
// win-streak banner.
package hud

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"venturequest/backend"
	"venturequest/palette"
	"venturequest/ui"
)

// streakBannerMs is how long the streak banner stays up after a win.
const streakBannerMs = 2600

// HUD holds the last snapshots pushed to it. It never fetches; the scene
// manager feeds it whenever a backend response lands.
type HUD struct {
	player  *backend.Player
	stats   *backend.Stats
	mapName string

	streak   int
	streakMs float64
}

func New() *HUD {
	return &HUD{}
}

// SetPlayer installs the logged-in player line.
func (h *HUD) SetPlayer(p *backend.Player) {
	h.player = p
}

// SetStats installs the latest resource counters.
func (h *HUD) SetStats(s *backend.Stats) {
	h.stats = s
}

// SetMapName labels the current map.
func (h *HUD) SetMapName(name string) {
	h.mapName = name
}

// ShowStreak raises the win-streak banner; it dismisses itself.
func (h *HUD) ShowStreak(n int) {
	h.streak = n
	h.streakMs = streakBannerMs
}

// Reset clears everything; used on Save & Quit.
func (h *HUD) Reset() {
	*h = HUD{}
}

func (h *HUD) Update(dt float64) {
	if h.streakMs > 0 {
		h.streakMs -= dt
	}
}

func (h *HUD) Draw(dst *ebiten.Image) {
	if h.player == nil {
		return
	}
	w := dst.Bounds().Dx()

	ui.Panel(dst, 8, 8, 232, 58, palette.PanelBG, palette.PanelBorder)
	ui.Text(dst, fmt.Sprintf("%s  $%.0f", h.player.Name, h.player.Cash), 18, 14)
	if h.stats != nil {
		ui.Text(dst, fmt.Sprintf("Energy %.0f  Morale %.0f", h.stats.Energy.Current, h.stats.Resources.Morale), 18, 30)
		ui.Text(dst, fmt.Sprintf("Brand %.0f  Q%d", h.stats.Resources.BrandEquity, h.stats.Resources.FiscalQuarter), 18, 46)
	} else {
		ui.Text(dst, "Syncing...", 18, 30)
	}

	if h.mapName != "" {
		nameW := 6*len(h.mapName) + 24
		ui.Panel(dst, float64(w-nameW-8), 8, float64(nameW), 24, palette.PanelBG, palette.PanelBorder)
		ui.Text(dst, h.mapName, w-nameW+4, 14)
	}

	if h.streakMs > 0 && h.streak > 0 {
		label := fmt.Sprintf("WIN STREAK x%d", h.streak)
		bw := 6*len(label) + 32
		ui.Panel(dst, float64(w/2-bw/2), 40, float64(bw), 26, palette.PanelBG, palette.TextAccent)
		ui.CenterText(dst, label, w/2, 46)
	}
}
