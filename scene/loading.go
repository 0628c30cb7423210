package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"venturequest/backend"
	"venturequest/ui"
)

// loadingMode bootstraps the session: CSRF token, then the saved-player
// roster. The procedural tile/sprite pipelines need no asset fetch, so
// readiness is purely the backend handshake. Failure is not fatal; the mode
// shows the error and lets the player retry.
type loadingMode struct {
	ready   bool
	pending bool
	err     string
	dots    float64
}

func (l *loadingMode) Enter(m *Manager) {
	l.ready = false
	l.err = ""
	l.begin(m)
}

func (l *loadingMode) begin(m *Manager) {
	l.pending = true
	token := m.async.begin(slotBootstrap)
	go func() {
		cerr := m.client.FetchCSRF(m.async.ctx)
		var roster []backend.Player
		var rerr error
		if cerr == nil {
			roster, rerr = m.client.Players(m.async.ctx)
		}
		m.async.post(slotBootstrap, token, func() {
			l.pending = false
			if cerr != nil {
				l.err = "Could not reach the server."
				m.log.Warn("csrf bootstrap failed", zap.Error(cerr))
				return
			}
			if rerr != nil {
				l.err = "Could not load saved ventures."
				m.log.Warn("roster bootstrap failed", zap.Error(rerr))
				return
			}
			m.allPlayers = roster
			l.ready = true
		})
	}()
}

func (l *loadingMode) HandleInput(m *Manager) {
	if l.err != "" && !l.pending && (confirmPressed() || m.pad.action) {
		l.err = ""
		l.begin(m)
	}
}

func (l *loadingMode) Update(m *Manager, dt float64) {
	l.dots += dt
	if l.ready {
		m.setState(StateTitle)
	}
}

func (l *loadingMode) Draw(m *Manager, dst *ebiten.Image) {
	lm := m.layout
	cx := lm.Width / 2
	ui.CenterText(dst, "VENTURE QUEST", cx, lm.Height/2-30)
	if l.err != "" {
		ui.CenterText(dst, l.err, cx, lm.Height/2)
		ui.CenterText(dst, "Press Enter to retry", cx, lm.Height/2+20)
		return
	}
	ui.CenterText(dst, "Loading"+dots(int(l.dots/400)%4), cx, lm.Height/2)
}

func dots(n int) string {
	return "...."[:n]
}
