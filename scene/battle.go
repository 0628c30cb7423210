package scene

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"venturequest/backend"
	"venturequest/palette"
	"venturequest/sprite"
	"venturequest/ui"
)

// Battle pacing. Damage is a fixed presentation of the server's verdict, not
// a simulation: a win empties the rival's bar, a loss costs the player a
// fixed chunk, floored so a streak of losses never reads as a game over.
const (
	battleMaxHP     = 100
	battleLossDmg   = 30
	battleMinHP     = 10
	hpAnimPerSecond = 120.0
)

type battlePhase int

const (
	phaseIntro battlePhase = iota
	phaseQuestion
	phaseResult
)

// battleMode presents one scenario quiz as a turn-based encounter. The
// scenario content and the verdict are entirely server-side; this mode only
// sequences the theater around them.
type battleMode struct {
	phase      battlePhase
	discipline string
	scenario   *backend.Scenario
	keys       []string
	cursor     int
	busy       bool
	err        string

	playerHP    int
	enemyHP     int
	playerShown float64 // HP bars ease toward the real values
	enemyShown  float64
	won         bool
	feedback    string
	cashChange  float64
	expGained   float64
	introMs     float64
}

// startEncounter lists the discipline's scenarios, picks the first
// unfinished one, and opens it. Everything the player has already cleared
// stays cleared; a fully cleared discipline just says so in the world.
func (m *Manager) startEncounter(discipline string) {
	b := m.mode(StateBattle).(*battleMode)
	token := m.async.begin(slotEncounter)
	go func() {
		refs, err := m.client.Scenarios(m.async.ctx, discipline)
		var scenario *backend.Scenario
		if err == nil {
			next := ""
			for _, ref := range refs {
				if !ref.Completed {
					next = ref.ID
					break
				}
			}
			if next == "" {
				m.async.post(slotEncounter, token, func() {
					m.fx.FloatText("Nothing new to tackle here.", float64(m.width)/2, float64(m.height)/2)
				})
				return
			}
			scenario, err = m.client.Play(m.async.ctx, next)
		}
		m.async.post(slotEncounter, token, func() {
			if err != nil {
				m.log.Warn("encounter fetch failed",
					zap.String("discipline", discipline), zap.Error(err))
				m.fx.FloatText("The venture is unreachable right now.", float64(m.width)/2, float64(m.height)/2)
				return
			}
			if len(scenario.Choices) == 0 {
				m.log.Warn("scenario has no choices",
					zap.String("scenario_id", scenario.ID))
				m.fx.FloatText("This venture is not ready yet.", float64(m.width)/2, float64(m.height)/2)
				return
			}
			b.begin(discipline, scenario)
			m.setState(StateBattle)
		})
	}()
}

// begin loads an encounter into the mode before the state switch; Enter then
// only resets the theater.
func (b *battleMode) begin(discipline string, s *backend.Scenario) {
	b.discipline = discipline
	b.scenario = s
	b.keys = make([]string, 0, len(s.Choices))
	for k := range s.Choices {
		b.keys = append(b.keys, k)
	}
	sort.Strings(b.keys)
}

func (b *battleMode) Enter(m *Manager) {
	b.phase = phaseIntro
	b.cursor = 0
	b.busy = false
	b.err = ""
	b.playerHP = battleMaxHP
	b.enemyHP = battleMaxHP
	b.playerShown = battleMaxHP
	b.enemyShown = battleMaxHP
	b.introMs = 0
}

func (b *battleMode) HandleInput(m *Manager) {
	if b.busy {
		return
	}
	_, _, clicked := mouseClick()
	switch b.phase {
	case phaseIntro:
		if confirmPressed() || m.pad.action || clicked {
			b.phase = phaseQuestion
		}
	case phaseQuestion:
		switch {
		case upPressed() || m.pad.upEdge():
			b.moveCursor(-1)
		case downPressed() || m.pad.downEdge():
			b.moveCursor(1)
		case confirmPressed() || m.pad.action:
			b.submit(m)
		default:
			if x, y, ok := mouseClick(); ok {
				cb := m.layout.ChoiceBox
				i := rowHit(x, y, cb, cb.Min.Y+10, m.layout.RowHeight, len(b.keys))
				if i >= 0 {
					b.cursor = i
					b.submit(m)
				}
			}
		}
	case phaseResult:
		if confirmPressed() || m.pad.action || clicked {
			m.setState(StateWorld)
			m.refreshStats()
		}
	}
}

// moveCursor wraps over the choice list; a content bug that ships an empty
// choice set must not take the client down with it.
func (b *battleMode) moveCursor(delta int) {
	if len(b.keys) == 0 {
		return
	}
	b.cursor = wrapIndex(b.cursor+delta, len(b.keys))
}

func (b *battleMode) submit(m *Manager) {
	if len(b.keys) == 0 {
		return
	}
	b.busy = true
	b.err = ""
	key := b.keys[b.cursor]
	token := m.async.begin(slotChoose)
	go func() {
		result, err := m.client.Choose(m.async.ctx, b.scenario.ID, key)
		m.async.post(slotChoose, token, func() {
			b.busy = false
			if err != nil {
				b.err = "The pitch did not go through. Try again."
				m.log.Warn("choice submit failed",
					zap.String("scenario_id", b.scenario.ID), zap.Error(err))
				return
			}
			b.applyResult(result)
			m.recordBattleOutcome(b.won)
		})
	}()
}

// applyResult turns the server verdict into the fixed damage presentation.
func (b *battleMode) applyResult(res *backend.ChooseResult) {
	b.won = res.Success
	b.feedback = res.Feedback
	b.cashChange = res.CashChange
	b.expGained = res.ExpGained
	if res.Success {
		b.enemyHP = 0
	} else {
		b.playerHP -= battleLossDmg
		if b.playerHP < battleMinHP {
			b.playerHP = battleMinHP
		}
	}
	b.phase = phaseResult
}

func (b *battleMode) Update(m *Manager, dt float64) {
	b.introMs += dt
	b.playerShown = easeHP(b.playerShown, float64(b.playerHP), dt)
	b.enemyShown = easeHP(b.enemyShown, float64(b.enemyHP), dt)
}

func easeHP(shown, target, dt float64) float64 {
	step := hpAnimPerSecond * dt / 1000
	switch {
	case shown > target+step:
		return shown - step
	case shown < target-step:
		return shown + step
	default:
		return target
	}
}

func (b *battleMode) Draw(m *Manager, dst *ebiten.Image) {
	lm := m.layout
	cx := lm.Width / 2

	// Rival panel with a mystic standing in for the business challenge.
	eb := lm.EnemyBox
	ui.Panel(dst, float64(eb.Min.X), float64(eb.Min.Y), float64(eb.Dx()), float64(eb.Dy()),
		palette.PanelBG, palette.PanelBorder)
	m.sprites.Draw(dst, m.animMs, sprite.Mystic,
		float64(cx-16), float64(eb.Min.Y+8), sprite.FacingDown, 0, false, nil, 1, 0)
	drawHPBar(dst, eb.Min.X+12, eb.Max.Y-30, eb.Dx()-24, b.enemyShown, "Rival")
	drawHPBar(dst, eb.Min.X+12, eb.Max.Y-14, eb.Dx()-24, b.playerShown, "You")

	pb := lm.PromptBox
	ui.Panel(dst, float64(pb.Min.X), float64(pb.Min.Y), float64(pb.Dx()), float64(pb.Dy()),
		palette.PanelBG, palette.PanelBorder)

	switch b.phase {
	case phaseIntro:
		ui.CenterText(dst, "A business challenge appears!", cx, pb.Min.Y+12)
		if int(b.introMs/500)%2 == 0 {
			ui.CenterText(dst, "Press Enter", cx, pb.Max.Y-24)
		}
	case phaseQuestion:
		drawWrapped(dst, b.scenario.Text, pb.Min.X+12, pb.Min.Y+12, (pb.Dx()-24)/6)
		cb := lm.ChoiceBox
		ui.Panel(dst, float64(cb.Min.X), float64(cb.Min.Y), float64(cb.Dx()), float64(cb.Dy()),
			palette.PanelBG, palette.PanelBorder)
		y := cb.Min.Y + 10
		for i, k := range b.keys {
			marker := "  "
			if i == b.cursor {
				marker = "> "
			}
			ui.Text(dst, fmt.Sprintf("%s%s) %s", marker, k, b.scenario.Choices[k].Text), cb.Min.X+12, y)
			y += lm.RowHeight
		}
		if b.busy {
			ui.CenterText(dst, "Pitching...", cx, cb.Max.Y-20)
		} else if b.err != "" {
			ui.CenterText(dst, b.err, cx, cb.Max.Y-20)
		}
	case phaseResult:
		verdict := "Setback..."
		if b.won {
			verdict = "Victory!"
		}
		ui.CenterText(dst, verdict, cx, pb.Min.Y+12)
		drawWrapped(dst, b.feedback, pb.Min.X+12, pb.Min.Y+32, (pb.Dx()-24)/6)
		if b.won {
			ui.CenterText(dst, fmt.Sprintf("+%.0f exp   %+.0f cash", b.expGained, b.cashChange), cx, pb.Max.Y-40)
		}
		ui.CenterText(dst, "Press Enter to return", cx, pb.Max.Y-24)
	}
}

func drawHPBar(dst *ebiten.Image, x, y, w int, shown float64, label string) {
	frac := shown / battleMaxHP
	if frac < 0 {
		frac = 0
	}
	barW := float64(w - 60)
	ui.FillRect(dst, float64(x+52), float64(y), barW, 8, palette.CursorBG)
	c := palette.TextGood
	if frac < 0.35 {
		c = palette.TextDanger
	}
	ui.FillRect(dst, float64(x+52), float64(y), barW*frac, 8, c)
	ui.TextPlain(dst, label, x, y-4)
}

// drawWrapped word-wraps s to cols glyph columns of debug text.
func drawWrapped(dst *ebiten.Image, s string, x, y, cols int) {
	line := ""
	words := splitWords(s)
	for _, w := range words {
		if line != "" && len(line)+1+len(w) > cols {
			ui.Text(dst, line, x, y)
			y += 16
			line = w
			continue
		}
		if line == "" {
			line = w
		} else {
			line += " " + w
		}
	}
	if line != "" {
		ui.Text(dst, line, x, y)
	}
}

func splitWords(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' || r == '\n' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
