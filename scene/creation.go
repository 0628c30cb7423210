package scene

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"venturequest/backend"
	"venturequest/palette"
	"venturequest/sprite"
	"venturequest/ui"
	"venturequest/worldmap"
)

// Creation wizard steps, in the only order a submission can be assembled.
const (
	stepName = iota
	stepWorld
	stepIndustry
	stepCareer
	stepAppearance
	stepConfirm
	stepCount
)

const maxNameLen = 16

// appearanceVariants is the number of browseable hero looks; the index is
// sent to the server as character_index.
const appearanceVariants = 4

var creationWorlds = []string{"Fantasy", "Industrial", "Modern"}

var creationIndustries = map[string][]string{
	"Fantasy":    {"Potion Shop", "Enchanted Bakery", "Adventurer Outfitter"},
	"Industrial": {"Steelworks", "Rail Freight", "Textile Mill"},
	"Modern":     {"Tech Startup", "Coffee Chain", "Game Studio"},
}

var creationCareers = []string{"entrepreneur", "manager", "specialist"}

var careerLabels = map[string]string{
	"entrepreneur": "Entrepreneur - build it yourself",
	"manager":      "Manager - run the operation",
	"specialist":   "Specialist - master one craft",
}

// creationMode is a strict six-step wizard. Escape backs up one step (and
// from the first step returns to the title); a field must validate before
// the wizard advances past it.
type creationMode struct {
	step      int
	name      string
	worldIdx  int
	indIdx    int
	careerIdx int
	charIdx   int
	busy      bool
	err       string
	runes     []rune
}

func (c *creationMode) Enter(m *Manager) {
	*c = creationMode{}
}

func (c *creationMode) world() string    { return creationWorlds[c.worldIdx] }
func (c *creationMode) industry() string { return creationIndustries[c.world()][c.indIdx] }
func (c *creationMode) career() string   { return creationCareers[c.careerIdx] }

func (c *creationMode) HandleInput(m *Manager) {
	if c.busy {
		return
	}
	if cancelPressed() || m.pad.cancel {
		c.err = ""
		if c.step == stepName {
			m.setState(StateTitle)
			return
		}
		c.step--
		return
	}

	switch c.step {
	case stepName:
		c.editName()
		if confirmPressed() || m.pad.action {
			if strings.TrimSpace(c.name) == "" {
				c.err = "Name cannot be empty."
				return
			}
			c.err = ""
			c.step = stepWorld
		}
	case stepWorld:
		c.worldIdx = cycle(c.worldIdx, len(creationWorlds), m)
		if confirmPressed() || m.pad.action {
			c.indIdx = 0
			c.step = stepIndustry
		}
	case stepIndustry:
		c.indIdx = cycle(c.indIdx, len(creationIndustries[c.world()]), m)
		if confirmPressed() || m.pad.action {
			c.step = stepCareer
		}
	case stepCareer:
		c.careerIdx = cycle(c.careerIdx, len(creationCareers), m)
		if confirmPressed() || m.pad.action {
			c.step = stepAppearance
		}
	case stepAppearance:
		c.charIdx = cycle(c.charIdx, appearanceVariants, m)
		if confirmPressed() || m.pad.action {
			c.step = stepConfirm
		}
	case stepConfirm:
		if confirmPressed() || m.pad.action {
			c.submit(m)
		}
	}
}

// cycle moves an option index with left/right or up/down, wrapping.
func cycle(idx, n int, m *Manager) int {
	switch {
	case leftPressed() || upPressed() || m.pad.leftEdge() || m.pad.upEdge():
		idx--
	case rightPressed() || downPressed() || m.pad.rightEdge() || m.pad.downEdge():
		idx++
	}
	return wrapIndex(idx, n)
}

func wrapIndex(idx, n int) int {
	return ((idx % n) + n) % n
}

// editName consumes the frame's typed characters; Backspace deletes.
func (c *creationMode) editName() {
	c.runes = ebiten.AppendInputChars(c.runes[:0])
	for _, r := range c.runes {
		if len(c.name) >= maxNameLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			c.name += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(c.name) > 0 {
		rs := []rune(c.name)
		c.name = string(rs[:len(rs)-1])
	}
}

func (c *creationMode) request() backend.CreatePlayerRequest {
	return backend.CreatePlayerRequest{
		Name:           strings.TrimSpace(c.name),
		World:          c.world(),
		Industry:       c.industry(),
		CareerPath:     c.career(),
		CharacterIndex: c.charIdx,
	}
}

func (c *creationMode) submit(m *Manager) {
	c.busy = true
	c.err = ""
	req := c.request()
	token := m.async.begin(slotCreate)
	go func() {
		player, err := m.client.CreatePlayer(m.async.ctx, req)
		m.async.post(slotCreate, token, func() {
			c.busy = false
			if err != nil {
				c.err = "Could not create the venture. Try again."
				m.log.Warn("create player failed", zap.Error(err))
				return
			}
			m.playerData = player
			m.appearance = c.charIdx
			m.enterWorld(worldmap.StartMap(player.World))
		})
	}()
}

func (c *creationMode) Update(m *Manager, dt float64) {}

func (c *creationMode) Draw(m *Manager, dst *ebiten.Image) {
	lm := m.layout
	p := lm.Panel
	ui.Panel(dst, float64(p.Min.X), float64(p.Min.Y), float64(p.Dx()), float64(p.Dy()),
		palette.PanelBG, palette.PanelBorder)

	cx := lm.Width / 2
	ui.CenterText(dst, fmt.Sprintf("NEW VENTURE (%d/%d)", c.step+1, stepCount), cx, lm.TitleY)

	y := lm.ListTop
	switch c.step {
	case stepName:
		ui.Text(dst, "Name your founder:", p.Min.X+16, y)
		ui.Text(dst, "> "+c.name+"_", p.Min.X+16, y+lm.RowHeight)
	case stepWorld:
		ui.Text(dst, "Choose a world:", p.Min.X+16, y)
		drawOptions(dst, creationWorlds, c.worldIdx, p.Min.X+16, y+lm.RowHeight, lm.RowHeight)
	case stepIndustry:
		ui.Text(dst, "Choose an industry:", p.Min.X+16, y)
		drawOptions(dst, creationIndustries[c.world()], c.indIdx, p.Min.X+16, y+lm.RowHeight, lm.RowHeight)
	case stepCareer:
		ui.Text(dst, "Choose a career path:", p.Min.X+16, y)
		labels := make([]string, len(creationCareers))
		for i, k := range creationCareers {
			labels[i] = careerLabels[k]
		}
		drawOptions(dst, labels, c.careerIdx, p.Min.X+16, y+lm.RowHeight, lm.RowHeight)
	case stepAppearance:
		ui.Text(dst, "Choose a look:  < >", p.Min.X+16, y)
		m.sprites.Draw(dst, m.animMs, sprite.Hero,
			float64(cx-16), float64(y+lm.RowHeight), sprite.FacingDown, 0, false, nil, c.charIdx, 0)
		ui.CenterText(dst, fmt.Sprintf("Variant %d", c.charIdx+1), cx, y+lm.RowHeight+40)
	case stepConfirm:
		ui.Text(dst, "Ready to begin?", p.Min.X+16, y)
		ui.Text(dst, "Name:     "+c.name, p.Min.X+16, y+lm.RowHeight)
		ui.Text(dst, "World:    "+c.world(), p.Min.X+16, y+2*lm.RowHeight)
		ui.Text(dst, "Industry: "+c.industry(), p.Min.X+16, y+3*lm.RowHeight)
		ui.Text(dst, "Career:   "+c.career(), p.Min.X+16, y+4*lm.RowHeight)
	}

	if c.busy {
		ui.CenterText(dst, "Founding the venture...", cx, p.Max.Y-30)
	} else if c.err != "" {
		ui.CenterText(dst, c.err, cx, p.Max.Y-30)
	} else {
		ui.CenterText(dst, "Enter: next   Esc: back", cx, p.Max.Y-30)
	}
}

func drawOptions(dst *ebiten.Image, opts []string, sel, x, y, rowH int) {
	for i, o := range opts {
		marker := "  "
		if i == sel {
			marker = "> "
		}
		ui.Text(dst, marker+o, x, y+i*rowH)
	}
}
