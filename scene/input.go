package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"venturequest/ui"
)

// Keyboard bindings. Arrow keys and WASD are equivalent; Enter, Space, and E
// all mean interact/confirm; Escape means cancel/back.

func moveKeys() (up, down, left, right bool) {
	up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	return
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyE)
}

func cancelPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func upPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
}

func downPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
}

func leftPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
}

func rightPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
}

// virtualPad maps touches (and mouse presses, which share coordinates) onto
// an on-screen directional pad plus action/cancel buttons, normalized to the
// same semantic action set as the keyboard before any mode sees it.
type virtualPad struct {
	up, down, left, right bool
	prevUp, prevDown      bool
	prevLeft, prevRight   bool
	action, cancel        bool
	actionHeld            bool // previous-frame state for edge detection
	cancelHeld            bool
	touchSeen             bool
	touches               []ebiten.TouchID
	lm                    Metrics
}

func newVirtualPad() *virtualPad {
	return &virtualPad{}
}

// poll reads the current touch points against the layout's control regions.
func (p *virtualPad) poll(lm Metrics) {
	p.lm = lm
	prevAction := p.actionHeld
	prevCancel := p.cancelHeld
	p.prevUp, p.prevDown, p.prevLeft, p.prevRight = p.up, p.down, p.left, p.right

	p.up, p.down, p.left, p.right = false, false, false, false
	p.actionHeld, p.cancelHeld = false, false

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		p.touchSeen = true
	}
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		p.apply(x, y, lm)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && p.touchSeen {
		x, y := ebiten.CursorPosition()
		p.apply(x, y, lm)
	}

	p.action = p.actionHeld && !prevAction
	p.cancel = p.cancelHeld && !prevCancel
}

// mouseClick reports an edge-detected left click and its position.
func mouseClick() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}

// rowHit maps a point to a list row index: rows run from top in rowH steps
// within the horizontal span of bounds. Returns -1 when the point misses.
func rowHit(x, y int, bounds image.Rectangle, top, rowH, count int) int {
	if rowH <= 0 || x < bounds.Min.X || x >= bounds.Max.X || y < top {
		return -1
	}
	i := (y - top) / rowH
	if i >= count {
		return -1
	}
	return i
}

// Edge-detected direction taps for menu navigation.
func (p *virtualPad) upEdge() bool    { return p.up && !p.prevUp }
func (p *virtualPad) downEdge() bool  { return p.down && !p.prevDown }
func (p *virtualPad) leftEdge() bool  { return p.left && !p.prevLeft }
func (p *virtualPad) rightEdge() bool { return p.right && !p.prevRight }

func (p *virtualPad) apply(x, y int, lm Metrics) {
	pt := image.Pt(x, y)
	if pt.In(lm.ActionBtn) {
		p.actionHeld = true
		return
	}
	if pt.In(lm.CancelBtn) {
		p.cancelHeld = true
		return
	}

	dx := x - lm.PadCenter.X
	dy := y - lm.PadCenter.Y
	if dx*dx+dy*dy > lm.PadRadius*lm.PadRadius*4 {
		return
	}
	// Eight-way pad collapsed to the four axes the engine understands.
	if dy < -lm.PadRadius/3 {
		p.up = true
	}
	if dy > lm.PadRadius/3 {
		p.down = true
	}
	if dx < -lm.PadRadius/3 {
		p.left = true
	}
	if dx > lm.PadRadius/3 {
		p.right = true
	}
}

// draw paints the pad while exploring on a touch device. Desktops never see
// it; the pad only appears once a touch has been observed.
func (p *virtualPad) draw(dst *ebiten.Image, worldActive bool) {
	if !worldActive || !p.touchSeen {
		return
	}
	lm := p.lm
	pad := color.RGBA{255, 255, 255, 36}
	padHot := color.RGBA{255, 255, 255, 90}

	arm := func(dx, dy int, held bool) {
		c := pad
		if held {
			c = padHot
		}
		s := lm.PadRadius * 2 / 3
		ui.FillRect(dst,
			float64(lm.PadCenter.X+dx-s/2), float64(lm.PadCenter.Y+dy-s/2),
			float64(s), float64(s), c)
	}
	arm(0, -lm.PadRadius, p.up)
	arm(0, lm.PadRadius, p.down)
	arm(-lm.PadRadius, 0, p.left)
	arm(lm.PadRadius, 0, p.right)

	ui.Panel(dst, float64(lm.ActionBtn.Min.X), float64(lm.ActionBtn.Min.Y),
		float64(lm.ActionBtn.Dx()), float64(lm.ActionBtn.Dy()), pad, padHot)
	ui.CenterText(dst, "A", (lm.ActionBtn.Min.X+lm.ActionBtn.Max.X)/2, (lm.ActionBtn.Min.Y+lm.ActionBtn.Max.Y)/2-6)
	ui.Panel(dst, float64(lm.CancelBtn.Min.X), float64(lm.CancelBtn.Min.Y),
		float64(lm.CancelBtn.Dx()), float64(lm.CancelBtn.Dy()), pad, padHot)
	ui.CenterText(dst, "B", (lm.CancelBtn.Min.X+lm.CancelBtn.Max.X)/2, (lm.CancelBtn.Min.Y+lm.CancelBtn.Max.Y)/2-6)
}
