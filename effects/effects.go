// Package effects owns fire-and-forget presentation: confetti particles,
// floating text, and the synthesized audio cues. Nothing here affects game
// state; the scene layer triggers a cue and forgets it.
package effects

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"venturequest/ui"
)

const (
	confettiCount  = 60
	confettiLifeMs = 1400
	floatLifeMs    = 1800
	gravityPx      = 260.0 // px/s^2 on confetti
)

type particle struct {
	x, y   float64
	vx, vy float64
	lifeMs float64
	c      color.RGBA
}

type floatText struct {
	s      string
	x, y   float64
	lifeMs float64
}

// System updates and draws all live effects each tick.
type System struct {
	deck      *mixerDeck
	particles []particle
	texts     []floatText
	rng       *rand.Rand
}

// NewSystem builds the effect layer. audio false skips speaker init entirely;
// a failed init on an audio-enabled machine degrades to silence on its own.
func NewSystem(log *zap.Logger, audio bool) *System {
	return &System{
		deck: newMixerDeck(log, audio),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Confetti bursts celebratory particles from (x, y).
func (s *System) Confetti(x, y float64) {
	hues := []color.RGBA{
		{255, 99, 99, 255}, {255, 214, 102, 255},
		{110, 220, 130, 255}, {120, 170, 255, 255}, {220, 130, 240, 255},
	}
	for i := 0; i < confettiCount; i++ {
		ang := s.rng.Float64() * 2 * math.Pi
		speed := 80 + s.rng.Float64()*160
		s.particles = append(s.particles, particle{
			x: x, y: y,
			vx:     math.Cos(ang) * speed,
			vy:     math.Sin(ang)*speed - 120,
			lifeMs: confettiLifeMs,
			c:      hues[s.rng.Intn(len(hues))],
		})
	}
}

// FloatText drifts a short message upward from (x, y).
func (s *System) FloatText(msg string, x, y float64) {
	s.texts = append(s.texts, floatText{s: msg, x: x, y: y, lifeMs: floatLifeMs})
}

func (s *System) Update(dt float64) {
	sec := dt / 1000
	live := s.particles[:0]
	for _, p := range s.particles {
		p.lifeMs -= dt
		if p.lifeMs <= 0 {
			continue
		}
		p.vy += gravityPx * sec
		p.x += p.vx * sec
		p.y += p.vy * sec
		live = append(live, p)
	}
	s.particles = live

	texts := s.texts[:0]
	for _, t := range s.texts {
		t.lifeMs -= dt
		if t.lifeMs <= 0 {
			continue
		}
		t.y -= 22 * sec
		texts = append(texts, t)
	}
	s.texts = texts
}

func (s *System) Draw(dst *ebiten.Image) {
	for _, p := range s.particles {
		c := p.c
		if p.lifeMs < confettiLifeMs/3 {
			c.A = uint8(255 * p.lifeMs / (confettiLifeMs / 3))
		}
		ui.FillRect(dst, p.x, p.y, 3, 3, c)
	}
	for _, t := range s.texts {
		ui.CenterText(dst, t.s, int(t.x), int(t.y))
	}
}

// Audio cues. Each is a tiny synthesized phrase; on machines without audio
// they silently do nothing.

func (s *System) PlayTransition() {
	s.deck.play(chord([]float64{392, 523}, 70*time.Millisecond))
}

func (s *System) PlayWin() {
	s.deck.play(chord([]float64{523, 659, 784, 1047}, 110*time.Millisecond))
}

func (s *System) PlayLose() {
	s.deck.play(chord([]float64{330, 277, 220}, 160*time.Millisecond))
}

func (s *System) PlayTalk() {
	s.deck.play(newTone(660, 45*time.Millisecond))
}
