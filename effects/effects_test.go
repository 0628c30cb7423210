package effects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newSilentSystem() *System {
	return NewSystem(zap.NewNop(), false)
}

func TestConfettiParticlesDecay(t *testing.T) {
	s := newSilentSystem()
	s.Confetti(100, 100)
	assert.Len(t, s.particles, confettiCount)

	for i := 0; i < 120; i++ {
		s.Update(16.67)
	}
	assert.Empty(t, s.particles)
}

func TestFloatTextDriftsUpAndExpires(t *testing.T) {
	s := newSilentSystem()
	s.FloatText("hello", 50, 200)
	startY := s.texts[0].y

	s.Update(500)
	assert.Less(t, s.texts[0].y, startY)

	s.Update(floatLifeMs)
	assert.Empty(t, s.texts)
}

func TestDisabledAudioCuesAreNoops(t *testing.T) {
	s := newSilentSystem()
	s.PlayWin()
	s.PlayLose()
	s.PlayTransition()
	s.PlayTalk()
}

func TestToneStreamerEndsAndFadesOut(t *testing.T) {
	str := newTone(440, 50*time.Millisecond)
	buf := make([][2]float64, 16384)
	total := 0
	for {
		n, ok := str.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, audioRate.N(50*time.Millisecond), total)
}
