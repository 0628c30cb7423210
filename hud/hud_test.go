package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venturequest/backend"
)

func TestStreakBannerExpires(t *testing.T) {
	h := New()
	h.ShowStreak(4)
	assert.Positive(t, h.streakMs)

	for i := 0; i < 200; i++ {
		h.Update(16.67)
	}
	assert.LessOrEqual(t, h.streakMs, 0.0)
}

func TestResetClearsSession(t *testing.T) {
	h := New()
	h.SetPlayer(&backend.Player{Name: "Ava"})
	h.SetMapName("Town Square")
	h.ShowStreak(2)

	h.Reset()
	assert.Nil(t, h.player)
	assert.Empty(t, h.mapName)
	assert.Zero(t, h.streak)
}
