package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsyncHubDropsStaleCompletions(t *testing.T) {
	h := newAsyncHub()

	first := h.begin(slotLogin)
	second := h.begin(slotLogin) // supersedes first

	applied := []string{}
	h.post(slotLogin, first, func() { applied = append(applied, "first") })
	h.post(slotLogin, second, func() { applied = append(applied, "second") })
	h.drain()

	assert.Equal(t, []string{"second"}, applied)
}

func TestAsyncHubInvalidateAllDropsEverything(t *testing.T) {
	h := newAsyncHub()
	token := h.begin(slotStats)
	h.invalidateAll()

	ran := false
	h.post(slotStats, token, func() { ran = true })
	h.drain()

	assert.False(t, ran)
}

func TestAsyncHubSlotsAreIndependent(t *testing.T) {
	h := newAsyncHub()
	a := h.begin(slotStats)
	b := h.begin(slotLogin)

	var got []slot
	h.post(slotStats, a, func() { got = append(got, slotStats) })
	h.post(slotLogin, b, func() { got = append(got, slotLogin) })
	h.drain()

	assert.ElementsMatch(t, []slot{slotStats, slotLogin}, got)
}
