package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturequest/worldmap"
)

func TestRevealOneRunePerInterval(t *testing.T) {
	var d Dialogue
	d.Open("Marta", []string{"Hello"}, nil)
	require.Equal(t, DialogueTyping, d.State())

	d.Update(RevealIntervalMs)
	assert.Equal(t, "H", d.Shown())
	d.Update(RevealIntervalMs * 2)
	assert.Equal(t, "Hel", d.Shown())

	d.Update(RevealIntervalMs * 10)
	assert.Equal(t, "Hello", d.Shown())
	assert.Equal(t, DialogueComplete, d.State())
}

func TestAdvanceWhileTypingCompletesReveal(t *testing.T) {
	var d Dialogue
	d.Open("", []string{"A long message under reveal"}, nil)
	d.Update(RevealIntervalMs)
	require.Equal(t, DialogueTyping, d.State())

	fired := d.Advance()
	assert.Nil(t, fired)
	assert.Equal(t, DialogueComplete, d.State())
	assert.Equal(t, d.Full(), d.Shown(), "reveal completes in one step, never partially")
}

func TestDeferredActionFiresOnlyAfterQueueExhaustion(t *testing.T) {
	action := &worldmap.ActionRef{Tag: "scenario", Route: "marketing"}
	var d Dialogue
	d.Open("Marta", []string{"one", "two", "three"}, action)

	finish := func() {
		d.Update(1000)
		require.Equal(t, DialogueComplete, d.State())
	}

	finish()
	assert.Nil(t, d.Advance(), "advancing past message 1 must not fire")
	finish()
	assert.Nil(t, d.Advance(), "advancing past message 2 must not fire")
	finish()
	fired := d.Advance()
	require.NotNil(t, fired)
	assert.Equal(t, *action, *fired)
	assert.Equal(t, DialogueClosed, d.State())

	// Exactly once: a re-advance on a closed dialogue returns nothing.
	assert.Nil(t, d.Advance())
}

func TestOpenWithNoMessagesIsNoop(t *testing.T) {
	var d Dialogue
	d.Open("x", nil, &worldmap.ActionRef{Tag: "scenario"})
	assert.False(t, d.Active())
	assert.Nil(t, d.Advance())
}

func TestDialogueWithoutActionClosesCleanly(t *testing.T) {
	var d Dialogue
	d.Open("", []string{"only"}, nil)
	d.Update(1000)
	assert.Nil(t, d.Advance())
	assert.False(t, d.Active())
}
