package world

import "venturequest/worldmap"

// RevealIntervalMs is the typewriter cadence: one rune per interval.
const RevealIntervalMs = 30

// DialogueState is the phase of the dialogue sub-state-machine.
type DialogueState int

const (
	DialogueClosed DialogueState = iota
	DialogueTyping
	DialogueComplete
)

// Dialogue is the one system-wide conversation box: a queue of pending
// messages, the message being revealed rune by rune, and an optional action
// deferred until the whole queue has been advanced past. Partial dialogue
// never triggers gameplay effects.
type Dialogue struct {
	state     DialogueState
	queue     []string
	current   []rune
	shown     int
	revealAcc float64
	speaker   string
	deferred  *worldmap.ActionRef
}

// Active reports whether a conversation is open.
func (d *Dialogue) Active() bool {
	return d.state != DialogueClosed
}

// State returns the current phase.
func (d *Dialogue) State() DialogueState {
	return d.state
}

// Speaker returns the name shown above the box, if any.
func (d *Dialogue) Speaker() string {
	return d.speaker
}

// Open starts a conversation. deferred, if non-nil, fires when the last
// message is advanced past. Opening with no messages is a no-op.
func (d *Dialogue) Open(speaker string, messages []string, deferred *worldmap.ActionRef) {
	if len(messages) == 0 {
		return
	}
	d.speaker = speaker
	d.queue = append([]string(nil), messages[1:]...)
	d.current = []rune(messages[0])
	d.shown = 0
	d.revealAcc = 0
	d.deferred = deferred
	d.state = DialogueTyping
}

// Update advances the typewriter reveal by dt milliseconds.
func (d *Dialogue) Update(dt float64) {
	if d.state != DialogueTyping {
		return
	}
	d.revealAcc += dt
	for d.revealAcc >= RevealIntervalMs && d.shown < len(d.current) {
		d.revealAcc -= RevealIntervalMs
		d.shown++
	}
	if d.shown >= len(d.current) {
		d.state = DialogueComplete
	}
}

// Advance handles the advance input. Mid-reveal it completes the reveal in
// one step; on a completed message it pops the next queued message, or closes
// the conversation and returns the deferred action for the caller to fire.
// The action is returned at most once.
func (d *Dialogue) Advance() *worldmap.ActionRef {
	switch d.state {
	case DialogueTyping:
		d.shown = len(d.current)
		d.state = DialogueComplete
	case DialogueComplete:
		if len(d.queue) > 0 {
			d.current = []rune(d.queue[0])
			d.queue = d.queue[1:]
			d.shown = 0
			d.revealAcc = 0
			d.state = DialogueTyping
			return nil
		}
		fired := d.deferred
		d.deferred = nil
		d.state = DialogueClosed
		d.speaker = ""
		return fired
	}
	return nil
}

// Shown returns the revealed prefix of the current message.
func (d *Dialogue) Shown() string {
	return string(d.current[:d.shown])
}

// Full returns the whole current message.
func (d *Dialogue) Full() string {
	return string(d.current)
}
