package scene

import (
	"context"

	"github.com/google/uuid"
)

// slot names one logical async operation. A slot holds at most one relevant
// in-flight request; issuing a new one supersedes the old.
type slot int

const (
	slotBootstrap slot = iota
	slotRoster
	slotLogin
	slotCreate
	slotStats
	slotEncounter
	slotChoose
)

// asyncHub serializes async completions onto the cooperative tick. Fetch
// goroutines post closures here; drain runs them on Update. Every request is
// issued under a token, and a completion whose token no longer matches its
// slot is dropped: a response arriving after the user navigated away must not
// mutate newer state.
type asyncHub struct {
	ctx         context.Context
	tokens      map[slot]uuid.UUID
	completions chan completion
}

type completion struct {
	slot  slot
	token uuid.UUID
	apply func()
}

func newAsyncHub() *asyncHub {
	return &asyncHub{
		ctx:         context.Background(),
		tokens:      make(map[slot]uuid.UUID),
		completions: make(chan completion, 32),
	}
}

// begin registers a fresh request on the slot and returns its token.
func (h *asyncHub) begin(s slot) uuid.UUID {
	token := uuid.New()
	h.tokens[s] = token
	return token
}

// post queues a completion for the next drain. Never blocks the fetch
// goroutine for long; the buffer is far larger than the number of slots.
func (h *asyncHub) post(s slot, token uuid.UUID, apply func()) {
	h.completions <- completion{slot: s, token: token, apply: apply}
}

// drain applies every queued completion whose token is still current.
func (h *asyncHub) drain() {
	for {
		select {
		case c := <-h.completions:
			if h.tokens[c.slot] == c.token {
				c.apply()
			}
		default:
			return
		}
	}
}

// invalidateAll drops every in-flight request; called on state transitions.
func (h *asyncHub) invalidateAll() {
	for s := range h.tokens {
		h.tokens[s] = uuid.Nil
	}
}
