package viewmodel

import (
	"slices"
	"sync"
)

type subscriber[S any] struct {
	id int
	fn func(S)
}

// holder is the single state cell of a view model.
type holder[S any] struct {
	mu      sync.Mutex
	state   S
	tickets map[string]uint64

	// notifyMu keeps subscriber calls in update order.
	notifyMu sync.Mutex
	subsMu   sync.Mutex
	subs     []subscriber[S]
	nextSub  int
}

func newHolder[S any](initial S) *holder[S] {
	return &holder[S]{state: initial, tickets: make(map[string]uint64)}
}

func (h *holder[S]) get() S {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// update applies fn to a copy of the state, stores it and notifies the
// subscribers in subscription order. Subscribers must not call update.
func (h *holder[S]) update(fn func(*S)) {
	h.apply(func(s *S) bool {
		fn(s)
		return true
	})
}

// claim is update that also starts a new ticket for key, making every
// earlier ticket for key stale.
func (h *holder[S]) claim(key string, fn func(*S)) uint64 {
	var ticket uint64
	h.apply(func(s *S) bool {
		h.tickets[key]++
		ticket = h.tickets[key]
		fn(s)
		return true
	})
	return ticket
}

// settle is update for the holder of ticket. It does nothing and returns
// false when a newer ticket for key was claimed.
func (h *holder[S]) settle(key string, ticket uint64, fn func(*S)) bool {
	return h.apply(func(s *S) bool {
		if h.tickets[key] != ticket {
			return false
		}
		fn(s)
		return true
	})
}

func (h *holder[S]) apply(fn func(*S) bool) bool {
	h.mu.Lock()
	next := h.state
	if !fn(&next) {
		h.mu.Unlock()
		return false
	}
	h.state = next
	h.notifyMu.Lock()
	h.mu.Unlock()
	defer h.notifyMu.Unlock()

	h.subsMu.Lock()
	subs := make([]func(S), 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub.fn)
	}
	h.subsMu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return true
}

func (h *holder[S]) subscribe(fn func(S)) func() {
	h.subsMu.Lock()
	defer h.subsMu.Unlock()

	id := h.nextSub
	h.nextSub++
	h.subs = append(h.subs, subscriber[S]{id: id, fn: fn})

	return func() {
		h.subsMu.Lock()
		defer h.subsMu.Unlock()
		h.subs = slices.DeleteFunc(h.subs, func(s subscriber[S]) bool { return s.id == id })
	}
}
