package statemachine

import (
	"fmt"
	"sync"
)

// Table is a lookup structure from (state, event) to the transitions declared for it.
// Uses a nested map for O(1) lookups: [from][event][]Transition.
// Resolve never mutates the table, so a single Table can back any number of machines.
type Table[S, E comparable, D any] struct {
	transitions map[S]map[E][]Transition[S, E, D]
	states      []S
	events      map[S][]E
	mu          sync.RWMutex
}

func newTable[S, E comparable, D any]() *Table[S, E, D] {
	return &Table[S, E, D]{
		transitions: make(map[S]map[E][]Transition[S, E, D]),
		events:      make(map[S][]E),
	}
}

// Add appends a transition. Several transitions for the same from/event pair
// support guard-based branching; they are tried in the order they were added.
func (t *Table[S, E, D]) Add(tr Transition[S, E, D]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	byEvent, ok := t.transitions[tr.From]
	if !ok {
		byEvent = make(map[E][]Transition[S, E, D])
		t.transitions[tr.From] = byEvent
		t.states = append(t.states, tr.From)
	}
	existing, ok := byEvent[tr.Event]
	if !ok {
		t.events[tr.From] = append(t.events[tr.From], tr.Event)
	}
	for _, prev := range existing {
		if len(prev.Guards) == 0 {
			return fmt.Errorf("%w: %v on %v", ErrUnreachableTransition, tr.From, tr.Event)
		}
	}

	byEvent[tr.Event] = append(byEvent[tr.Event], tr)
	return nil
}

// Resolve returns the first transition for from/event whose guards all pass.
func (t *Table[S, E, D]) Resolve(from S, event E, data D) (Transition[S, E, D], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	candidates := t.transitions[from][event]
	if len(candidates) == 0 {
		return Transition[S, E, D]{}, NewErrNoTransitionAvailable(from, event)
	}

	// First transition with passing guards wins
	for _, tr := range candidates {
		if tr.allows(data) {
			return tr, nil
		}
	}

	return Transition[S, E, D]{}, NewErrTransitionRejected(from, event)
}

// Can reports whether Resolve would succeed for the given arguments.
func (t *Table[S, E, D]) Can(from S, event E, data D) bool {
	_, err := t.Resolve(from, event, data)
	return err == nil
}

// Events returns the events declared for a state, in declaration order.
func (t *Table[S, E, D]) Events(from S) []E {
	t.mu.RLock()
	defer t.mu.RUnlock()

	events := make([]E, len(t.events[from]))
	copy(events, t.events[from])
	return events
}

// States returns every state that has at least one outgoing transition, in declaration order.
func (t *Table[S, E, D]) States() []S {
	t.mu.RLock()
	defer t.mu.RUnlock()

	states := make([]S, len(t.states))
	copy(states, t.states)
	return states
}

// Transitions returns a copy of the transitions declared for a state, grouped by event.
func (t *Table[S, E, D]) Transitions(from S) []Transition[S, E, D] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Transition[S, E, D]
	for _, event := range t.events[from] {
		out = append(out, t.transitions[from][event]...)
	}
	return out
}
