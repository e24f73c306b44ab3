package statemachine

import (
	"fmt"
)

// Option configures a transition table during construction.
type Option[S, E comparable, D any] func(*Table[S, E, D]) error

// TransitionOption configures a single transition with guards and a note.
type TransitionOption[S, E comparable, D any] func(*Transition[S, E, D])

// NewTable creates a transition table from the given options.
func NewTable[S, E comparable, D any](opts ...Option[S, E, D]) (*Table[S, E, D], error) {
	t := newTable[S, E, D]()

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustNewTable creates a transition table and panics if any option fails to apply.
// Intended for package-level tables declared at init time.
func MustNewTable[S, E comparable, D any](opts ...Option[S, E, D]) *Table[S, E, D] {
	t, err := NewTable(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create transition table: %v", err))
	}
	return t
}

// WithTransition adds a single transition to the table.
func WithTransition[S, E comparable, D any](from, to S, event E, opts ...TransitionOption[S, E, D]) Option[S, E, D] {
	return func(t *Table[S, E, D]) error {
		tr := Transition[S, E, D]{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&tr)
		}
		return t.Add(tr)
	}
}

// WithTransitions adds multiple transitions to the table at once.
func WithTransitions[S, E comparable, D any](transitions []Transition[S, E, D]) Option[S, E, D] {
	return func(t *Table[S, E, D]) error {
		for i, tr := range transitions {
			if err := t.Add(tr); err != nil {
				return fmt.Errorf("failed to add transition[%d] %v->%v on %v: %w",
					i, tr.From, tr.To, tr.Event, err)
			}
		}
		return nil
	}
}

// WithGuard adds a single guard to a transition. Nil guards are ignored.
func WithGuard[S, E comparable, D any](guard Guard[S, E, D]) TransitionOption[S, E, D] {
	return func(tr *Transition[S, E, D]) {
		if guard != nil {
			tr.Guards = append(tr.Guards, guard)
		}
	}
}

// WithGuards adds multiple guards to a transition.
func WithGuards[S, E comparable, D any](guards ...Guard[S, E, D]) TransitionOption[S, E, D] {
	return func(tr *Transition[S, E, D]) {
		for _, guard := range guards {
			if guard != nil {
				tr.Guards = append(tr.Guards, guard)
			}
		}
	}
}

// WithNote sets the diagnostic reported when the transition is taken.
func WithNote[S, E comparable, D any](note string) TransitionOption[S, E, D] {
	return func(tr *Transition[S, E, D]) {
		tr.Note = note
	}
}
