package statemachine

import (
	"errors"
	"fmt"
)

// ErrUnreachableTransition is returned when a transition is added behind an unguarded
// transition for the same state/event pair and could therefore never be selected.
var ErrUnreachableTransition = errors.New("unreachable transition: an unguarded transition is already declared for this state and event")

// ErrNoTransitionAvailable indicates no transition is declared for the given state/event combination.
type ErrNoTransitionAvailable struct {
	State string
	Event string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.State, e.Event)
}

func NewErrNoTransitionAvailable(state, event any) *ErrNoTransitionAvailable {
	return &ErrNoTransitionAvailable{
		State: fmt.Sprint(state),
		Event: fmt.Sprint(event),
	}
}

// ErrTransitionRejected indicates all declared transitions were blocked by guard functions.
type ErrTransitionRejected struct {
	State string
	Event string
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' was rejected by guards", e.State, e.Event)
}

func NewErrTransitionRejected(state, event any) *ErrTransitionRejected {
	return &ErrTransitionRejected{
		State: fmt.Sprint(state),
		Event: fmt.Sprint(event),
	}
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *ErrTransitionRejected
	return errors.As(err, &e)
}
