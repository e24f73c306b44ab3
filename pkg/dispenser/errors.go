package dispenser

import "errors"

var (
	// ErrNegativeInventory is returned when a machine is constructed with fewer than zero units.
	ErrNegativeInventory = errors.New("inventory cannot be negative")

	// ErrInvalidState is returned for state values outside the four declared states.
	ErrInvalidState = errors.New("invalid dispenser state")

	// ErrUnknownStimulus is returned for stimuli callers cannot send.
	ErrUnknownStimulus = errors.New("unknown stimulus")
)
