package dispenser

import (
	"fmt"
	"strings"
)

// State is the active state of a dispenser. Exactly one is active at any time.
type State int

const (
	SoldOut State = iota
	NoPayment
	HasPayment
	Sold
)

var stateNames = [...]string{
	SoldOut:    "sold_out",
	NoPayment:  "no_payment",
	HasPayment: "has_payment",
	Sold:       "sold",
}

// States lists every state in declaration order.
func States() []State {
	return []State{SoldOut, NoPayment, HasPayment, Sold}
}

func (s State) Valid() bool {
	return s >= SoldOut && s <= Sold
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseState accepts the snake_case names produced by MarshalText, case-insensitively.
func ParseState(name string) (State, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == key {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidState, name)
}

// Stimulus is a call directed at the dispenser.
type Stimulus int

const (
	InsertPayment Stimulus = iota + 1
	EjectPayment
	TurnCrank

	// dispense runs right after the machine enters Sold; callers cannot send it.
	dispense
)

var stimulusNames = map[Stimulus]string{
	InsertPayment: "insert-payment",
	EjectPayment:  "eject-payment",
	TurnCrank:     "turn-crank",
	dispense:      "dispense",
}

var stimulusAliases = map[string]Stimulus{
	"insert":         InsertPayment,
	"insert-payment": InsertPayment,
	"eject":          EjectPayment,
	"eject-payment":  EjectPayment,
	"crank":          TurnCrank,
	"turn-crank":     TurnCrank,
}

// Stimuli lists the stimuli callers can send.
func Stimuli() []Stimulus {
	return []Stimulus{InsertPayment, EjectPayment, TurnCrank}
}

// External reports whether callers are allowed to send the stimulus.
func (s Stimulus) External() bool {
	return s >= InsertPayment && s <= TurnCrank
}

func (s Stimulus) String() string {
	if name, ok := stimulusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stimulus(%d)", int(s))
}

func (s Stimulus) MarshalText() ([]byte, error) {
	if !s.External() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStimulus, s)
	}
	return []byte(s.String()), nil
}

func (s *Stimulus) UnmarshalText(text []byte) error {
	parsed, err := ParseStimulus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStimulus accepts "insert", "eject", "crank" and their long forms, case-insensitively.
func ParseStimulus(name string) (Stimulus, error) {
	if s, ok := stimulusAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStimulus, name)
}
