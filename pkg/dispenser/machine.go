package dispenser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispenser/pkg/logger"
)

// Machine is a single payment-gated unit dispenser.
// It owns its state and inventory outright; the transition table is shared and read-only.
// Each stimulus runs to completion under the machine's lock, so concurrent callers
// are serialized and never observe the transient Sold state.
type Machine struct {
	id        string
	state     State
	inventory int
	out       io.Writer
	log       *slog.Logger
	mu        sync.Mutex
}

// Status is a point-in-time view of a machine.
type Status struct {
	ID        string `json:"id"`
	State     State  `json:"state"`
	Inventory int    `json:"inventory"`
}

// Option configures a Machine during construction.
type Option func(*Machine)

// WithOutput sets where diagnostics are written, one line each. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		if w != nil {
			m.out = w
		}
	}
}

// WithLogger supplies a logger for stimulus tracing. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithID overrides the generated machine identifier.
func WithID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}

// New constructs a machine holding inventory units.
// It starts in NoPayment when stocked and in SoldOut when empty.
func New(inventory int, opts ...Option) (*Machine, error) {
	if inventory < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeInventory, inventory)
	}

	m := &Machine{
		id:        uuid.New().String(),
		state:     SoldOut,
		inventory: inventory,
		out:       io.Discard,
		log:       logger.Nop(),
	}
	if inventory > 0 {
		m.state = NoPayment
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// MustNew is like New but panics on a negative inventory.
func MustNew(inventory int, opts ...Option) *Machine {
	m, err := New(inventory, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create dispenser: %v", err))
	}
	return m
}

// InsertPayment handles a coin or card being presented.
func (m *Machine) InsertPayment(ctx context.Context) Outcome {
	return m.mustApply(ctx, InsertPayment)
}

// EjectPayment handles the refund button.
func (m *Machine) EjectPayment(ctx context.Context) Outcome {
	return m.mustApply(ctx, EjectPayment)
}

// TurnCrank handles the crank; with a payment held it dispenses in the same call.
func (m *Machine) TurnCrank(ctx context.Context) Outcome {
	return m.mustApply(ctx, TurnCrank)
}

// Apply dispatches any caller stimulus. It fails only for stimuli callers cannot send;
// invalid stimuli for the current state are handled transitions, not errors.
func (m *Machine) Apply(ctx context.Context, s Stimulus) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out, err := Step(m.state, s, m.inventory)
	if err != nil {
		return Outcome{}, err
	}

	m.state = out.To
	m.inventory = out.Inventory

	for _, msg := range out.Messages {
		if _, err := fmt.Fprintln(m.out, msg); err != nil {
			m.log.WarnContext(ctx, "failed to write diagnostic",
				logger.MachineID(m.id),
				logger.Error(err),
			)
			break
		}
	}

	m.log.DebugContext(ctx, "stimulus handled",
		logger.MachineID(m.id),
		logger.Stimulus(s),
		logger.Transition(out.From, out.To),
		logger.Inventory(out.Inventory),
	)
	if out.Dispensed {
		m.log.InfoContext(ctx, "unit dispensed",
			logger.MachineID(m.id),
			logger.Inventory(out.Inventory),
		)
	}

	return out, nil
}

// mustApply is only called with the three external stimuli, which Step always accepts.
func (m *Machine) mustApply(ctx context.Context, s Stimulus) Outcome {
	out, err := m.Apply(ctx, s)
	if err != nil {
		panic(fmt.Sprintf("dispenser: %s rejected: %v", s, err))
	}
	return out
}

func (m *Machine) ID() string {
	return m.id
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Inventory() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inventory
}

// Status returns state and inventory read under one lock.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{ID: m.id, State: m.state, Inventory: m.inventory}
}
