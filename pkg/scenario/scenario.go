package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dispenser/pkg/dispenser"
)

// Step is one line of a script: a stimulus name accepted by
// dispenser.ParseStimulus, or StepInventory.
type Step string

// StepInventory prints the current unit count instead of sending a stimulus.
const StepInventory Step = "inventory"

// Stimulus resolves the step to a stimulus. It reports false for
// StepInventory and for unknown names.
func (s Step) Stimulus() (dispenser.Stimulus, bool) {
	st, err := dispenser.ParseStimulus(string(s))
	if err != nil {
		return 0, false
	}
	return st, true
}

func (s Step) isInventory() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(StepInventory))
}

// Scenario is a scripted session against a freshly built machine.
type Scenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Inventory   int          `yaml:"inventory"`
	Steps       []Step       `yaml:"steps"`
	Expect      *Expectation `yaml:"expect,omitempty"`
}

// Expectation describes the machine after the last step. Unset fields are not checked.
// Messages compares the machine diagnostics only, without inventory report lines.
type Expectation struct {
	State     *dispenser.State `yaml:"state,omitempty"`
	Inventory *int             `yaml:"inventory,omitempty"`
	Messages  []string         `yaml:"messages,omitempty"`
}

// Validate reports every problem found, joined with ErrInvalidScenario.
func (s Scenario) Validate() error {
	var errs []error

	if s.Inventory < 0 {
		errs = append(errs, fmt.Errorf("inventory must not be negative, got %d", s.Inventory))
	}
	if len(s.Steps) == 0 {
		errs = append(errs, errors.New("at least one step is required"))
	}
	for i, step := range s.Steps {
		if step.isInventory() {
			continue
		}
		if _, ok := step.Stimulus(); !ok {
			errs = append(errs, fmt.Errorf("step %d: unknown step %q", i+1, step))
		}
	}
	if s.Expect != nil {
		if s.Expect.State != nil && !s.Expect.State.Valid() {
			errs = append(errs, fmt.Errorf("expect: invalid state %d", int(*s.Expect.State)))
		}
		if s.Expect.Inventory != nil && *s.Expect.Inventory < 0 {
			errs = append(errs, fmt.Errorf("expect: inventory must not be negative, got %d", *s.Expect.Inventory))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidScenario}, errs...)...)
}

// Check compares a run result against the expectation.
func (e *Expectation) Check(res Result) error {
	if e == nil {
		return nil
	}

	var errs []error
	if e.State != nil && *e.State != res.Final.State {
		errs = append(errs, fmt.Errorf("state: want %s, got %s", *e.State, res.Final.State))
	}
	if e.Inventory != nil && *e.Inventory != res.Final.Inventory {
		errs = append(errs, fmt.Errorf("inventory: want %d, got %d", *e.Inventory, res.Final.Inventory))
	}
	if e.Messages != nil {
		if got := res.Messages(); !slices.Equal(e.Messages, got) {
			errs = append(errs, fmt.Errorf("messages: want %q, got %q", e.Messages, got))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrExpectationFailed}, errs...)...)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, errors.Join(ErrFailedToParseYAML, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Load reads and parses a YAML scenario file. A missing name defaults to the file path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Join(ErrFailedToReadFile, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Marshal encodes a scenario back to YAML.
func Marshal(s Scenario) ([]byte, error) {
	return yaml.Marshal(s)
}

// FromSteps builds an ad-hoc scenario from a comma separated step list such as "insert,crank,inventory".
func FromSteps(name string, inventory int, steps string) (Scenario, error) {
	s := Scenario{Name: name, Inventory: inventory}
	for part := range strings.SplitSeq(steps, ",") {
		if part = strings.TrimSpace(part); part != "" {
			s.Steps = append(s.Steps, Step(part))
		}
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}
