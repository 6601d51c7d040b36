package fsm

import (
	"fmt"

	"github.com/aretw0/switchyard/pkg/domain"
)

// Spec is a validated table together with its entry and exit configuration.
type Spec struct {
	Name     string
	Table    *Table
	Initial  domain.StateID
	terminal map[domain.StateID]bool
}

// IsTerminal reports whether the state is a designated terminal state.
func (s *Spec) IsTerminal(state domain.StateID) bool {
	return s.terminal[state]
}

// TerminalStates returns the terminal states in declaration order.
func (s *Spec) TerminalStates() []domain.StateID {
	var out []domain.StateID
	for _, id := range s.Table.order {
		if s.terminal[id] {
			out = append(out, id)
		}
	}
	return out
}

// Definition holds the FSM structure before building a Spec.
type Definition struct {
	name     string
	table    *Table
	initial  domain.StateID
	terminal []domain.StateID
}

// NewDefinition creates a new FSM definition builder.
func NewDefinition() *Definition {
	return &Definition{table: NewTable()}
}

// Name labels the definition.
func (d *Definition) Name(name string) *Definition {
	d.name = name
	return d
}

// State declares a state with its rules, in order.
func (d *Definition) State(id domain.StateID, rules ...domain.Rule) *Definition {
	d.table.AddState(id)
	for _, r := range rules {
		d.table.AddRule(id, r.Trigger, r.To)
	}
	return d
}

// Rule adds a transition rule.
func (d *Definition) Rule(from domain.StateID, trigger domain.Trigger, to domain.StateID) *Definition {
	d.table.AddRule(from, trigger, to)
	return d
}

// Initial sets the initial state.
func (d *Definition) Initial(id domain.StateID) *Definition {
	d.initial = id
	return d
}

// Terminal declares exit states. They must not have outgoing rules.
func (d *Definition) Terminal(ids ...domain.StateID) *Definition {
	for _, id := range ids {
		d.table.AddState(id)
	}
	d.terminal = append(d.terminal, ids...)
	return d
}

// Validate checks the definition for errors.
func (d *Definition) Validate() error {
	if d.initial == "" {
		return fmt.Errorf("no initial state defined")
	}
	if !d.table.Has(d.initial) {
		return fmt.Errorf("initial state %q: %w", d.initial, domain.ErrUnknownState)
	}

	for _, from := range d.table.order {
		if from == "" {
			return fmt.Errorf("state with an empty name")
		}
		for _, r := range d.table.rules[from] {
			if r.Trigger == "" {
				return fmt.Errorf("state %q has a rule with an empty trigger", from)
			}
			if !d.table.Has(r.To) {
				return fmt.Errorf("rule %q from %q targets %q: %w", r.Trigger, from, r.To, domain.ErrUnknownState)
			}
		}
	}

	for _, id := range d.terminal {
		if len(d.table.rules[id]) > 0 {
			return fmt.Errorf("terminal state %q has outgoing rules", id)
		}
	}

	return nil
}

// Build validates the definition and returns the Spec.
func (d *Definition) Build() (*Spec, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	spec := &Spec{
		Name:     d.name,
		Table:    d.table.clone(),
		Initial:  d.initial,
		terminal: make(map[domain.StateID]bool, len(d.terminal)),
	}
	for _, id := range d.terminal {
		spec.terminal[id] = true
	}
	return spec, nil
}

// MustBuild is like Build but panics on error. Intended for presets known to be valid.
func (d *Definition) MustBuild() *Spec {
	spec, err := d.Build()
	if err != nil {
		panic(err)
	}
	return spec
}
