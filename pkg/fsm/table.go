package fsm

import (
	"iter"
	"slices"

	"github.com/aretw0/switchyard/pkg/domain"
)

// Table maps each state to its ordered rules.
// The zero value is not usable; use NewTable.
type Table struct {
	rules map[domain.StateID][]domain.Rule
	order []domain.StateID
}

// NewTable creates an empty transition table.
func NewTable() *Table {
	return &Table{
		rules: make(map[domain.StateID][]domain.Rule),
	}
}

// AddState declares a state without rules. Declaring an existing state is a no-op.
func (t *Table) AddState(id domain.StateID) {
	if _, ok := t.rules[id]; ok {
		return
	}
	t.rules[id] = nil
	t.order = append(t.order, id)
}

// AddRule appends a rule to the source state, declaring it if needed.
// Existing rules keep their position.
func (t *Table) AddRule(from domain.StateID, trigger domain.Trigger, to domain.StateID) {
	t.AddState(from)
	t.rules[from] = append(t.rules[from], domain.Rule{Trigger: trigger, To: to})
}

// Apply returns the target of the first rule of current matching trigger.
func (t *Table) Apply(current domain.StateID, trigger domain.Trigger) (domain.StateID, error) {
	for _, r := range t.rules[current] {
		if r.Trigger == trigger {
			return r.To, nil
		}
	}
	return current, &domain.IllegalTransitionError{State: current, Trigger: trigger}
}

// RulesFor returns a copy of the rules of a state in configuration order.
// Unknown and terminal states yield an empty slice.
func (t *Table) RulesFor(state domain.StateID) []domain.Rule {
	return slices.Clone(t.rules[state])
}

// Rules returns a lazy ordered sequence of (trigger, target) pairs for a state.
func (t *Table) Rules(state domain.StateID) iter.Seq2[domain.Trigger, domain.StateID] {
	return func(yield func(domain.Trigger, domain.StateID) bool) {
		for _, r := range t.rules[state] {
			if !yield(r.Trigger, r.To) {
				return
			}
		}
	}
}

// Has reports whether the state is declared in the table.
func (t *Table) Has(state domain.StateID) bool {
	_, ok := t.rules[state]
	return ok
}

// States returns the declared states in declaration order.
func (t *Table) States() []domain.StateID {
	return slices.Clone(t.order)
}

func (t *Table) clone() *Table {
	c := &Table{
		rules: make(map[domain.StateID][]domain.Rule, len(t.rules)),
		order: slices.Clone(t.order),
	}
	for id, rules := range t.rules {
		c.rules[id] = slices.Clone(rules)
	}
	return c
}
