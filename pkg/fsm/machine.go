package fsm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/switchyard/internal/logging"
	"github.com/aretw0/switchyard/pkg/domain"
)

// Machine owns a cursor over a Spec.
// It is not safe for concurrent use; session.Manager serializes access per session.
type Machine struct {
	spec      *Spec
	cursor    *domain.Cursor
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	sessionID string
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) MachineOption {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithSessionID labels events and the cursor.
func WithSessionID(id string) MachineOption {
	return func(m *Machine) {
		m.sessionID = id
	}
}

// WithCursor resumes from an existing cursor instead of the initial state.
func WithCursor(c *domain.Cursor) MachineOption {
	return func(m *Machine) {
		m.cursor = c.Clone()
	}
}

// NewMachine creates a Machine positioned at the initial state of the spec.
func NewMachine(spec *Spec, opts ...MachineOption) *Machine {
	m := &Machine{
		spec:   spec,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cursor == nil {
		m.cursor = domain.NewCursor(m.sessionID, spec.Initial)
	}
	m.cursor.Terminated = spec.IsTerminal(m.cursor.State)
	return m
}

// Current returns the current state.
func (m *Machine) Current() domain.StateID {
	return m.cursor.State
}

// Cursor returns a copy of the current cursor.
func (m *Machine) Cursor() *domain.Cursor {
	return m.cursor.Clone()
}

// Spec returns the spec driving the machine.
func (m *Machine) Spec() *Spec {
	return m.spec
}

// Permitted returns the rules available from the current state.
func (m *Machine) Permitted() []domain.Rule {
	return m.spec.Table.RulesFor(m.cursor.State)
}

// IsTerminal reports whether the machine reached a terminal state.
func (m *Machine) IsTerminal() bool {
	return m.cursor.Terminated
}

// Fire applies a trigger. On error the cursor is left untouched.
func (m *Machine) Fire(ctx context.Context, trigger domain.Trigger) error {
	from := m.cursor.State
	evt := &domain.TransitionEvent{
		Timestamp: time.Now().UTC(),
		SessionID: m.sessionID,
		From:      from,
		Trigger:   trigger,
	}

	if m.cursor.Terminated {
		m.hooks.Emit(ctx, evt, false)
		return domain.ErrTerminalState
	}

	to, err := m.spec.Table.Apply(from, trigger)
	if err != nil {
		m.logger.Debug("transition rejected", "from", from, "trigger", trigger)
		m.hooks.Emit(ctx, evt, false)
		return err
	}

	m.cursor.Advance(to)
	m.cursor.Terminated = m.spec.IsTerminal(to)
	evt.To = to

	m.logger.Debug("transition", "from", from, "to", to, "trigger", trigger, "terminal", m.cursor.Terminated)
	m.hooks.Emit(ctx, evt, m.cursor.Terminated)
	return nil
}

// IsIllegal reports whether err is a rejected transition.
func IsIllegal(err error) bool {
	return errors.Is(err, domain.ErrIllegalTransition)
}
