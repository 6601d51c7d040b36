// Package lock implements a combination lock on top of the fsm package.
package lock

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
)

const (
	StateLocked   domain.StateID = "locked"
	StateEntering domain.StateID = "entering"
	StateOpen     domain.StateID = "open"
	StateError    domain.StateID = "error"

	TriggerCorrect  domain.Trigger = "correct_digit"
	TriggerComplete domain.Trigger = "final_digit"
	TriggerWrong    domain.Trigger = "wrong_digit"
	TriggerLock     domain.Trigger = "lock"
	TriggerReset    domain.Trigger = "reset"
)

// Definition returns the lock state machine.
func Definition() *fsm.Definition {
	return fsm.NewDefinition().
		Name("combination-lock").
		State(StateLocked,
			domain.Rule{Trigger: TriggerCorrect, To: StateEntering},
			domain.Rule{Trigger: TriggerComplete, To: StateOpen},
			domain.Rule{Trigger: TriggerWrong, To: StateError},
		).
		State(StateEntering,
			domain.Rule{Trigger: TriggerCorrect, To: StateEntering},
			domain.Rule{Trigger: TriggerComplete, To: StateOpen},
			domain.Rule{Trigger: TriggerWrong, To: StateError},
		).
		State(StateOpen, domain.Rule{Trigger: TriggerLock, To: StateLocked}).
		State(StateError, domain.Rule{Trigger: TriggerReset, To: StateLocked}).
		Initial(StateLocked)
}

// CombinationLock opens once its combination has been entered digit by digit.
type CombinationLock struct {
	combination []int
	entered     []int
	machine     *fsm.Machine
}

// New creates a locked lock for a non-empty combination.
func New(combination []int, opts ...fsm.MachineOption) (*CombinationLock, error) {
	if len(combination) == 0 {
		return nil, fmt.Errorf("combination must not be empty")
	}
	spec, err := Definition().Build()
	if err != nil {
		return nil, err
	}
	return &CombinationLock{
		combination: append([]int(nil), combination...),
		machine:     fsm.NewMachine(spec, opts...),
	}, nil
}

// EnterDigit feeds one digit. Entering digits while open or in error is an
// illegal transition; use Lock or Reset first.
func (l *CombinationLock) EnterDigit(ctx context.Context, digit int) error {
	trigger := TriggerWrong
	pos := len(l.entered)
	if pos < len(l.combination) && l.combination[pos] == digit {
		trigger = TriggerCorrect
		if pos == len(l.combination)-1 {
			trigger = TriggerComplete
		}
	}

	if err := l.machine.Fire(ctx, trigger); err != nil {
		return err
	}
	if trigger == TriggerWrong {
		l.entered = nil
		return nil
	}
	l.entered = append(l.entered, digit)
	return nil
}

// Lock closes an open lock.
func (l *CombinationLock) Lock(ctx context.Context) error {
	return l.clear(ctx, TriggerLock)
}

// Reset clears an error.
func (l *CombinationLock) Reset(ctx context.Context) error {
	return l.clear(ctx, TriggerReset)
}

func (l *CombinationLock) clear(ctx context.Context, trigger domain.Trigger) error {
	if err := l.machine.Fire(ctx, trigger); err != nil {
		return err
	}
	l.entered = nil
	return nil
}

// State returns the machine state.
func (l *CombinationLock) State() domain.StateID {
	return l.machine.Current()
}

// Status renders LOCKED, OPEN, ERROR or the digits typed so far.
func (l *CombinationLock) Status() string {
	switch l.machine.Current() {
	case StateOpen:
		return "OPEN"
	case StateError:
		return "ERROR"
	case StateEntering:
		var sb strings.Builder
		for _, d := range l.entered {
			sb.WriteString(strconv.Itoa(d))
		}
		return sb.String()
	}
	return "LOCKED"
}
