package domain

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a trigger has no rule for the current state.
// The cursor is never mutated when this error is reported.
var ErrIllegalTransition = errors.New("illegal transition")

// ErrUnknownState is returned by strict helpers when a state is absent from the table.
var ErrUnknownState = errors.New("unknown state")

// ErrTerminalState is returned when a trigger is fired on a session that already terminated.
var ErrTerminalState = errors.New("session reached a terminal state")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// IllegalTransitionError carries the state and trigger of a rejected transition.
type IllegalTransitionError struct {
	State   StateID
	Trigger Trigger
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%v: no rule for trigger %q in state %q", ErrIllegalTransition, e.Trigger, e.State)
}

// Unwrap allows errors.Is(err, ErrIllegalTransition).
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
