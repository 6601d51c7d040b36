package domain

import (
	"context"
	"time"
)

// TransitionEvent describes a transition attempt.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	From      StateID   `json:"from"`
	To        StateID   `json:"to,omitempty"` // Empty when the transition was rejected
	Trigger   Trigger   `json:"trigger"`
}

// LifecycleHooks defines callbacks for engine observability.
// Every field is optional.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnRejected   func(context.Context, *TransitionEvent)
	OnTerminal   func(context.Context, *TransitionEvent)
}

// Emit dispatches the event to the matching hooks. A rejected event (empty To) goes to
// OnRejected only; a transition into a terminal state also reaches OnTerminal.
func (h LifecycleHooks) Emit(ctx context.Context, e *TransitionEvent, terminal bool) {
	if e.To == "" {
		if h.OnRejected != nil {
			h.OnRejected(ctx, e)
		}
		return
	}
	if h.OnTransition != nil {
		h.OnTransition(ctx, e)
	}
	if terminal && h.OnTerminal != nil {
		h.OnTerminal(ctx, e)
	}
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition: chain(h.OnTransition, other.OnTransition),
		OnRejected:   chain(h.OnRejected, other.OnRejected),
		OnTerminal:   chain(h.OnTerminal, other.OnTerminal),
	}
}

func chain(a, b func(context.Context, *TransitionEvent)) func(context.Context, *TransitionEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *TransitionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
