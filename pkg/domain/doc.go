/*
Package domain contains the core domain models shared by the Switchyard engines.

It defines the vocabulary of the transition table interpreter (states, triggers, rules,
cursors) and the error taxonomy both engines report. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - StateID / Trigger: Opaque identifiers for states and input events.
  - Rule: A (trigger, target-state) pair owned by exactly one source state.
  - Cursor: A persisted snapshot of the current state of a session.
  - LifecycleHooks: Callbacks fired on transitions for observability.
*/
package domain
