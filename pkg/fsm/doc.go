/*
Package fsm implements a table-driven finite state machine interpreter.

A Table maps each source state to an ordered list of (trigger, target-state) rules.
Apply is a pure lookup: it never mutates anything and reports an unmatched trigger as a
recoverable *domain.IllegalTransitionError. Callers own the cursor, either directly or
through a Machine.

	spec, err := fsm.NewDefinition().
		Rule("idle", "dial", "connecting").
		Rule("connecting", "answer", "connected").
		Rule("connected", "hang_up", "idle").
		Initial("idle").
		Build()

	next, err := spec.Table.Apply("idle", "dial") // "connecting"
*/
package fsm
