/*
Package switchyard provides two small engines for event driven programs.

The first is a table driven finite state machine. A transition table maps each state to an
ordered list of (trigger, target) rules. Applying a trigger picks the first matching rule of
the current state; a trigger with no rule is rejected with an error and leaves the state
unchanged.

The second is a broadcast query broker. Subscribers register on a registry and every
broadcast query visits them in registration order, each one free to adjust the result.
Subscribers may unsubscribe while a broadcast is running, including from inside their own
handler, without disturbing the iteration.

# Usage

	spec, err := switchyard.Load("phone.yaml")
	if err != nil {
		log.Fatal(err)
	}

	m := fsm.NewMachine(spec)
	if err := m.Fire(ctx, "call_dialed"); err != nil {
		// fsm.IsIllegal(err) reports a trigger with no rule for the current state.
	}

Sessions that outlive a process are driven through session.Manager, which persists cursors in
any ports.CursorStore (memory, file, bbolt or Redis).

# Packages

  - pkg/fsm: transition table, definition builder and the stateful Machine.
  - pkg/broker: generic subscriber registry and the Query type.
  - pkg/game, pkg/mediator, pkg/observer: broker based creature modifiers, chat room and
    property observers.
  - pkg/phone, pkg/lock: ready made machines.
  - pkg/session, pkg/adapters: persistence and the HTTP API.
*/
package switchyard
