// Package phone provides telephone call state machines.
package phone

import (
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
)

const (
	OffHook    domain.StateID = "off_hook"
	Connecting domain.StateID = "connecting"
	Connected  domain.StateID = "connected"
	OnHold     domain.StateID = "on_hold"
	OnHook     domain.StateID = "on_hook"

	CallDialed     domain.Trigger = "call_dialed"
	HungUp         domain.Trigger = "hung_up"
	CallConnected  domain.Trigger = "call_connected"
	PlacedOnHold   domain.Trigger = "placed_on_hold"
	TakenOffHold   domain.Trigger = "taken_off_hold"
	LeftMessage    domain.Trigger = "left_message"
	StopUsingPhone domain.Trigger = "stop_using_phone"
)

// Labels maps states and triggers to the phrases shown to a caller.
var Labels = map[string]string{
	string(OffHook):        "off the hook",
	string(Connecting):     "connecting",
	string(Connected):      "connected",
	string(OnHold):         "on hold",
	string(OnHook):         "on the hook",
	string(CallDialed):     "call dialed",
	string(HungUp):         "hung up",
	string(CallConnected):  "call connected",
	string(PlacedOnHold):   "placed on hold",
	string(TakenOffHold):   "taken off hold",
	string(LeftMessage):    "left message",
	string(StopUsingPhone): "putting phone on hook",
}

// Label returns the human phrase for a state or trigger, or the identifier itself.
func Label[T ~string](id T) string {
	if l, ok := Labels[string(id)]; ok {
		return l
	}
	return string(id)
}

// Definition returns the full telephone machine. Putting the phone on the hook ends it.
func Definition() *fsm.Definition {
	return fsm.NewDefinition().
		Name("phone").
		State(OffHook,
			domain.Rule{Trigger: CallDialed, To: Connecting},
			domain.Rule{Trigger: StopUsingPhone, To: OnHook},
		).
		State(Connecting,
			domain.Rule{Trigger: HungUp, To: OffHook},
			domain.Rule{Trigger: CallConnected, To: Connected},
		).
		State(Connected,
			domain.Rule{Trigger: LeftMessage, To: OffHook},
			domain.Rule{Trigger: HungUp, To: OffHook},
			domain.Rule{Trigger: PlacedOnHold, To: OnHold},
		).
		State(OnHold,
			domain.Rule{Trigger: TakenOffHold, To: Connected},
			domain.Rule{Trigger: HungUp, To: OffHook},
		).
		Terminal(OnHook).
		Initial(OffHook)
}

// Simple returns the three-state call cycle idle -> connecting -> connected -> idle.
func Simple() *fsm.Definition {
	return fsm.NewDefinition().
		Name("call").
		Rule("idle", "dial", "connecting").
		Rule("connecting", "answer", "connected").
		Rule("connected", "hang_up", "idle").
		Initial("idle")
}
