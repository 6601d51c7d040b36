package observer

import (
	"fmt"
	"io"

	"github.com/aretw0/switchyard/pkg/broker"
)

// DrivingAge is the age from which TrafficAdministration stops watching.
const DrivingAge = 17

// TrafficAdministration watches a person until they are old enough to drive, then
// unsubscribes itself from within the notification.
type TrafficAdministration struct {
	out    io.Writer
	handle broker.Handle
}

// WatchTraffic subscribes a TrafficAdministration to the person.
func WatchTraffic(p *Person, out io.Writer) *TrafficAdministration {
	ta := &TrafficAdministration{out: out}
	ta.handle = p.Subscribe(ta)
	return ta
}

// Handle implements broker.Subscriber.
func (ta *TrafficAdministration) Handle(e *FieldChanged) {
	if e.Field != "age" {
		return
	}
	if e.Source.Age() < DrivingAge {
		fmt.Fprintln(ta.out, "Whoa there, you're not old enough to drive!")
		return
	}
	fmt.Fprintln(ta.out, "Oh, ok, we no longer care!")
	e.Source.Unsubscribe(ta.handle)
}

// ConsoleObserver prints every change.
type ConsoleObserver struct {
	Out io.Writer
}

// Handle implements broker.Subscriber.
func (c ConsoleObserver) Handle(e *FieldChanged) {
	switch e.Field {
	case "age":
		fmt.Fprintf(c.Out, "Person's age has changed to %d.\n", e.Source.Age())
	case "can_vote":
		fmt.Fprintf(c.Out, "Person's can_vote has changed to %t.\n", e.Source.CanVote())
	}
}
