// Package mediator lets participants broadcast values to everyone else in a room.
package mediator

import "github.com/aretw0/switchyard/pkg/broker"

// Message is what a participant says to the room.
type Message struct {
	From  *Participant
	Value int
}

// Room routes messages between participants.
type Room struct {
	messages *broker.Registry[Message]
}

// NewRoom creates an empty room.
func NewRoom() *Room {
	return &Room{messages: broker.NewRegistry[Message]()}
}

// Size returns the number of participants in the room.
func (r *Room) Size() int {
	return r.messages.Len()
}

// Participant accumulates every value said by the others.
type Participant struct {
	Name   string
	Value  int
	room   *Room
	handle broker.Handle
}

// Join adds a participant to the room.
func (r *Room) Join(name string) *Participant {
	p := &Participant{Name: name, room: r}
	p.handle = r.messages.Subscribe(p)
	return p
}

// Handle implements broker.Subscriber. A participant ignores its own messages.
func (p *Participant) Handle(m *Message) {
	if m.From == p {
		return
	}
	p.Value += m.Value
}

// Say broadcasts a value to every other participant.
func (p *Participant) Say(value int) {
	p.room.messages.Broadcast(&Message{From: p, Value: value})
}

// Leave removes the participant from the room. It is idempotent.
func (p *Participant) Leave() {
	p.room.messages.Unsubscribe(p.handle)
}
