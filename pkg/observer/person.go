// Package observer notifies subscribers about property changes of a Person.
package observer

import "github.com/aretw0/switchyard/pkg/broker"

// VotingAge is the age from which a person can vote.
const VotingAge = 16

// FieldChanged is emitted after a property changed.
type FieldChanged struct {
	Source *Person
	Field  string
}

// Person is an observable with an age.
type Person struct {
	age     int
	changes *broker.Registry[FieldChanged]
}

// NewPerson creates a person of the given age.
func NewPerson(age int) *Person {
	return &Person{age: age, changes: broker.NewRegistry[FieldChanged]()}
}

// Subscribe registers an observer.
func (p *Person) Subscribe(s broker.Subscriber[FieldChanged]) broker.Handle {
	return p.changes.Subscribe(s)
}

// Unsubscribe removes an observer. Safe from inside a notification.
func (p *Person) Unsubscribe(h broker.Handle) {
	p.changes.Unsubscribe(h)
}

// Observers returns the number of active observers.
func (p *Person) Observers() int {
	return p.changes.Len()
}

// Age returns the current age.
func (p *Person) Age() int {
	return p.age
}

// CanVote reports whether the person reached VotingAge.
func (p *Person) CanVote() bool {
	return p.age >= VotingAge
}

// SetAge updates the age, notifying "age" and, when eligibility flips, "can_vote".
func (p *Person) SetAge(age int) {
	if p.age == age {
		return
	}
	couldVote := p.CanVote()
	p.age = age
	p.changes.Broadcast(&FieldChanged{Source: p, Field: "age"})

	if couldVote != p.CanVote() {
		p.changes.Broadcast(&FieldChanged{Source: p, Field: "can_vote"})
	}
}
