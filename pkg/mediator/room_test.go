package mediator_test

import (
	"testing"

	"github.com/aretw0/switchyard/pkg/mediator"
	"github.com/stretchr/testify/assert"
)

func TestRoom_SelfExclusion(t *testing.T) {
	room := mediator.NewRoom()
	p1 := room.Join("p1")
	p2 := room.Join("p2")

	assert.Equal(t, 0, p1.Value)
	assert.Equal(t, 0, p2.Value)

	p1.Say(2)
	assert.Equal(t, 0, p1.Value)
	assert.Equal(t, 2, p2.Value)

	p2.Say(4)
	assert.Equal(t, 4, p1.Value)
	assert.Equal(t, 2, p2.Value)
}

func TestRoom_Leave(t *testing.T) {
	room := mediator.NewRoom()
	p1 := room.Join("p1")
	p2 := room.Join("p2")
	p3 := room.Join("p3")

	p2.Leave()
	p2.Leave()
	assert.Equal(t, 2, room.Size())

	p1.Say(3)
	assert.Equal(t, 0, p2.Value)
	assert.Equal(t, 3, p3.Value)
}
