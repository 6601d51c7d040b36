// Package game models creatures whose statistics are resolved through a broadcast
// query: every modifier in play gets a chance to adjust the value.
package game

import (
	"fmt"

	"github.com/aretw0/switchyard/pkg/broker"
)

// Game is the mediator every creature and modifier talks through.
type Game struct {
	Queries *broker.Registry[broker.Query]
}

// New creates a game with an empty query broker.
func New(opts ...broker.Option) *Game {
	return &Game{Queries: broker.NewRegistry[broker.Query](opts...)}
}

// Creature resolves its attack and defense by querying the game.
type Creature struct {
	game    *Game
	Name    string
	attack  int
	defense int
}

// NewCreature creates a creature with base statistics.
func NewCreature(g *Game, name string, attack, defense int) *Creature {
	return &Creature{game: g, Name: name, attack: attack, defense: defense}
}

// Attack returns the base attack as adjusted by every modifier in play.
func (c *Creature) Attack() int {
	q := broker.NewQuery(c.Name, broker.Attack, c.attack)
	c.game.Queries.Broadcast(q)
	return q.Result
}

// Defense returns the base defense as adjusted by every modifier in play.
func (c *Creature) Defense() int {
	q := broker.NewQuery(c.Name, broker.Defense, c.defense)
	c.game.Queries.Broadcast(q)
	return q.Result
}

func (c *Creature) String() string {
	return fmt.Sprintf("name: %s attack: %d defense: %d", c.Name, c.Attack(), c.Defense())
}
