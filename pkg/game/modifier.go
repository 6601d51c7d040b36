package game

import "github.com/aretw0/switchyard/pkg/broker"

// Modifier is an active subscription that can be removed from play.
type Modifier struct {
	game   *Game
	handle broker.Handle
}

// Detach removes the modifier from play. Calling it again has no effect.
func (m *Modifier) Detach() {
	m.game.Queries.Unsubscribe(m.handle)
}

// NewDoubleAttackModifier doubles the attack of the creature while in play.
func NewDoubleAttackModifier(g *Game, c *Creature) *Modifier {
	h := g.Queries.SubscribeFunc(func(q *broker.Query) {
		if q.Concerns(c.Name, broker.Attack) {
			q.Result *= 2
		}
	})
	return &Modifier{game: g, handle: h}
}

// NewIncreaseDefenseModifier adds one defense to the creature while its attack is at most 2.
// The attack check issues a nested query.
func NewIncreaseDefenseModifier(g *Game, c *Creature) *Modifier {
	h := g.Queries.SubscribeFunc(func(q *broker.Query) {
		if q.Concerns(c.Name, broker.Defense) && c.Attack() <= 2 {
			q.Result++
		}
	})
	return &Modifier{game: g, handle: h}
}
