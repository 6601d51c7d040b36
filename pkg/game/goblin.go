package game

import "github.com/aretw0/switchyard/pkg/broker"

// Goblin is a creature that strengthens every other goblin in play.
//
// A goblin is 1/1 and grants +1 defense to every other goblin. A goblin king is 3/3
// and also grants +1 attack to every other goblin.
type Goblin struct {
	*Creature
	king     bool
	modifier *Modifier
}

// NewGoblin brings an ordinary goblin into play.
func NewGoblin(g *Game, name string) *Goblin {
	return newGoblin(g, name, 1, 1, false)
}

// NewGoblinKing brings a goblin king into play.
func NewGoblinKing(g *Game, name string) *Goblin {
	return newGoblin(g, name, 3, 3, true)
}

func newGoblin(g *Game, name string, attack, defense int, king bool) *Goblin {
	gob := &Goblin{Creature: NewCreature(g, name, attack, defense), king: king}
	h := g.Queries.SubscribeFunc(gob.modify)
	gob.modifier = &Modifier{game: g, handle: h}
	return gob
}

func (gob *Goblin) modify(q *broker.Query) {
	if q.Subject == gob.Name {
		return
	}
	switch q.Argument {
	case broker.Defense:
		q.Result++
	case broker.Attack:
		if gob.king {
			q.Result++
		}
	}
}

// Leave takes the goblin out of play.
func (gob *Goblin) Leave() {
	gob.modifier.Detach()
}
