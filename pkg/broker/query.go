package broker

import "fmt"

// Argument is the statistic a Query asks for.
type Argument int

const (
	Attack Argument = iota
	Defense
)

func (a Argument) String() string {
	switch a {
	case Attack:
		return "attack"
	case Defense:
		return "defense"
	}
	return fmt.Sprintf("Argument(%d)", int(a))
}

// Query is a mutable request for a value. Subscribers adjust Result in place.
type Query struct {
	Subject  string
	Argument Argument
	Result   int
}

// NewQuery creates a query seeded with a base value.
func NewQuery(subject string, arg Argument, base int) *Query {
	return &Query{Subject: subject, Argument: arg, Result: base}
}

// Concerns reports whether the query is about the given subject and statistic.
func (q *Query) Concerns(subject string, arg Argument) bool {
	return q.Subject == subject && q.Argument == arg
}
