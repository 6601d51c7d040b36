package broker_test

import (
	"testing"

	"github.com/aretw0/switchyard/pkg/broker"
	"github.com/stretchr/testify/assert"
)

type counter struct{ result int }

func TestRegistry_FoldInSubscriptionOrder(t *testing.T) {
	r := broker.NewRegistry[counter]()
	r.SubscribeFunc(func(q *counter) { q.result *= 2 })
	r.SubscribeFunc(func(q *counter) { q.result++ })

	q := &counter{result: 1}
	r.Broadcast(q)
	assert.Equal(t, 3, q.result)
}

func TestRegistry_LaterSubscribersSeeEarlierEffects(t *testing.T) {
	r := broker.NewRegistry[counter]()
	var seen []int
	for _, delta := range []int{10, 20, 30} {
		r.SubscribeFunc(func(q *counter) {
			seen = append(seen, q.result)
			q.result += delta
		})
	}

	q := &counter{}
	r.Broadcast(q)

	assert.Equal(t, []int{0, 10, 30}, seen)
	assert.Equal(t, 60, q.result)
}

func TestRegistry_NoDeduplication(t *testing.T) {
	r := broker.NewRegistry[counter]()
	inc := broker.SubscriberFunc[counter](func(q *counter) { q.result++ })
	h1 := r.Subscribe(inc)
	h2 := r.Subscribe(inc)

	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len())

	q := &counter{}
	r.Broadcast(q)
	assert.Equal(t, 2, q.result)
}

func TestRegistry_ReentrantUnsubscribe(t *testing.T) {
	r := broker.NewRegistry[counter]()
	var calls []string

	r.SubscribeFunc(func(q *counter) { calls = append(calls, "A"); q.result++ })
	var hB broker.Handle
	hB = r.SubscribeFunc(func(q *counter) {
		calls = append(calls, "B")
		if q.result >= 1 {
			r.Unsubscribe(hB)
			r.Unsubscribe(hB)
		}
	})
	r.SubscribeFunc(func(q *counter) { calls = append(calls, "C"); q.result += 10 })

	first := &counter{}
	r.Broadcast(first)
	assert.Equal(t, []string{"A", "B", "C"}, calls)
	assert.Equal(t, 11, first.result)
	assert.Equal(t, 2, r.Len())

	calls = nil
	second := &counter{}
	r.Broadcast(second)
	assert.Equal(t, []string{"A", "C"}, calls)
	assert.Equal(t, 11, second.result)
}

func TestRegistry_UnsubscribeLaterSubscriberMidBroadcast(t *testing.T) {
	r := broker.NewRegistry[counter]()
	var hC broker.Handle
	var calls []string

	r.SubscribeFunc(func(q *counter) {
		calls = append(calls, "A")
		r.Unsubscribe(hC)
	})
	r.SubscribeFunc(func(q *counter) { calls = append(calls, "B") })
	hC = r.SubscribeFunc(func(q *counter) { calls = append(calls, "C") })

	r.Broadcast(&counter{})
	assert.Equal(t, []string{"A", "B"}, calls, "a subscriber removed before its visit is skipped")
}

func TestRegistry_SubscribeDuringBroadcast(t *testing.T) {
	r := broker.NewRegistry[counter]()
	added := false
	r.SubscribeFunc(func(q *counter) {
		q.result++
		if !added {
			added = true
			r.SubscribeFunc(func(q *counter) { q.result += 100 })
		}
	})

	q := &counter{}
	r.Broadcast(q)
	assert.Equal(t, 1, q.result, "new subscriber waits for the next broadcast")

	q = &counter{}
	r.Broadcast(q)
	assert.Equal(t, 101, q.result)
}

func TestRegistry_NestedBroadcast(t *testing.T) {
	r := broker.NewRegistry[counter]()
	var inner broker.Handle
	nested := false
	r.SubscribeFunc(func(q *counter) {
		q.result++
		if !nested {
			nested = true
			r.Broadcast(&counter{})
			r.Unsubscribe(inner)
			assert.True(t, r.Broadcasting())
		}
	})
	inner = r.SubscribeFunc(func(q *counter) { q.result += 5 })

	q := &counter{}
	r.Broadcast(q)
	assert.Equal(t, 1, q.result)
	assert.False(t, r.Broadcasting())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_UnsubscribeIdempotent(t *testing.T) {
	r := broker.NewRegistry[counter]()
	h := r.SubscribeFunc(func(q *counter) { q.result++ })
	r.SubscribeFunc(func(q *counter) { q.result++ })

	r.Unsubscribe(h)
	r.Unsubscribe(h)
	r.Unsubscribe(broker.Handle(0))
	r.Unsubscribe(broker.Handle(999))
	assert.Equal(t, 1, r.Len())

	q := &counter{}
	r.Broadcast(q)
	assert.Equal(t, 1, q.result)
}

func TestRegistry_HandlesSurviveCompaction(t *testing.T) {
	r := broker.NewRegistry[counter]()
	h1 := r.SubscribeFunc(func(q *counter) { q.result += 1 })
	h2 := r.SubscribeFunc(func(q *counter) { q.result += 2 })
	h3 := r.SubscribeFunc(func(q *counter) { q.result += 4 })

	r.Unsubscribe(h1)
	r.Unsubscribe(h3)

	q := &counter{}
	r.Broadcast(q)
	assert.Equal(t, 2, q.result)

	r.Unsubscribe(h2)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_BroadcastObserver(t *testing.T) {
	var visits []int
	r := broker.NewRegistry[counter](broker.WithBroadcastObserver(func(n int) { visits = append(visits, n) }))
	r.SubscribeFunc(func(*counter) {})
	r.SubscribeFunc(func(*counter) {})

	r.Broadcast(&counter{})
	assert.Equal(t, []int{2}, visits)
}
