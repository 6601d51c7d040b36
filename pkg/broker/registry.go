package broker

// Subscriber observes and may adjust a query when it is broadcast.
type Subscriber[Q any] interface {
	Handle(q *Q)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc[Q any] func(q *Q)

// Handle calls f(q).
func (f SubscriberFunc[Q]) Handle(q *Q) {
	f(q)
}

// Handle identifies a subscription. The zero value never matches a subscription.
type Handle uint64

type slot[Q any] struct {
	handle Handle
	sub    Subscriber[Q] // nil once unsubscribed
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	onBroadcast func(visited int)
}

// WithBroadcastObserver is called after each outermost broadcast with the number of
// subscribers that were visited.
func WithBroadcastObserver(fn func(visited int)) Option {
	return func(o *options) {
		o.onBroadcast = fn
	}
}

// Registry is an ordered collection of subscribers.
type Registry[Q any] struct {
	slots []slot[Q]
	index map[Handle]int
	next  Handle
	depth int // nested broadcasts in flight
	dirty bool
	opts  options
}

// NewRegistry creates an empty registry.
func NewRegistry[Q any](opts ...Option) *Registry[Q] {
	r := &Registry[Q]{
		index: make(map[Handle]int),
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Subscribe appends a subscriber. Subscribing the same value twice yields two
// independent subscriptions.
func (r *Registry[Q]) Subscribe(sub Subscriber[Q]) Handle {
	r.compact()
	r.next++
	r.slots = append(r.slots, slot[Q]{handle: r.next, sub: sub})
	r.index[r.next] = len(r.slots) - 1
	return r.next
}

// SubscribeFunc subscribes a plain function.
func (r *Registry[Q]) SubscribeFunc(fn func(q *Q)) Handle {
	return r.Subscribe(SubscriberFunc[Q](fn))
}

// Unsubscribe removes a subscription. Unknown or already removed handles are ignored.
// It is safe to call from inside a subscriber during Broadcast; the removal applies to
// the rest of the current broadcast and to every later one.
func (r *Registry[Q]) Unsubscribe(h Handle) {
	i, ok := r.index[h]
	if !ok {
		return
	}
	delete(r.index, h)
	r.slots[i].sub = nil
	r.dirty = true
	r.compact()
}

// Broadcast passes q through every live subscriber in subscription order.
// Subscribers added during the broadcast are not visited by it.
func (r *Registry[Q]) Broadcast(q *Q) {
	r.depth++
	visited := 0
	defer func() {
		r.depth--
		if r.depth == 0 {
			r.compact()
			if r.opts.onBroadcast != nil {
				r.opts.onBroadcast(visited)
			}
		}
	}()

	n := len(r.slots)
	for i := 0; i < n; i++ {
		// Re-read the slice each step: a callback may have appended and reallocated it.
		sub := r.slots[i].sub
		if sub == nil {
			continue
		}
		visited++
		sub.Handle(q)
	}
}

// Len returns the number of live subscriptions.
func (r *Registry[Q]) Len() int {
	return len(r.index)
}

// Broadcasting reports whether a broadcast is in flight.
func (r *Registry[Q]) Broadcasting() bool {
	return r.depth > 0
}

// compact drops tombstones. It is a no-op while a broadcast is in flight so slot
// indices stay stable for the iterating loop.
func (r *Registry[Q]) compact() {
	if !r.dirty || r.depth > 0 {
		return
	}
	live := r.slots[:0]
	for _, s := range r.slots {
		if s.sub == nil {
			continue
		}
		r.index[s.handle] = len(live)
		live = append(live, s)
	}
	clear(r.slots[len(live):])
	r.slots = live
	r.dirty = false
}
