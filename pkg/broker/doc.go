/*
Package broker implements a broadcast query/modifier engine.

A Registry holds subscribers in subscription order. Broadcast passes one mutable query
through every live subscriber, so later subscribers observe the effects of earlier ones.
There is no short-circuit: every subscriber is consulted exactly once.

Unsubscribe may be called from inside a subscriber while a broadcast is in flight.
Removal tombstones the slot instead of shrinking the backing slice; tombstones are
compacted once no broadcast is running. The Registry is meant for single-goroutine use.
*/
package broker
