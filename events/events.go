// Package events is a small topic-based publish/subscribe bus. A bus is
// dependency-injected into the structures that announce on it; there is no
// package-level singleton. Delivery is synchronous in subscription order.
// Like the rest of the engine, a bus is confined to a single goroutine;
// handlers must not subscribe or unsubscribe while a publish is in flight.
package events

// Handler consumes one published payload.
type Handler[T any] func(T)

type subscription[T any] struct {
	id int
	fn Handler[T]
}

// Bus fans payloads out to the handlers subscribed to a topic.
type Bus[T any] struct {
	subs   map[string][]subscription[T]
	nextID int
}

func NewBus[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[string][]subscription[T])}
}

// Subscribe registers fn for topic and returns a token for Unsubscribe.
func (b *Bus[T]) Subscribe(topic string, fn Handler[T]) int {
	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscription[T]{id: b.nextID, fn: fn})
	return b.nextID
}

// Unsubscribe removes the handler registered under token for topic and
// reports whether anything was removed.
func (b *Bus[T]) Unsubscribe(topic string, token int) bool {
	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == token {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers ev to every handler of topic, in subscription order, and
// returns the number of handlers reached.
func (b *Bus[T]) Publish(topic string, ev T) int {
	subs := b.subs[topic]
	for _, s := range subs {
		s.fn(ev)
	}
	return len(subs)
}
