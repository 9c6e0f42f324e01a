// Package event provides a small synchronous pub/sub bus for session
// lifecycle events. It satisfies the session package's EventPublisher
// interface, so hosts can observe session.created and session.closed without
// polling the manager.
package event

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Handler receives published events. Handlers run on the publisher's
// goroutine; panics are recovered and counted, not propagated.
type Handler func(eventType string, data map[string]any)

// Subscription identifies a registered handler for later removal.
type Subscription struct {
	id      uint64
	pattern string
}

// Stats reports bus activity counters.
type Stats struct {
	Published      uint64
	Delivered      uint64
	HandlerPanics  uint64
	ActiveHandlers int
}

type entry struct {
	id      uint64
	pattern string
	handler Handler
}

// Bus delivers events synchronously to matching subscribers.
type Bus struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for event types matching pattern. A pattern
// is either an exact event type ("session.closed"), a prefix wildcard
// ("session.*"), or "*" for everything.
func (b *Bus) Subscribe(pattern string, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := Subscription{id: b.nextID, pattern: pattern}
	b.entries = append(b.entries, entry{id: sub.id, pattern: pattern, handler: handler})
	return sub
}

// Unsubscribe removes a subscription. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.entries {
		if e.id == sub.id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to every matching subscriber, in subscription
// order, on the caller's goroutine.
func (b *Bus) Publish(eventType string, data map[string]any) {
	b.mu.RLock()
	matched := make([]Handler, 0, len(b.entries))
	for _, e := range b.entries {
		if matches(e.pattern, eventType) {
			matched = append(matched, e.handler)
		}
	}
	b.mu.RUnlock()

	b.published.Add(1)
	for _, h := range matched {
		b.dispatch(h, eventType, data)
	}
}

func (b *Bus) dispatch(h Handler, eventType string, data map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
		}
	}()
	h(eventType, data)
	b.delivered.Add(1)
}

// Stats returns current bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.entries)
	b.mu.RUnlock()

	return Stats{
		Published:      b.published.Load(),
		Delivered:      b.delivered.Load(),
		HandlerPanics:  b.panics.Load(),
		ActiveHandlers: active,
	}
}

// matches reports whether pattern covers eventType.
func matches(pattern, eventType string) bool {
	if pattern == "*" || pattern == eventType {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(eventType, prefix+".")
	}
	return false
}
