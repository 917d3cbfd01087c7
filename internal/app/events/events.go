// Package events provides the in-process event bus that decouples the client
// stores from each other. Cross-store effects (claim -> point credit) ride on
// these events instead of direct calls between stores.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type classifies a dashboard event.
type Type string

const (
	TypeBenefitClaimed Type = "benefit.claimed"
	TypePointsCredited Type = "points.credited"
	TypePointsRedeemed Type = "points.redeemed"
	TypeProfileUpdated Type = "profile.updated"
	TypeThemeChanged   Type = "theme.changed"
)

// Event is a structured record of a state change.
type Event struct {
	ID        string            `json:"id"`
	Type      Type              `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Handler processes events as they are published.
type Handler func(Event)

// Filter decides whether an event reaches a handler.
type Filter func(Event) bool

type handlerEntry struct {
	id      int64
	filter  Filter
	handler Handler
}

// Bus is a thread-safe ring buffer of events with subscriptions. Handlers run
// outside the lock, on the publisher's goroutine.
type Bus struct {
	mu       sync.RWMutex
	events   []Event
	size     int
	head     int
	count    int
	handlers []handlerEntry
	nextID   int64
}

// NewBus creates a bus retaining up to size events.
func NewBus(size int) *Bus {
	if size <= 0 {
		size = 256
	}
	return &Bus{
		events: make([]Event, size),
		size:   size,
	}
}

// Publish records the event and notifies subscribers.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	b.events[b.head] = event
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}

	handlers := make([]handlerEntry, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, h := range handlers {
		if h.filter == nil || h.filter(event) {
			h.handler(event)
		}
	}
}

// Subscribe registers a handler for every event and returns an unsubscribe
// function.
func (b *Bus) Subscribe(handler Handler) func() {
	return b.SubscribeFiltered(nil, handler)
}

// SubscribeType registers a handler for a single event type.
func (b *Bus) SubscribeType(t Type, handler Handler) func() {
	return b.SubscribeFiltered(func(e Event) bool { return e.Type == t }, handler)
}

// SubscribeFiltered registers a handler behind a filter.
func (b *Bus) SubscribeFiltered(filter Filter, handler Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, handlerEntry{id: id, filter: filter, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, h := range b.handlers {
			if h.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Recent returns up to n events, most recent first.
func (b *Bus) Recent(n int) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n <= 0 || b.count == 0 {
		return nil
	}
	if n > b.count {
		n = b.count
	}

	out := make([]Event, n)
	for i := 0; i < n; i++ {
		idx := (b.head - 1 - i + b.size) % b.size
		out[i] = b.events[idx]
	}
	return out
}

// RecentByType returns up to n events of the given type, most recent first.
func (b *Bus) RecentByType(t Type, n int) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n <= 0 || b.count == 0 {
		return nil
	}

	var out []Event
	for i := 0; i < b.count && len(out) < n; i++ {
		idx := (b.head - 1 - i + b.size) % b.size
		if b.events[idx].Type == t {
			out = append(out, b.events[idx])
		}
	}
	return out
}

// Count returns the number of retained events.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}
