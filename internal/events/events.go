// Package events broadcasts content notifications to in-process listeners.
package events

import (
	"sync"
	"time"
)

// Type identifies an event
type Type string

// SecondaryRefreshed is published after secondary content was reloaded from the server
const SecondaryRefreshed Type = "secondary_refreshed"

// Event is a broadcast notification
type Event struct {
	Type Type
	At   time.Time
	// ImageURLs lists the images referenced by the refreshed content
	ImageURLs []string
}

// Broadcaster delivers events to every subscriber. Publish never blocks; a subscriber whose
// buffer is full misses the event.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	closed bool
}

// NewBroadcaster creates a broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener with the given channel buffer. The returned function
// unsubscribes and closes the channel.
func (b *Broadcaster) Subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

// Publish sends ev to all subscribers and returns how many received it
func (b *Broadcaster) Publish(ev Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}

// Close closes every subscription; later subscriptions are closed immediately
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
