// Package reachability reports whether the device has a usable network path.
package reachability

import (
	"sync"
)

// Status is the reachability status of the network path
type Status string

const (
	// StatusSatisfied means a network path is available
	StatusSatisfied Status = "satisfied"
	// StatusUnsatisfied means no network path is available
	StatusUnsatisfied Status = "unsatisfied"
)

// Satisfied reports whether the status is StatusSatisfied
func (s Status) Satisfied() bool {
	return s == StatusSatisfied
}

// Monitor publishes reachability changes
type Monitor interface {
	// Current returns the latest known status
	Current() Status

	// Subscribe returns a channel receiving status changes and a function that cancels the
	// subscription. The channel is closed after cancellation.
	Subscribe() (<-chan Status, func())
}

// subscribers fans status changes out to subscription channels. Slow subscribers only ever
// see the latest status.
type subscribers struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Status
}

func (s *subscribers) add() (<-chan Status, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan Status)
	}
	id := s.nextID
	s.nextID++
	ch := make(chan Status, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

func (s *subscribers) notify(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		// drop a stale undelivered status so the newest one always fits
		select {
		case <-ch:
		default:
		}
		ch <- status
	}
}

func (s *subscribers) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
