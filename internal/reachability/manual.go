package reachability

import "sync"

// ManualMonitor is a Monitor whose status is set programmatically
type ManualMonitor struct {
	mu      sync.Mutex
	current Status
	subs    subscribers
}

// NewManualMonitor creates a monitor starting at initial
func NewManualMonitor(initial Status) *ManualMonitor {
	return &ManualMonitor{current: initial}
}

// Current implements Monitor
func (m *ManualMonitor) Current() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe implements Monitor
func (m *ManualMonitor) Subscribe() (<-chan Status, func()) {
	return m.subs.add()
}

// Set updates the status and notifies subscribers when it changed
func (m *ManualMonitor) Set(status Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == status {
		return
	}
	m.current = status
	m.subs.notify(status)
}
