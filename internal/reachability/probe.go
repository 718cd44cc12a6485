package reachability

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

const (
	// DefaultProbeInterval is how often the probe target is dialed
	DefaultProbeInterval = 5 * time.Second
	// DefaultDialTimeout bounds a single probe
	DefaultDialTimeout = 2 * time.Second
)

// Dialer opens network connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ProbeMonitor derives reachability from periodically dialing a TCP target
type ProbeMonitor struct {
	target      string
	interval    time.Duration
	dialTimeout time.Duration
	dialer      Dialer
	clock       clock.WithTicker
	logger      *zap.SugaredLogger

	mu      sync.Mutex
	current Status
	subs    subscribers
}

// ProbeOption configures a ProbeMonitor
type ProbeOption func(*ProbeMonitor)

// WithInterval sets the probe interval
func WithInterval(d time.Duration) ProbeOption {
	return func(m *ProbeMonitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithDialTimeout sets the per-probe dial timeout
func WithDialTimeout(d time.Duration) ProbeOption {
	return func(m *ProbeMonitor) {
		if d > 0 {
			m.dialTimeout = d
		}
	}
}

// WithDialer replaces the dialer
func WithDialer(d Dialer) ProbeOption {
	return func(m *ProbeMonitor) {
		m.dialer = d
	}
}

// WithClock replaces the clock driving the probe ticker
func WithClock(c clock.WithTicker) ProbeOption {
	return func(m *ProbeMonitor) {
		m.clock = c
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.SugaredLogger) ProbeOption {
	return func(m *ProbeMonitor) {
		m.logger = logger
	}
}

// NewProbeMonitor creates a monitor probing target ("host:port"). The status is unsatisfied
// until the first probe completes.
func NewProbeMonitor(target string, opts ...ProbeOption) *ProbeMonitor {
	m := &ProbeMonitor{
		target:      target,
		interval:    DefaultProbeInterval,
		dialTimeout: DefaultDialTimeout,
		dialer:      &net.Dialer{},
		clock:       clock.RealClock{},
		logger:      zap.NewNop().Sugar(),
		current:     StatusUnsatisfied,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current implements Monitor
func (m *ProbeMonitor) Current() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe implements Monitor
func (m *ProbeMonitor) Subscribe() (<-chan Status, func()) {
	return m.subs.add()
}

// Probe dials the target once, records the result and returns it
func (m *ProbeMonitor) Probe(ctx context.Context) Status {
	dialCtx, cancel := context.WithTimeout(ctx, m.dialTimeout)
	defer cancel()

	status := StatusSatisfied
	conn, err := m.dialer.DialContext(dialCtx, "tcp", m.target)
	if err != nil {
		status = StatusUnsatisfied
	} else {
		_ = conn.Close()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if status != m.current {
		m.logger.Infow("Reachability changed",
			"target", m.target,
			"from", m.current,
			"to", status,
			"error", err)
		m.current = status
		m.subs.notify(status)
	}
	return status
}

// Run probes immediately and then on every interval until ctx is cancelled. Subscription
// channels are closed when Run returns.
func (m *ProbeMonitor) Run(ctx context.Context) {
	defer m.subs.closeAll()

	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	m.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			m.Probe(ctx)
		}
	}
}
