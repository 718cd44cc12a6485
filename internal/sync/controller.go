package sync

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/hopebridge/contentsync/internal/cache"
	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/events"
	"github.com/hopebridge/contentsync/internal/reachability"
	"github.com/hopebridge/contentsync/internal/remote"
	"github.com/hopebridge/contentsync/internal/status"
	"github.com/hopebridge/contentsync/internal/telemetry"
)

const (
	// DefaultGracePeriod is how long an initial attempt may take before the UI is told it is offline
	DefaultGracePeriod = 5 * time.Second

	// DefaultFetchTimeout bounds a primary fetch
	DefaultFetchTimeout = 10 * time.Second

	// TracerName is the name of the controller's tracer
	TracerName = "github.com/hopebridge/contentsync/sync"
)

// Controller is the cache-first data synchronization controller. It owns the connection
// state, the published datasets, the in-flight attempt bookkeeping and the grace timer.
// All state is guarded by a single mutex; network calls never run while it is held.
type Controller struct {
	cache   cache.Store
	remote  remote.Source
	monitor reachability.Monitor

	logger       *zap.SugaredLogger
	clock        clock.WithDelayedExecution
	gracePeriod  time.Duration
	fetchTimeout time.Duration
	metrics      *telemetry.SyncMetrics
	tracer       trace.Tracer
	persistence  status.StatusPersistence
	broadcaster  *events.Broadcaster
	onTransition func(from, to ConnectionState)

	mu             sync.Mutex
	state          ConnectionState
	reachable      bool
	initialized    bool
	closed         bool
	inFlight       bool
	currentAttempt AttemptID
	graceTimer     clock.Timer
	graceGen       uint64
	primary        content.PrimaryDataset
	secondary      content.SecondaryDataset
	lastLoad       time.Time
	lastAttempt    time.Time
	attemptCount   int
	lastErr        error

	// graceFired carries the generation of an expired grace timer to the run loop. Timer
	// callbacks only send here so they never contend for mu.
	graceFired  chan uint64
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithClock replaces the clock driving the grace and timeout timers
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

// WithGracePeriod overrides DefaultGracePeriod
func WithGracePeriod(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.gracePeriod = d
		}
	}
}

// WithFetchTimeout overrides DefaultFetchTimeout
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// WithSyncMetrics sets the metrics recorder
func WithSyncMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(c *Controller) {
		c.metrics = metrics
	}
}

// WithTracer sets the tracer used for attempt spans
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Controller) {
		c.tracer = tracer
	}
}

// WithStatusPersistence stores the connection status after every attempt
func WithStatusPersistence(p status.StatusPersistence) Option {
	return func(c *Controller) {
		c.persistence = p
	}
}

// WithBroadcaster sets where secondary refresh notifications are published
func WithBroadcaster(b *events.Broadcaster) Option {
	return func(c *Controller) {
		c.broadcaster = b
	}
}

// WithTransitionHook registers fn to be called on every state change. fn runs while the
// controller lock is held and must not call back into the controller.
func WithTransitionHook(fn func(from, to ConnectionState)) Option {
	return func(c *Controller) {
		c.onTransition = fn
	}
}

// New creates a controller, reads the monitor's current status and subscribes to its changes.
// Close releases the subscription.
func New(store cache.Store, source remote.Source, monitor reachability.Monitor, opts ...Option) *Controller {
	c := &Controller{
		cache:        store,
		remote:       source,
		monitor:      monitor,
		logger:       zap.NewNop().Sugar(),
		clock:        clock.RealClock{},
		gracePeriod:  DefaultGracePeriod,
		fetchTimeout: DefaultFetchTimeout,
		state:        StateInitial,
		graceFired:   make(chan uint64, 8),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.reachable = monitor.Current().Satisfied()

	updates, unsubscribe := monitor.Subscribe()
	c.unsubscribe = unsubscribe

	c.wg.Add(1)
	go c.run(updates)

	return c
}

// run serializes reachability changes and grace expiries into the controller
func (c *Controller) run(updates <-chan reachability.Status) {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		case s, ok := <-updates:
			if !ok {
				c.logger.Warn("Reachability monitor stopped publishing")
				updates = nil
				continue
			}
			c.handleReachability(s)
		case gen := <-c.graceFired:
			c.onGraceExpired(gen)
		}
	}
}

// Close unsubscribes from the monitor, stops the grace timer, cancels background work and
// waits for it to finish. Operations called after Close are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopGraceLocked()
	c.mu.Unlock()

	c.unsubscribe()
	c.cancel()
	c.wg.Wait()
}

// State returns the current connection state
func (c *Controller) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HasData reports whether the published primary dataset can be rendered
func (c *Controller) HasData() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary.HasData()
}

// IsReachable reports the last reachability status received from the monitor
func (c *Controller) IsReachable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reachable
}

// Primary returns the published primary dataset. The result must be treated as read-only.
func (c *Controller) Primary() content.PrimaryDataset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary
}

// Secondary returns the published secondary dataset. The result must be treated as read-only.
func (c *Controller) Secondary() content.SecondaryDataset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.secondary
}

// LastError returns the error of the last failed attempt, nil after a successful connection
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) setStateLocked(to ConnectionState) {
	from := c.state
	if from == to {
		return
	}
	c.state = to

	c.logger.Infow("Connection state changed",
		"from", from,
		"to", to,
		"reachable", c.reachable)
	c.metrics.RecordTransition(c.ctx, string(from), string(to))
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}

func (c *Controller) armGraceLocked() {
	c.stopGraceLocked()
	gen := c.graceGen
	c.graceTimer = c.clock.AfterFunc(c.gracePeriod, func() {
		select {
		case c.graceFired <- gen:
		default:
		}
	})
}

// stopGraceLocked cancels the grace timer. Bumping the generation also invalidates an expiry
// that already fired but was not yet handled.
func (c *Controller) stopGraceLocked() {
	c.graceGen++
	if c.graceTimer != nil {
		c.graceTimer.Stop()
		c.graceTimer = nil
	}
}

func (c *Controller) onGraceExpired(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.graceGen {
		c.mu.Unlock()
		return
	}
	c.graceTimer = nil

	expired := c.state != StateConnected && c.state != StateRetrying
	if expired {
		c.logger.Infow("Grace period expired without a server connection",
			"grace_period", c.gracePeriod,
			"state", c.state)
		c.setStateLocked(StateOffline)
	}
	c.mu.Unlock()

	if expired {
		c.persistStatus(c.ctx)
	}
}
