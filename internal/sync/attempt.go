package sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/otel"
	"github.com/hopebridge/contentsync/internal/remote"
)

// RetryConnection runs a user initiated attempt. It is a no-op while another attempt is in
// flight. The grace timer is cancelled and the state moves to Retrying; a failed or
// fallback-only result moves it to Offline immediately.
func (c *Controller) RetryConnection(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.inFlight {
		c.mu.Unlock()
		return
	}
	c.stopGraceLocked()
	c.setStateLocked(StateRetrying)
	id, ok := c.beginAttemptLocked(TriggerRetry)
	c.mu.Unlock()

	if !ok {
		c.persistStatus(ctx)
		return
	}
	c.runAttempt(ctx, id, TriggerRetry)
}

// beginAttemptLocked starts an attempt unless one is in flight. Without a network path the
// state becomes Offline and no attempt is started. A started attempt holds a wait group slot
// until releaseAttempt.
func (c *Controller) beginAttemptLocked(trigger Trigger) (AttemptID, bool) {
	if c.closed || c.inFlight {
		return "", false
	}
	if !c.reachable {
		c.logger.Infow("Skipping network attempt, no network path", "trigger", trigger)
		c.setStateLocked(StateOffline)
		return "", false
	}

	id := AttemptID(uuid.NewString())
	c.currentAttempt = id
	c.inFlight = true
	c.lastAttempt = c.clock.Now()
	c.wg.Add(1)

	c.logger.Debugw("Starting network attempt", "trigger", trigger, "attempt_id", id)
	return id, true
}

// releaseAttempt clears the in-flight flag if id is still the current attempt
func (c *Controller) releaseAttempt(id AttemptID) {
	c.mu.Lock()
	if c.currentAttempt == id {
		c.inFlight = false
	}
	c.mu.Unlock()
	c.wg.Done()
}

func (c *Controller) runAttempt(ctx context.Context, id AttemptID, trigger Trigger) {
	defer c.releaseAttempt(id)

	ctx, span := otel.StartSpan(ctx, c.tracer, "sync.attempt",
		trace.WithAttributes(
			otel.AttrTrigger.String(string(trigger)),
			otel.AttrAttemptID.String(string(id)),
		),
	)
	defer span.End()

	start := c.clock.Now()
	fetch, err := c.fetchPrimary(ctx)
	otel.RecordError(span, err)

	outcome := c.applyAttempt(id, trigger, fetch, err)
	span.SetAttributes(otel.AttrHitServer.Bool(outcome == outcomeConnected))
	c.metrics.RecordAttempt(ctx, string(trigger), outcome, c.clock.Since(start))

	if outcome != outcomeStale {
		c.persistStatus(ctx)
	}
}

// applyAttempt evaluates a completed attempt and returns its outcome
func (c *Controller) applyAttempt(id AttemptID, trigger Trigger, fetch *content.PrimaryFetch, err error) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAttempt != id {
		c.logger.Debugw("Discarding result of superseded attempt", "trigger", trigger, "attempt_id", id)
		return outcomeStale
	}

	if err != nil {
		c.lastErr = err
		c.attemptCount++
		c.logger.Warnw("Network attempt failed",
			"trigger", trigger,
			"attempt_id", id,
			"error", err)
		if trigger == TriggerRetry {
			c.setStateLocked(StateOffline)
		}
		return outcomeFailed
	}

	if !fetch.HitServer() {
		c.attemptCount++
		c.logger.Infow("Network attempt returned only locally cached content",
			"trigger", trigger,
			"attempt_id", id)
		if trigger == TriggerRetry {
			c.setStateLocked(StateOffline)
		}
		return outcomeFallback
	}

	c.primary = fetch.Dataset()
	c.lastLoad = c.clock.Now()
	c.lastErr = nil
	c.attemptCount = 0
	c.setStateLocked(StateConnected)
	c.stopGraceLocked()

	// secondary content never gates the transition
	if !c.closed {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.loadSecondary(c.ctx)
		}()
	}
	return outcomeConnected
}

type fetchResult struct {
	fetch *content.PrimaryFetch
	err   error
}

// fetchPrimary races a live primary fetch against the fetch timeout. The losing fetch is
// cancelled. Must be called while the attempt holds a wait group slot.
func (c *Controller) fetchPrimary(ctx context.Context) (*content.PrimaryFetch, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	timer := c.clock.NewTimer(c.fetchTimeout)
	defer timer.Stop()

	results := make(chan fetchResult, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fetch, err := c.remote.FetchPrimary(fetchCtx, true)
		results <- fetchResult{fetch: fetch, err: err}
	}()

	select {
	case r := <-results:
		return r.fetch, r.err
	case <-timer.C():
		return nil, &remote.FetchError{
			Kind: remote.KindTimeout,
			Err:  fmt.Errorf("no response within %s", c.fetchTimeout),
		}
	case <-fetchCtx.Done():
		return nil, remote.NewFetchError("", fetchCtx.Err())
	}
}
