package sync

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/otel"
)

// ForceRefreshAllData refetches the primary content and reloads the secondary content before
// returning. It is a no-op while an attempt is in flight and moves to Offline without a
// network path. The fetched primary content is published even when none of it came from the
// live server; only a server hit moves the state to Connected.
func (c *Controller) ForceRefreshAllData(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.inFlight {
		c.mu.Unlock()
		return
	}
	if !c.reachable {
		c.logger.Info("Refresh requested without a network path")
		c.setStateLocked(StateOffline)
		c.mu.Unlock()
		c.persistStatus(ctx)
		return
	}
	id, ok := c.beginAttemptLocked(TriggerRefresh)
	c.mu.Unlock()
	if !ok {
		return
	}
	defer c.releaseAttempt(id)

	ctx, span := otel.StartSpan(ctx, c.tracer, "sync.refresh",
		trace.WithAttributes(otel.AttrAttemptID.String(string(id))),
	)
	defer span.End()

	start := c.clock.Now()
	fetch, err := c.fetchPrimary(ctx)
	otel.RecordError(span, err)

	outcome := c.applyRefresh(id, fetch, err)
	span.SetAttributes(otel.AttrHitServer.Bool(outcome == outcomeConnected))
	c.metrics.RecordAttempt(ctx, string(TriggerRefresh), outcome, c.clock.Since(start))
	if outcome == outcomeStale {
		return
	}

	if err == nil {
		c.loadSecondary(ctx)
	}
	c.persistStatus(ctx)
}

func (c *Controller) applyRefresh(id AttemptID, fetch *content.PrimaryFetch, err error) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAttempt != id {
		c.logger.Debugw("Discarding result of superseded refresh", "attempt_id", id)
		return outcomeStale
	}

	if err != nil {
		c.lastErr = err
		c.attemptCount++
		c.logger.Warnw("Refresh failed", "attempt_id", id, "error", err)
		c.setStateLocked(StateOffline)
		return outcomeFailed
	}

	c.primary = fetch.Dataset()
	c.lastLoad = c.clock.Now()

	if !fetch.HitServer() {
		c.attemptCount++
		c.logger.Infow("Refresh published locally cached content, server not reached", "attempt_id", id)
		return outcomeFallback
	}

	c.logger.Infow("Refresh reached the server", "attempt_id", id)
	c.lastErr = nil
	c.attemptCount = 0
	c.setStateLocked(StateConnected)
	c.stopGraceLocked()
	return outcomeConnected
}
