package sync

import (
	"github.com/hopebridge/contentsync/internal/reachability"
)

// handleReachability applies a monitor update. Losing the network path while connected or
// retrying is unambiguous and moves to Offline immediately, superseding any attempt in flight.
// Regaining it while offline starts an automatic retry.
func (c *Controller) handleReachability(s reachability.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	satisfied := s.Satisfied()
	if satisfied == c.reachable {
		return
	}
	c.reachable = satisfied
	c.logger.Infow("Network reachability changed", "satisfied", satisfied, "state", c.state)

	if !satisfied {
		if c.state == StateConnected || c.state == StateRetrying {
			if c.inFlight {
				c.logger.Debugw("Superseding attempt after losing the network path",
					"attempt_id", c.currentAttempt)
				c.currentAttempt = ""
				c.inFlight = false
			}
			c.setStateLocked(StateOffline)
			c.persistAsync()
		}
		return
	}

	if c.state == StateOffline {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.RetryConnection(c.ctx)
		}()
	}
}
