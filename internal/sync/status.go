package sync

import (
	"context"

	"github.com/hopebridge/contentsync/internal/status"
	"github.com/hopebridge/contentsync/internal/versions"
)

// statusLocked builds the persisted form of the current state
func (c *Controller) statusLocked() *status.ConnectionStatus {
	s := &status.ConnectionStatus{
		State:        string(c.state),
		Message:      BannerMessage(c.state, c.reachable),
		AttemptCount: c.attemptCount,
		HasData:      c.primary.HasData(),
		AppVersion:   versions.Version,
	}
	if !c.lastAttempt.IsZero() {
		t := c.lastAttempt
		s.LastAttempt = &t
	}
	if !c.lastLoad.IsZero() {
		t := c.lastLoad
		s.LastLoadTime = &t
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}

// persistStatus saves the current status. Failures are logged.
func (c *Controller) persistStatus(ctx context.Context) {
	if c.persistence == nil {
		return
	}

	c.mu.Lock()
	s := c.statusLocked()
	c.mu.Unlock()

	if err := c.persistence.SaveStatus(context.WithoutCancel(ctx), s); err != nil {
		c.logger.Warnw("Failed to save connection status", "error", err)
	}
}

// persistAsync saves the status from a background goroutine. Must be called with mu held.
func (c *Controller) persistAsync() {
	if c.persistence == nil || c.closed {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.persistStatus(c.ctx)
	}()
}

// logPreviousStatus logs the status recorded by the previous run
func (c *Controller) logPreviousStatus(ctx context.Context) {
	if c.persistence == nil {
		return
	}

	prev, err := c.persistence.LoadStatus(ctx)
	if err != nil {
		c.logger.Warnw("Failed to load previous connection status", "error", err)
		return
	}
	if prev.IsZero() {
		c.logger.Debug("No previous connection status recorded")
		return
	}

	fields := []any{
		"state", prev.State,
		"has_data", prev.HasData,
		"attempt_count", prev.AttemptCount,
	}
	if prev.LastLoadTime != nil {
		fields = append(fields, "last_load_time", prev.LastLoadTime)
	}
	if prev.LastError != "" {
		fields = append(fields, "last_error", prev.LastError)
	}
	c.logger.Infow("Previous connection status", fields...)

	if versions.IsNewer(prev.AppVersion, versions.Version) {
		c.logger.Warnw("Previous status was recorded by a newer version",
			"recorded_by", prev.AppVersion,
			"running", versions.Version)
	}
}
