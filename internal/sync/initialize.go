package sync

import (
	"context"

	"github.com/hopebridge/contentsync/internal/content"
)

// InitializeApp publishes the cached content and starts the initial network attempt. It runs
// at most once; later calls return immediately. The call returns when the initial attempt has
// completed, which may be after the grace timer already moved the state to Offline.
func (c *Controller) InitializeApp(ctx context.Context) {
	c.mu.Lock()
	if c.initialized || c.closed {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.mu.Unlock()

	c.logPreviousStatus(ctx)

	primary, err := c.cache.LoadPrimary(ctx)
	if err != nil {
		c.logger.Warnw("Failed to load primary content from cache", "error", err)
		primary = content.PrimaryDataset{}
	}
	secondary := c.loadSecondaryFromCache(ctx)

	c.mu.Lock()
	c.primary = primary
	c.secondary = secondary
	if primary.HasData() {
		c.setStateLocked(StateLoadingWithCache)
	} else {
		c.setStateLocked(StateLoadingWithoutCache)
	}
	c.logger.Infow("Published cached content",
		"has_data", primary.HasData(),
		"articles", len(primary.Articles),
		"core_work", len(primary.CoreWork))

	if !c.reachable {
		c.logger.Info("No network path at launch, skipping grace period")
		c.setStateLocked(StateOffline)
		c.mu.Unlock()
		c.persistStatus(ctx)
		return
	}

	c.armGraceLocked()
	id, ok := c.beginAttemptLocked(TriggerInitial)
	c.mu.Unlock()

	if !ok {
		return
	}
	c.runAttempt(ctx, id, TriggerInitial)
}

// EnterForeground retries the connection when the app returns to the foreground while offline
// with a network path available.
func (c *Controller) EnterForeground(ctx context.Context) {
	c.mu.Lock()
	retry := c.state == StateOffline && c.reachable && !c.closed
	c.mu.Unlock()

	if retry {
		c.logger.Debug("Foregrounded while offline, retrying connection")
		c.RetryConnection(ctx)
	}
}

// loadSecondaryFromCache reads every secondary collection from the cache. Failures leave the
// collection empty.
func (c *Controller) loadSecondaryFromCache(ctx context.Context) content.SecondaryDataset {
	var (
		ds  content.SecondaryDataset
		err error
	)
	if ds.Programs, err = c.cache.LoadPrograms(ctx); err != nil {
		c.logger.Warnw("Failed to load cached programs", "error", err)
	}
	if ds.Teams, err = c.cache.LoadTeams(ctx); err != nil {
		c.logger.Warnw("Failed to load cached teams", "error", err)
	}
	if ds.TeamMembers, err = c.cache.LoadTeamMembers(ctx); err != nil {
		c.logger.Warnw("Failed to load cached team members", "error", err)
	}
	if ds.ExternalLinks, err = c.cache.LoadExternalLinks(ctx); err != nil {
		c.logger.Warnw("Failed to load cached external links", "error", err)
	}
	if ds.SupportContent, err = c.cache.LoadSupportContent(ctx); err != nil {
		c.logger.Warnw("Failed to load cached support content", "error", err)
	}
	return ds
}
