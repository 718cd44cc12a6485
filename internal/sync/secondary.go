package sync

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/events"
	"github.com/hopebridge/contentsync/internal/otel"
)

// loadSecondary fetches the secondary collections concurrently and publishes each one that
// loaded. Failures are logged and never change the connection state. Listeners are notified
// when at least one collection was refreshed.
func (c *Controller) loadSecondary(ctx context.Context) {
	ctx, span := otel.StartSpan(ctx, c.tracer, "sync.secondary")
	defer span.End()

	var (
		g      errgroup.Group
		loaded atomic.Int32
	)
	load := func(collection string, fetch func(context.Context) (func(*content.SecondaryDataset), error)) {
		g.Go(func() error {
			apply, err := fetch(ctx)
			c.metrics.RecordSecondaryLoad(ctx, collection, err == nil)
			if err != nil {
				c.logger.Warnw("Failed to load secondary content",
					"collection", collection,
					"error", err)
				return nil
			}
			c.mu.Lock()
			apply(&c.secondary)
			c.mu.Unlock()
			loaded.Add(1)
			return nil
		})
	}

	load(content.CollectionPrograms, func(ctx context.Context) (func(*content.SecondaryDataset), error) {
		v, err := c.remote.FetchPrograms(ctx)
		return func(ds *content.SecondaryDataset) { ds.Programs = v }, err
	})
	load(content.CollectionTeams, func(ctx context.Context) (func(*content.SecondaryDataset), error) {
		v, err := c.remote.FetchTeams(ctx)
		return func(ds *content.SecondaryDataset) { ds.Teams = v }, err
	})
	load(content.CollectionTeamMembers, func(ctx context.Context) (func(*content.SecondaryDataset), error) {
		v, err := c.remote.FetchTeamMembers(ctx)
		return func(ds *content.SecondaryDataset) { ds.TeamMembers = v }, err
	})
	load(content.CollectionExternalLinks, func(ctx context.Context) (func(*content.SecondaryDataset), error) {
		v, err := c.remote.FetchExternalLinks(ctx)
		return func(ds *content.SecondaryDataset) { ds.ExternalLinks = v }, err
	})
	load(content.CollectionSupportContent, func(ctx context.Context) (func(*content.SecondaryDataset), error) {
		v, err := c.remote.FetchSupportContent(ctx)
		return func(ds *content.SecondaryDataset) { ds.SupportContent = v }, err
	})

	_ = g.Wait()

	n := int(loaded.Load())
	span.SetAttributes(otel.AttrResultCount.Int(n))
	if n == 0 {
		c.logger.Warn("No secondary content could be loaded")
		return
	}

	c.mu.Lock()
	ev := events.Event{
		Type:      events.SecondaryRefreshed,
		At:        c.clock.Now(),
		ImageURLs: c.secondary.ImageURLs(),
	}
	c.mu.Unlock()

	c.logger.Infow("Secondary content loaded",
		"collections", n,
		"images", len(ev.ImageURLs))
	if c.broadcaster != nil {
		c.broadcaster.Publish(ev)
	}
}
