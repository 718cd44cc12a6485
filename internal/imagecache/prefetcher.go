package imagecache

import (
	"context"

	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/events"
)

// Prefetcher warms a Cache with the images announced by content refresh events
type Prefetcher struct {
	cache  *Cache
	logger *zap.SugaredLogger
}

// NewPrefetcher creates a prefetcher for cache
func NewPrefetcher(cache *Cache, logger *zap.SugaredLogger) *Prefetcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Prefetcher{cache: cache, logger: logger}
}

// Run consumes events until ctx is cancelled or the channel is closed
func (p *Prefetcher) Run(ctx context.Context, ch <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev.Type != events.SecondaryRefreshed || len(ev.ImageURLs) == 0 {
				continue
			}
			if err := p.cache.Prefetch(ctx, ev.ImageURLs); err != nil {
				p.logger.Warnw("Some images could not be prefetched", "error", err)
			}
		}
	}
}
