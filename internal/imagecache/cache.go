// Package imagecache keeps remote images on disk so they can be shown offline.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/httpclient"
)

const (
	// DefaultMaxTries is the number of fetch attempts per image
	DefaultMaxTries uint = 3
	// DefaultInitialInterval is the first retry delay
	DefaultInitialInterval = 500 * time.Millisecond

	memoryCacheSize = 8 * 1024 * 1024
)

// Cache is a read-through on-disk image cache
type Cache struct {
	d               *diskv.Diskv
	client          httpclient.Client
	maxTries        uint
	initialInterval time.Duration
	logger          *zap.SugaredLogger
}

// Option configures a Cache
type Option func(*Cache)

// WithRetry sets the number of tries and the initial backoff interval
func WithRetry(maxTries uint, initialInterval time.Duration) Option {
	return func(c *Cache) {
		if maxTries > 0 {
			c.maxTries = maxTries
		}
		if initialInterval > 0 {
			c.initialInterval = initialInterval
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a cache storing images under basePath
func New(basePath string, client httpclient.Client, opts ...Option) *Cache {
	c := &Cache{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      memoryCacheSize,
		}),
		client:          client,
		maxTries:        DefaultMaxTries,
		initialInterval: DefaultInitialInterval,
		logger:          zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the cache key of an image URL
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Has reports whether the image is cached
func (c *Cache) Has(url string) bool {
	return c.d.Has(Key(url))
}

// Get returns the image bytes, fetching and storing them on a miss
func (c *Cache) Get(ctx context.Context, url string) ([]byte, error) {
	key := Key(url)
	if c.d.Has(key) {
		if data, err := c.d.Read(key); err == nil {
			return data, nil
		}
	}

	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := c.d.Write(key, data); err != nil {
		return nil, fmt.Errorf("failed to store image %s: %w", url, err)
	}
	return data, nil
}

// Prefetch warms the cache for urls, skipping cached ones. It returns the failures joined.
func (c *Cache) Prefetch(ctx context.Context, urls []string) error {
	var errs []error
	fetched := 0
	for _, url := range urls {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if c.Has(url) {
			continue
		}
		if _, err := c.Get(ctx, url); err != nil {
			errs = append(errs, err)
			continue
		}
		fetched++
	}

	c.logger.Debugw("Image prefetch finished",
		"requested", len(urls),
		"fetched", fetched,
		"failed", len(errs))
	return errors.Join(errs...)
}

func (c *Cache) fetch(ctx context.Context, url string) ([]byte, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval

	operation := func() ([]byte, error) {
		data, err := c.client.Get(ctx, url)
		if err == nil {
			return data, nil
		}
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.IsClientError() {
			return nil, backoff.Permanent(err)
		}
		c.logger.Debugw("Image fetch failed, retrying", "url", url, "error", err)
		return nil, err
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.maxTries))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image %s: %w", url, err)
	}
	return data, nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{key[:2]},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
