package app

import (
	"github.com/hopebridge/contentsync/internal/cache"
	"github.com/hopebridge/contentsync/internal/events"
	"github.com/hopebridge/contentsync/internal/imagecache"
	"github.com/hopebridge/contentsync/internal/reachability"
	"github.com/hopebridge/contentsync/internal/remote"
	"github.com/hopebridge/contentsync/internal/sync"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// Controller is the sync controller serving the observer API
	Controller *sync.Controller

	// Store is the local document cache
	Store *cache.SQLiteStore

	// Source is the content server client
	Source remote.Source

	// Monitor feeds reachability changes to the controller
	Monitor reachability.Monitor

	// Prober drives Monitor when reachability is probed over the network (optional)
	Prober *reachability.ProbeMonitor

	// Broadcaster delivers content notifications
	Broadcaster *events.Broadcaster

	// Prefetcher warms the image cache (optional)
	Prefetcher *imagecache.Prefetcher
}
