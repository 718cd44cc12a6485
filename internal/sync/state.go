package sync

// ConnectionState is the controller's single authoritative connection state
type ConnectionState string

// Connection states
const (
	// StateInitial means nothing was attempted yet
	StateInitial ConnectionState = "initial"
	// StateLoadingWithCache means cached content is shown while the first attempt runs
	StateLoadingWithCache ConnectionState = "loading_with_cache"
	// StateLoadingWithoutCache means the cache was empty and the first attempt is running
	StateLoadingWithoutCache ConnectionState = "loading_without_cache"
	// StateConnected means the most recent attempt reached the live server
	StateConnected ConnectionState = "connected"
	// StateOffline means the network is down or the server could not be reached
	StateOffline ConnectionState = "offline"
	// StateRetrying means a user initiated attempt is running
	StateRetrying ConnectionState = "retrying"
)

// Banner messages shown for the connectivity banner
const (
	BannerNoInternet          = "No internet connection"
	BannerServerUnreachable   = "Unable to reach the server"
	BannerAttemptingToConnect = "Attempting to connect..."
)

// ShouldShowLoading reports whether the UI must show the loading gate
func (s ConnectionState) ShouldShowLoading() bool {
	return s == StateInitial || s == StateLoadingWithoutCache
}

// ShouldShowConnectivityBanner reports whether the connectivity banner is visible
func (s ConnectionState) ShouldShowConnectivityBanner() bool {
	return s == StateOffline || s == StateRetrying
}

// ShouldShowRetryButton reports whether the retry button is visible
func (s ConnectionState) ShouldShowRetryButton() bool {
	return s == StateOffline
}

// BannerMessage returns the banner text for the state. Offline distinguishes a missing network
// path from a server that could not be reached.
func BannerMessage(s ConnectionState, reachable bool) string {
	switch s {
	case StateOffline:
		if !reachable {
			return BannerNoInternet
		}
		return BannerServerUnreachable
	case StateRetrying:
		return BannerAttemptingToConnect
	default:
		return ""
	}
}

// Trigger is what started a network attempt
type Trigger string

// Attempt triggers
const (
	TriggerInitial Trigger = "initial"
	TriggerRetry   Trigger = "retry"
	TriggerRefresh Trigger = "refresh"
)

// AttemptID identifies a network attempt. A completed attempt whose ID is no longer the
// controller's current one is stale and its result is discarded.
type AttemptID string

// attempt outcomes recorded in metrics and logs
const (
	outcomeConnected = "connected"
	outcomeFallback  = "fallback"
	outcomeFailed    = "failed"
	outcomeStale     = "stale"
)
