package sync

import (
	"time"

	"github.com/hopebridge/contentsync/internal/content"
)

// Snapshot is a consistent read-only view of the controller for the UI layer
type Snapshot struct {
	State                        ConnectionState `json:"state"`
	HasData                      bool            `json:"hasData"`
	IsReachable                  bool            `json:"isReachable"`
	ShouldShowLoading            bool            `json:"shouldShowLoading"`
	ShouldShowConnectivityBanner bool            `json:"shouldShowConnectivityBanner"`
	BannerMessage                string          `json:"bannerMessage,omitempty"`
	ShouldShowRetryButton        bool            `json:"shouldShowRetryButton"`
	LastLoadTime                 *time.Time      `json:"lastLoadTime,omitempty"`
	LastError                    string          `json:"lastError,omitempty"`

	Primary   content.PrimaryDataset   `json:"-"`
	Secondary content.SecondaryDataset `json:"-"`
}

// Snapshot returns the current state, the derived UI flags and the published datasets
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:                        c.state,
		HasData:                      c.primary.HasData(),
		IsReachable:                  c.reachable,
		ShouldShowLoading:            c.state.ShouldShowLoading(),
		ShouldShowConnectivityBanner: c.state.ShouldShowConnectivityBanner(),
		BannerMessage:                BannerMessage(c.state, c.reachable),
		ShouldShowRetryButton:        c.state.ShouldShowRetryButton(),
		Primary:                      c.primary,
		Secondary:                    c.secondary,
	}
	if !c.lastLoad.IsZero() {
		t := c.lastLoad
		snap.LastLoadTime = &t
	}
	if c.lastErr != nil {
		snap.LastError = c.lastErr.Error()
	}
	return snap
}
