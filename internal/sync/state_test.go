package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionState_UIFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state       ConnectionState
		loading     bool
		banner      bool
		retryButton bool
	}{
		{state: StateInitial, loading: true},
		{state: StateLoadingWithCache},
		{state: StateLoadingWithoutCache, loading: true},
		{state: StateConnected},
		{state: StateOffline, banner: true, retryButton: true},
		{state: StateRetrying, banner: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.loading, tt.state.ShouldShowLoading())
			assert.Equal(t, tt.banner, tt.state.ShouldShowConnectivityBanner())
			assert.Equal(t, tt.retryButton, tt.state.ShouldShowRetryButton())
		})
	}
}

func TestBannerMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		state     ConnectionState
		reachable bool
		want      string
	}{
		{name: "offline without network", state: StateOffline, reachable: false, want: BannerNoInternet},
		{name: "offline with network", state: StateOffline, reachable: true, want: BannerServerUnreachable},
		{name: "retrying", state: StateRetrying, reachable: true, want: BannerAttemptingToConnect},
		{name: "connected", state: StateConnected, reachable: true, want: ""},
		{name: "loading", state: StateLoadingWithCache, reachable: false, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BannerMessage(tt.state, tt.reachable))
		})
	}
}
