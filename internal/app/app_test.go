package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/hopebridge/contentsync/internal/config"
	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/reachability"
	"github.com/hopebridge/contentsync/internal/remote/mocks"
	"github.com/hopebridge/contentsync/internal/sync"
)

// createTestAppConfig creates a minimal valid config for testing
func createTestAppConfig() *config.Config {
	return &config.Config{
		Source: config.SourceConfig{Endpoint: "https://content.example.org/api"},
	}
}

func freeAddress(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

// createTestApp builds a ContentSyncApp with a mocked source and a manual monitor
func createTestApp(
	t *testing.T,
	source *mocks.MockSource,
	monitor reachability.Monitor,
) *ContentSyncApp {
	t.Helper()

	app, err := NewContentSyncApp(context.Background(),
		WithConfig(createTestAppConfig()),
		WithLogger(zaptest.NewLogger(t).Sugar()),
		WithAddress(freeAddress(t)),
		WithDataDirectory(t.TempDir()),
		WithSource(source),
		WithMonitor(monitor),
	)
	require.NoError(t, err)
	return app
}

func startApp(t *testing.T, app *ContentSyncApp) <-chan error {
	t.Helper()

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + app.httpServer.Addr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	return errChan
}

func getState(t *testing.T, app *ContentSyncApp) sync.Snapshot {
	t.Helper()

	resp, err := http.Get("http://" + app.httpServer.Addr + "/v1/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap sync.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

func stopApp(t *testing.T, app *ContentSyncApp, errChan <-chan error) {
	t.Helper()

	require.NoError(t, app.Stop(5*time.Second))

	select {
	case startErr := <-errChan:
		require.NoError(t, startErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

func TestContentSyncApp_StartOffline(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	monitor := reachability.NewManualMonitor(reachability.StatusUnsatisfied)

	app := createTestApp(t, source, monitor)
	errChan := startApp(t, app)

	require.Eventually(t, func() bool {
		return app.GetController().State() == sync.StateOffline
	}, 5*time.Second, 10*time.Millisecond)

	snap := getState(t, app)
	assert.Equal(t, sync.StateOffline, snap.State)
	assert.False(t, snap.HasData)
	assert.False(t, snap.IsReachable)
	assert.True(t, snap.ShouldShowRetryButton)

	stopApp(t, app, errChan)
}

func TestContentSyncApp_StartConnects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	monitor := reachability.NewManualMonitor(reachability.StatusSatisfied)

	source.EXPECT().FetchPrimary(gomock.Any(), true).Return(&content.PrimaryFetch{
		Organization: content.ServerFetch[*content.Organization]{
			Value:      &content.Organization{ID: "org", Name: "Hope Bridge"},
			FromServer: true,
		},
	}, nil)
	source.EXPECT().FetchPrograms(gomock.Any()).Return([]content.Program{{ID: "p1", Name: "Mentoring"}}, nil)
	source.EXPECT().FetchTeams(gomock.Any()).Return(nil, nil)
	source.EXPECT().FetchTeamMembers(gomock.Any()).Return(nil, nil)
	source.EXPECT().FetchExternalLinks(gomock.Any()).Return(nil, nil)
	source.EXPECT().FetchSupportContent(gomock.Any()).Return(nil, nil)

	app := createTestApp(t, source, monitor)
	errChan := startApp(t, app)

	require.Eventually(t, func() bool {
		return len(app.GetController().Secondary().Programs) == 1
	}, 5*time.Second, 10*time.Millisecond)

	snap := getState(t, app)
	assert.Equal(t, sync.StateConnected, snap.State)
	assert.True(t, snap.HasData)
	assert.NotNil(t, snap.LastLoadTime)

	resp, err := http.Get("http://" + app.httpServer.Addr + "/readiness")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stopApp(t, app, errChan)
}

func TestContentSyncApp_StopWithoutStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, mocks.NewMockSource(ctrl),
		reachability.NewManualMonitor(reachability.StatusUnsatisfied))

	require.NoError(t, app.Stop(time.Second))
}

func TestContentSyncApp_StopIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, mocks.NewMockSource(ctrl),
		reachability.NewManualMonitor(reachability.StatusUnsatisfied))
	errChan := startApp(t, app)

	stopApp(t, app, errChan)
	assert.NoError(t, app.Stop(time.Second))
}

func TestContentSyncApp_GetConfig(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app := createTestApp(t, mocks.NewMockSource(ctrl),
		reachability.NewManualMonitor(reachability.StatusUnsatisfied))
	t.Cleanup(func() { _ = app.Stop(time.Second) })

	cfg := app.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "https://content.example.org/api", cfg.Source.Endpoint)
}
