package observer_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/observer"
	"github.com/hopebridge/contentsync/internal/observer/mocks"
	"github.com/hopebridge/contentsync/internal/remote"
	"github.com/hopebridge/contentsync/internal/sync"
)

func offlineSnapshot() sync.Snapshot {
	loaded := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return sync.Snapshot{
		State:                        sync.StateOffline,
		HasData:                      true,
		IsReachable:                  true,
		ShouldShowConnectivityBanner: true,
		BannerMessage:                sync.BannerServerUnreachable,
		ShouldShowRetryButton:        true,
		LastLoadTime:                 &loaded,
		Primary: content.PrimaryDataset{
			Organization: &content.Organization{ID: "org", Name: "Hope Bridge"},
			Articles:     []content.Article{{ID: "a1", Title: "Article"}},
			CoreWork:     []content.CoreWork{{ID: "w1", Title: "Shelter"}},
		},
		Secondary: content.SecondaryDataset{
			Programs: []content.Program{{ID: "p1", Name: "After school"}},
		},
	}
}

func serve(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthAndVersion(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := observer.NewServer(mocks.NewMockController(ctrl))

	rr := serve(t, server, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())

	rr = serve(t, server, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var version map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &version))
	assert.NotEmpty(t, version["go_version"])
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		snapshot   sync.Snapshot
		wantStatus int
	}{
		{
			name:       "cached content available",
			snapshot:   offlineSnapshot(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "nothing to show",
			snapshot:   sync.Snapshot{State: sync.StateLoadingWithoutCache, ShouldShowLoading: true},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockCtrl := mocks.NewMockController(ctrl)
			mockCtrl.EXPECT().Snapshot().Return(tt.snapshot)

			rr := serve(t, observer.NewServer(mockCtrl), http.MethodGet, "/readiness", "")
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGetState(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockCtrl := mocks.NewMockController(ctrl)
	mockCtrl.EXPECT().Snapshot().Return(offlineSnapshot())

	rr := serve(t, observer.NewServer(mockCtrl), http.MethodGet, "/v1/state", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "offline", body["state"])
	assert.Equal(t, true, body["shouldShowRetryButton"])
	assert.Equal(t, sync.BannerServerUnreachable, body["bannerMessage"])
	assert.NotContains(t, body, "Primary")
	assert.NotContains(t, body, "primary")
}

func TestGetContent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockCtrl := mocks.NewMockController(ctrl)
	mockCtrl.EXPECT().Snapshot().Return(offlineSnapshot())

	rr := serve(t, observer.NewServer(mockCtrl), http.MethodGet, "/v1/content", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body observer.ContentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, offlineSnapshot().Primary, body.Primary)
	assert.Equal(t, offlineSnapshot().Secondary.Programs, body.Secondary.Programs)
	require.NotNil(t, body.LastLoadTime)
}

func TestOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		expect func(m *mocks.MockController, detached func(context.Context))
	}{
		{
			path: "/v1/retry",
			expect: func(m *mocks.MockController, detached func(context.Context)) {
				m.EXPECT().RetryConnection(gomock.Any()).Do(detached)
			},
		},
		{
			path: "/v1/refresh",
			expect: func(m *mocks.MockController, detached func(context.Context)) {
				m.EXPECT().ForceRefreshAllData(gomock.Any()).Do(detached)
			},
		},
		{
			path: "/v1/foreground",
			expect: func(m *mocks.MockController, detached func(context.Context)) {
				m.EXPECT().EnterForeground(gomock.Any()).Do(detached)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockCtrl := mocks.NewMockController(ctrl)
			// operations must outlive the request
			tt.expect(mockCtrl, func(ctx context.Context) {
				assert.Nil(t, ctx.Done())
			})
			mockCtrl.EXPECT().Snapshot().Return(sync.Snapshot{State: sync.StateConnected, HasData: true})

			server := observer.NewServer(mockCtrl)

			rr := serve(t, server, http.MethodPost, tt.path, "")
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"state":"connected"`)

			rr = serve(t, server, http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestSubmitContact(t *testing.T) {
	t.Parallel()

	valid := `{"name":"Ada","email":"ada@example.org","message":"Hello"}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockContactSink)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(m *mocks.MockContactSink) {
				m.EXPECT().SubmitContact(gomock.Any(), content.ContactSubmission{
					Name:    "Ada",
					Email:   "ada@example.org",
					Message: "Hello",
				}).Return("01J0000000000000000000000", nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   "01J0000000000000000000000",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			setupMock:  func(*mocks.MockContactSink) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "unknown field",
			body:       `{"name":"Ada","phone":"555"}`,
			setupMock:  func(*mocks.MockContactSink) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"name":"Ada"}`,
			setupMock: func(m *mocks.MockContactSink) {
				m.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("%w: missing email, message", remote.ErrInvalidSubmission))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "missing email",
		},
		{
			name: "server unreachable",
			body: valid,
			setupMock: func(m *mocks.MockContactSink) {
				m.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).
					Return("", &remote.FetchError{Kind: remote.KindUnreachable, Err: errors.New("no route to host")})
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "other failure",
			body: valid,
			setupMock: func(m *mocks.MockContactSink) {
				m.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			sink := mocks.NewMockContactSink(ctrl)
			tt.setupMock(sink)

			server := observer.NewServer(mocks.NewMockController(ctrl),
				observer.WithContactSink(sink),
				observer.WithLogger(zaptest.NewLogger(t).Sugar()),
			)

			rr := serve(t, server, http.MethodPost, "/v1/contact", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestContactDisabledWithoutSink(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	rr := serve(t, observer.NewServer(mocks.NewMockController(ctrl)), http.MethodPost, "/v1/contact", `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsHandlerAndMiddleware(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	var seen []string
	record := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("contentsync_state_transitions_total 1\n"))
	})

	server := observer.NewServer(mocks.NewMockController(ctrl),
		observer.WithMiddlewares(record, observer.LoggingMiddleware(zaptest.NewLogger(t).Sugar())),
		observer.WithMetricsHandler(metrics),
	)

	rr := serve(t, server, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "contentsync_state_transitions_total")
	assert.Equal(t, []string{"/metrics"}, seen)
}
