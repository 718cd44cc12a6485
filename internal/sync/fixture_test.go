package sync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	testingclock "k8s.io/utils/clock/testing"

	cachemocks "github.com/hopebridge/contentsync/internal/cache/mocks"
	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/events"
	"github.com/hopebridge/contentsync/internal/reachability"
	remotemocks "github.com/hopebridge/contentsync/internal/remote/mocks"
)

const waitFor = 2 * time.Second

type transition struct {
	From ConnectionState
	To   ConnectionState
}

type transitionRecorder struct {
	mu  sync.Mutex
	all []transition
}

func (r *transitionRecorder) record(from, to ConnectionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, transition{From: from, To: to})
}

func (r *transitionRecorder) states() []ConnectionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return nil
	}
	out := []ConnectionState{r.all[0].From}
	for _, tr := range r.all {
		out = append(out, tr.To)
	}
	return out
}

type fixture struct {
	store       *cachemocks.MockStore
	source      *remotemocks.MockSource
	monitor     *reachability.ManualMonitor
	clock       *testingclock.FakeClock
	broadcaster *events.Broadcaster
	recorder    *transitionRecorder
	controller  *Controller
}

func newFixture(t *testing.T, initial reachability.Status, opts ...Option) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		store:       cachemocks.NewMockStore(ctrl),
		source:      remotemocks.NewMockSource(ctrl),
		monitor:     reachability.NewManualMonitor(initial),
		clock:       testingclock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		broadcaster: events.NewBroadcaster(),
		recorder:    &transitionRecorder{},
	}

	opts = append([]Option{
		WithLogger(zaptest.NewLogger(t).Sugar()),
		WithClock(f.clock),
		WithBroadcaster(f.broadcaster),
		WithTransitionHook(f.recorder.record),
	}, opts...)
	f.controller = New(f.store, f.source, f.monitor, opts...)
	t.Cleanup(func() {
		f.controller.Close()
		f.broadcaster.Close()
	})
	return f
}

// expectCache sets up the cache to return primary and an empty secondary dataset
func (f *fixture) expectCache(primary content.PrimaryDataset) {
	f.store.EXPECT().LoadPrimary(gomock.Any()).Return(primary, nil)
	f.store.EXPECT().LoadPrograms(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().LoadTeams(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().LoadTeamMembers(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().LoadExternalLinks(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().LoadSupportContent(gomock.Any()).Return(nil, nil)
}

// expectSecondary sets up every secondary remote fetch to succeed
func (f *fixture) expectSecondary() {
	ds := secondaryDataset()
	f.source.EXPECT().FetchPrograms(gomock.Any()).Return(ds.Programs, nil).AnyTimes()
	f.source.EXPECT().FetchTeams(gomock.Any()).Return(ds.Teams, nil).AnyTimes()
	f.source.EXPECT().FetchTeamMembers(gomock.Any()).Return(ds.TeamMembers, nil).AnyTimes()
	f.source.EXPECT().FetchExternalLinks(gomock.Any()).Return(ds.ExternalLinks, nil).AnyTimes()
	f.source.EXPECT().FetchSupportContent(gomock.Any()).Return(ds.SupportContent, nil).AnyTimes()
}

// blockingFetch returns a FetchPrimary implementation that signals started and then waits for
// release or the context to end.
func blockingFetch(
	started chan<- struct{},
	release <-chan struct{},
	fetch *content.PrimaryFetch,
	err error,
) func(context.Context, bool) (*content.PrimaryFetch, error) {
	return func(ctx context.Context, _ bool) (*content.PrimaryFetch, error) {
		started <- struct{}{}
		select {
		case <-release:
			return fetch, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (f *fixture) requireState(t *testing.T, want ConnectionState) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.controller.State() == want
	}, waitFor, time.Millisecond, "state never became %s, last %s", want, f.controller.State())
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for channel")
		var zero T
		return zero
	}
}

func cachedPrimary() content.PrimaryDataset {
	return content.PrimaryDataset{
		Organization: &content.Organization{ID: "org", Name: "Hope Bridge", Mission: "cached"},
		Articles:     []content.Article{{ID: "a1", Title: "Cached article", URL: "https://example.org/a1"}},
		CoreWork:     []content.CoreWork{{ID: "w1", Title: "Shelter"}},
		ImpactStats:  []content.ImpactStat{{ID: "s1", Label: "Families", Value: "120"}},
	}
}

func livePrimary() content.PrimaryDataset {
	return content.PrimaryDataset{
		Organization: &content.Organization{ID: "org", Name: "Hope Bridge", Mission: "live"},
		Articles: []content.Article{
			{ID: "a1", Title: "Live article", URL: "https://example.org/a1"},
			{ID: "a2", Title: "Second live article", URL: "https://example.org/a2"},
		},
		CoreWork:    []content.CoreWork{{ID: "w1", Title: "Shelter"}, {ID: "w2", Title: "Meals"}},
		ImpactStats: []content.ImpactStat{{ID: "s1", Label: "Families", Value: "150"}},
	}
}

// primaryFetch tags every entity of ds with fromServer
func primaryFetch(ds content.PrimaryDataset, fromServer bool) *content.PrimaryFetch {
	return &content.PrimaryFetch{
		Organization: content.ServerFetch[*content.Organization]{Value: ds.Organization, FromServer: fromServer},
		Articles:     content.ServerFetch[[]content.Article]{Value: ds.Articles, FromServer: fromServer},
		CoreWork:     content.ServerFetch[[]content.CoreWork]{Value: ds.CoreWork, FromServer: fromServer},
		ImpactStats:  content.ServerFetch[[]content.ImpactStat]{Value: ds.ImpactStats, FromServer: fromServer},
	}
}

func secondaryDataset() content.SecondaryDataset {
	return content.SecondaryDataset{
		Programs:      []content.Program{{ID: "p1", Name: "After school", ImageURL: "https://cdn.example.org/p1.jpg"}},
		Teams:         []content.Team{{ID: "t1", Name: "Board"}},
		TeamMembers:   []content.TeamMember{{ID: "m1", TeamID: "t1", Name: "Sam", PhotoURL: "https://cdn.example.org/m1.jpg"}},
		ExternalLinks: []content.ExternalLink{{ID: "l1", Title: "Donate", URL: "https://example.org/donate"}},
		SupportContent: &content.SupportContent{
			ID:       "support",
			Headline: "Support our mission",
			Body:     "Every gift helps.",
		},
	}
}
