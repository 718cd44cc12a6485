package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hopebridge/contentsync/internal/cache"
	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/httpclient"
)

// HTTPSource reads collections from the content document API:
//
//	GET {endpoint}/v1/collections/{name}/documents -> {"documents":[{"id":"...","data":{...}}]}
//
// Live reads are written through to the local document store, which also answers when the
// server cannot be reached.
type HTTPSource struct {
	client   httpclient.Client
	endpoint string
	store    cache.DocumentStore
	logger   *zap.SugaredLogger
}

// HTTPSourceOption configures an HTTPSource
type HTTPSourceOption func(*HTTPSource)

// WithDocumentStore sets the local store used for write-through and fallback
func WithDocumentStore(store cache.DocumentStore) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.store = store
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.SugaredLogger) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.logger = logger
	}
}

// NewHTTPSource creates a source for the API at endpoint
func NewHTTPSource(client httpclient.Client, endpoint string, opts ...HTTPSourceOption) (*HTTPSource, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", endpoint)
	}

	s := &HTTPSource{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FetchPrimary fetches the four primary collections concurrently. Each collection is tagged on
// its own: a collection the server could not deliver is answered from the local store, empty if
// nothing is stored, so the others still count as live. The network error is returned only when
// no collection reached the server and at least one had no local copy.
func (s *HTTPSource) FetchPrimary(ctx context.Context, preferLive bool) (*content.PrimaryFetch, error) {
	fetch := &content.PrimaryFetch{}
	g, gctx := errgroup.WithContext(ctx)

	var (
		mu        sync.Mutex
		uncovered error
	)
	onEmptyFallback := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if uncovered == nil {
			uncovered = err
		}
	}

	g.Go(func() error {
		orgs, fromServer, err := fetchTyped[content.Organization](
			gctx, s, content.CollectionOrganization, preferLive, onEmptyFallback)
		if err != nil {
			return err
		}
		fetch.Organization.FromServer = fromServer
		if len(orgs) > 0 {
			fetch.Organization.Value = &orgs[0]
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fetch.Articles.Value, fetch.Articles.FromServer, err =
			fetchTyped[content.Article](gctx, s, content.CollectionArticles, preferLive, onEmptyFallback)
		return err
	})
	g.Go(func() error {
		var err error
		fetch.CoreWork.Value, fetch.CoreWork.FromServer, err =
			fetchTyped[content.CoreWork](gctx, s, content.CollectionCoreWork, preferLive, onEmptyFallback)
		return err
	})
	g.Go(func() error {
		var err error
		fetch.ImpactStats.Value, fetch.ImpactStats.FromServer, err =
			fetchTyped[content.ImpactStat](gctx, s, content.CollectionImpactStats, preferLive, onEmptyFallback)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if uncovered != nil && !fetch.HitServer() {
		return nil, uncovered
	}

	s.logger.Debugw("Fetched primary content",
		"prefer_live", preferLive,
		"hit_server", fetch.HitServer(),
		"organization_from_server", fetch.Organization.FromServer,
		"articles_from_server", fetch.Articles.FromServer,
		"core_work_from_server", fetch.CoreWork.FromServer,
		"impact_stats_from_server", fetch.ImpactStats.FromServer)
	return fetch, nil
}

// FetchPrograms fetches programs
func (s *HTTPSource) FetchPrograms(ctx context.Context) ([]content.Program, error) {
	programs, _, err := fetchTyped[content.Program](ctx, s, content.CollectionPrograms, true, nil)
	return programs, err
}

// FetchTeams fetches teams
func (s *HTTPSource) FetchTeams(ctx context.Context) ([]content.Team, error) {
	teams, _, err := fetchTyped[content.Team](ctx, s, content.CollectionTeams, true, nil)
	return teams, err
}

// FetchTeamMembers fetches team members
func (s *HTTPSource) FetchTeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	members, _, err := fetchTyped[content.TeamMember](ctx, s, content.CollectionTeamMembers, true, nil)
	return members, err
}

// FetchExternalLinks fetches external links
func (s *HTTPSource) FetchExternalLinks(ctx context.Context) ([]content.ExternalLink, error) {
	links, _, err := fetchTyped[content.ExternalLink](ctx, s, content.CollectionExternalLinks, true, nil)
	return links, err
}

// FetchSupportContent fetches the support mission content, nil when none is published
func (s *HTTPSource) FetchSupportContent(ctx context.Context) (*content.SupportContent, error) {
	items, _, err := fetchTyped[content.SupportContent](ctx, s, content.CollectionSupportContent, true, nil)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (s *HTTPSource) collectionURL(collection string) string {
	return fmt.Sprintf("%s/v1/collections/%s/documents", s.endpoint, url.PathEscape(collection))
}

func fetchTyped[T any](
	ctx context.Context, s *HTTPSource, collection string, preferLive bool, onEmptyFallback func(error),
) ([]T, bool, error) {
	docs, fromServer, err := s.fetchCollection(ctx, collection, preferLive, onEmptyFallback)
	if err != nil {
		return nil, false, err
	}
	items := content.DecodeDocuments[T](docs, func(doc content.Document, err error) {
		s.logger.Warnw("Skipping undecodable document",
			"collection", collection,
			"id", doc.ID,
			"error", &FetchError{Kind: KindDecodeFailure, Collection: collection, Err: err})
	})
	return items, fromServer, nil
}

// fetchCollection returns the raw documents of a collection and whether they came from the server.
// A network-class failure is answered from the local store when it holds the collection. With
// onEmptyFallback set an empty local answer is accepted too and the failure is reported to it.
func (s *HTTPSource) fetchCollection(
	ctx context.Context, collection string, preferLive bool, onEmptyFallback func(error),
) ([]content.Document, bool, error) {
	if !preferLive {
		docs, err := s.localCollection(ctx, collection)
		if err != nil {
			return nil, false, err
		}
		return docs, false, nil
	}

	body, err := s.client.Get(ctx, s.collectionURL(collection))
	if err != nil {
		fetchErr := NewFetchError(collection, err)
		if IsNetworkError(err) && ctx.Err() == nil {
			docs, lerr := s.localCollection(ctx, collection)
			switch {
			case lerr != nil:
				s.logger.Warnw("Failed to read local store for fallback",
					"collection", collection,
					"error", lerr)
			case len(docs) > 0:
				s.logger.Infow("Server unavailable, answering from local store",
					"collection", collection,
					"documents", len(docs),
					"error", fetchErr)
				return docs, false, nil
			case onEmptyFallback != nil:
				s.logger.Infow("Server unavailable and nothing stored locally, answering empty",
					"collection", collection,
					"error", fetchErr)
				onEmptyFallback(fetchErr)
				return docs, false, nil
			}
		}
		return nil, false, fetchErr
	}

	docs, err := s.parseDocuments(collection, body)
	if err != nil {
		return nil, false, err
	}

	if s.store != nil {
		if err := s.store.PutCollection(ctx, collection, docs); err != nil {
			s.logger.Warnw("Failed to write collection through to local store",
				"collection", collection,
				"error", err)
		}
	}
	return docs, true, nil
}

func (s *HTTPSource) localCollection(ctx context.Context, collection string) ([]content.Document, error) {
	if s.store == nil {
		return []content.Document{}, nil
	}
	docs, err := s.store.Collection(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from local store: %w", collection, err)
	}
	return docs, nil
}

func (s *HTTPSource) parseDocuments(collection string, body []byte) ([]content.Document, error) {
	if !gjson.ValidBytes(body) {
		return nil, &FetchError{Kind: KindDecodeFailure, Collection: collection, Err: fmt.Errorf("invalid JSON payload")}
	}
	list := gjson.GetBytes(body, "documents")
	if !list.IsArray() {
		return nil, &FetchError{Kind: KindDecodeFailure, Collection: collection, Err: fmt.Errorf("payload has no documents array")}
	}

	docs := make([]content.Document, 0, len(list.Array()))
	list.ForEach(func(_, value gjson.Result) bool {
		id := value.Get("id").String()
		data := value.Get("data")
		if id == "" || !data.IsObject() {
			s.logger.Warnw("Skipping malformed document",
				"collection", collection,
				"id", id)
			return true
		}
		docs = append(docs, content.Document{ID: id, Data: json.RawMessage(data.Raw)})
		return true
	})
	return docs, nil
}
