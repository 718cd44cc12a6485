// Package cache provides the local document cache the app reads on launch and the remote
// client falls back to when the server cannot be reached.
package cache

import (
	"context"

	"github.com/hopebridge/contentsync/internal/content"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Store,DocumentStore

// Store is the read side of the local cache consumed by the sync controller.
// Implementations never touch the network and return empty values on a miss.
type Store interface {
	// LoadPrimary loads organization, articles, core work and impact stats
	LoadPrimary(ctx context.Context) (content.PrimaryDataset, error)

	LoadPrograms(ctx context.Context) ([]content.Program, error)
	LoadTeams(ctx context.Context) ([]content.Team, error)
	LoadTeamMembers(ctx context.Context) ([]content.TeamMember, error)
	LoadExternalLinks(ctx context.Context) ([]content.ExternalLink, error)
	LoadSupportContent(ctx context.Context) (*content.SupportContent, error)
}

// DocumentStore stores raw documents per collection
type DocumentStore interface {
	// PutCollection replaces the contents of a collection
	PutCollection(ctx context.Context, collection string, docs []content.Document) error

	// Collection returns the documents of a collection in their stored order.
	// A collection that was never stored returns an empty slice.
	Collection(ctx context.Context, collection string) ([]content.Document, error)
}
